package combat

import (
	"outlaw/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	combatService service.CombatService
}

func New(combatService service.CombatService) *Feature {
	return &Feature{
		combatService: combatService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "rob":
		f.handleRob(s, i)
	case "kill":
		f.handleKill(s, i)
	case "protect":
		f.handleProtect(s, i)
	case "revive":
		f.handleRevive(s, i)
	}
}
