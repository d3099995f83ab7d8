package economy

import (
	"outlaw/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	userService    service.UserService
	economyService service.EconomyService
	historyLimit   int
}

func New(userService service.UserService, economyService service.EconomyService, historyLimit int) *Feature {
	return &Feature{
		userService:    userService,
		economyService: economyService,
		historyLimit:   historyLimit,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "balance":
		f.handleBalance(s, i)
	case "daily":
		f.handleDaily(s, i)
	case "give":
		f.handleGive(s, i)
	case "history":
		f.handleHistory(s, i)
	}
}
