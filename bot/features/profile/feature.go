package profile

import (
	"outlaw/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	statsService service.StatsService
}

func New(statsService service.StatsService) *Feature {
	return &Feature{
		statsService: statsService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "profile":
		f.handleProfile(s, i)
	case "check":
		f.handleCheck(s, i)
	}
}
