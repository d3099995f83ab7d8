package leaderboard

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
	case "toprich":
		f.handleTopRich(s, i)
	case "topkills":
		f.handleTopKills(s, i)
	}
}
