package groups

import (
	"outlaw/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	groupService service.GroupService
}

func New(groupService service.GroupService) *Feature {
	return &Feature{
		groupService: groupService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "claim":
		f.handleClaim(s, i)
	case "owner":
		f.handleOwner(s, i)
	}
}
