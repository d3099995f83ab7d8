package moderation

import (
	"github.com/bwmarrin/discordgo"
)

// Feature wraps the moderation pass-throughs. All enforcement is done
// by Discord itself via the command permission defaults; this feature
// just relays the action.
type Feature struct{}

func New() *Feature {
	return &Feature{}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "kick":
		f.handleKick(s, i)
	case "ban":
		f.handleBan(s, i)
	case "unban":
		f.handleUnban(s, i)
	case "timeout":
		f.handleTimeout(s, i)
	case "untimeout":
		f.handleUntimeout(s, i)
	}
}
