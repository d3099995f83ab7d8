package fun

import (
	"outlaw/dependencies/random"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	rng random.Random
}

func New(rng random.Random) *Feature {
	return &Feature{
		rng: rng,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "flip":
		f.handleFlip(s, i)
	case "roll":
		f.handleRoll(s, i)
	case "slap":
		f.handleSlap(s, i)
	}
}
