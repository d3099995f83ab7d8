package fun

import (
	"fmt"

	"outlaw/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleFlip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	result := "Heads"
	if f.rng.Intn(2) == 1 {
		result = "Tails"
	}

	if err := common.RespondWithContent(s, i, fmt.Sprintf("🪙 **%s**!", result)); err != nil {
		log.Errorf("Error responding to flip command: %v", err)
	}
}

func (f *Feature) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sides := int64(6)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "sides" {
			sides = opt.IntValue()
		}
	}
	if sides < 2 || sides > 1000 {
		common.RespondWithError(s, i, "Sides must be between 2 and 1000.")
		return
	}

	result := f.rng.Intn(int(sides)) + 1
	if err := common.RespondWithContent(s, i, fmt.Sprintf("🎲 You rolled a **%d** (d%d).", result, sides)); err != nil {
		log.Errorf("Error responding to roll command: %v", err)
	}
}

var slapItems = []string{
	"a wet trout",
	"a rusty shovel",
	"a bag of coins",
	"yesterday's newspaper",
	"a cactus",
}

func (f *Feature) handleSlap(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var target *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}
	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	invoker := common.InteractionUser(i)
	item := slapItems[f.rng.Intn(len(slapItems))]
	message := fmt.Sprintf("👋 %s slaps %s with %s!", invoker.Mention(), target.Mention(), item)
	if err := common.RespondWithContent(s, i, message); err != nil {
		log.Errorf("Error responding to slap command: %v", err)
	}
}
