package profile

import (
	"context"
	"fmt"
	"strconv"

	"outlaw/bot/common"
	"outlaw/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleProfile shows the invoker their own status
func (f *Feature) handleProfile(s *discordgo.Session, i *discordgo.InteractionCreate) {
	invoker := common.InteractionUser(i)
	userID, err := strconv.ParseInt(invoker.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", invoker.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	f.respondWithProfile(s, i, userID, invoker.Username)
}

// handleCheck shows another user's status
func (f *Feature) handleCheck(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	f.respondWithProfile(s, i, targetID, target.Username)
}

func (f *Feature) respondWithProfile(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64, username string) {
	ctx := context.Background()

	profile, err := f.statsService.GetProfile(ctx, userID)
	if err != nil {
		log.Errorf("Error getting profile for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to retrieve profile. Please try again.")
		return
	}

	embed := buildProfileEmbed(profile, username)
	if err := common.RespondWithEmbed(s, i, embed); err != nil {
		log.Errorf("Error responding to profile command: %v", err)
	}
}

func buildProfileEmbed(p *models.Profile, username string) *discordgo.MessageEmbed {
	status := "🟢 Alive"
	if p.Dead {
		status = fmt.Sprintf("💀 Dead (%s remaining)", common.FormatDuration(p.DeathRemaining))
	}

	protection := "None"
	if p.Protected {
		protection = fmt.Sprintf("🛡️ Active (%s remaining)", common.FormatDuration(p.ProtectRemaining))
	}

	daily := "Available"
	if p.ClaimedToday {
		daily = "Claimed"
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Profile: %s", username),
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: fmt.Sprintf("%s coins", common.FormatAmount(p.Balance)), Inline: true},
			{Name: "Kills", Value: fmt.Sprintf("%d", p.TotalKills), Inline: true},
			{Name: "Status", Value: status, Inline: true},
			{Name: "Protection", Value: protection, Inline: true},
			{Name: "Revives left today", Value: fmt.Sprintf("%d/%d", p.RevivesLeft, p.ReviveLimit), Inline: true},
			{Name: "Daily reward", Value: daily, Inline: true},
		},
	}
}
