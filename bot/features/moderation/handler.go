package moderation

import (
	"fmt"
	"time"

	"outlaw/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func commandOptions(s *discordgo.Session, i *discordgo.InteractionCreate) (*discordgo.User, string, int64) {
	var target *discordgo.User
	var reason string
	var minutes int64
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "user":
			target = opt.UserValue(s)
		case "reason":
			reason = opt.StringValue()
		case "minutes":
			minutes = opt.IntValue()
		}
	}
	return target, reason, minutes
}

func (f *Feature) handleKick(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target, reason, _ := commandOptions(s, i)
	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	if err := s.GuildMemberDeleteWithReason(i.GuildID, target.ID, reason); err != nil {
		log.Errorf("Error kicking user %s from guild %s: %v", target.ID, i.GuildID, err)
		common.RespondWithError(s, i, "Kick failed. Check my permissions and role position.")
		return
	}

	message := fmt.Sprintf("👢 Kicked %s.", target.Username)
	if reason != "" {
		message += fmt.Sprintf(" Reason: %s", reason)
	}
	if err := common.RespondWithContent(s, i, message); err != nil {
		log.Errorf("Error responding to kick command: %v", err)
	}
}

func (f *Feature) handleBan(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target, reason, _ := commandOptions(s, i)
	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	if err := s.GuildBanCreateWithReason(i.GuildID, target.ID, reason, 0); err != nil {
		log.Errorf("Error banning user %s from guild %s: %v", target.ID, i.GuildID, err)
		common.RespondWithError(s, i, "Ban failed. Check my permissions and role position.")
		return
	}

	message := fmt.Sprintf("🔨 Banned %s.", target.Username)
	if reason != "" {
		message += fmt.Sprintf(" Reason: %s", reason)
	}
	if err := common.RespondWithContent(s, i, message); err != nil {
		log.Errorf("Error responding to ban command: %v", err)
	}
}

func (f *Feature) handleUnban(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target, _, _ := commandOptions(s, i)
	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	if err := s.GuildBanDelete(i.GuildID, target.ID); err != nil {
		log.Errorf("Error unbanning user %s in guild %s: %v", target.ID, i.GuildID, err)
		common.RespondWithError(s, i, "Unban failed. Are they actually banned?")
		return
	}

	if err := common.RespondWithContent(s, i, fmt.Sprintf("🕊️ Unbanned %s.", target.Username)); err != nil {
		log.Errorf("Error responding to unban command: %v", err)
	}
}

func (f *Feature) handleTimeout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target, reason, minutes := commandOptions(s, i)
	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}
	if minutes <= 0 {
		common.RespondWithError(s, i, "Timeout length must be at least one minute.")
		return
	}

	until := time.Now().Add(time.Duration(minutes) * time.Minute)
	if err := s.GuildMemberTimeout(i.GuildID, target.ID, &until); err != nil {
		log.Errorf("Error timing out user %s in guild %s: %v", target.ID, i.GuildID, err)
		common.RespondWithError(s, i, "Timeout failed. Check my permissions and role position.")
		return
	}

	message := fmt.Sprintf("🤐 Timed out %s for %d minutes.", target.Username, minutes)
	if reason != "" {
		message += fmt.Sprintf(" Reason: %s", reason)
	}
	if err := common.RespondWithContent(s, i, message); err != nil {
		log.Errorf("Error responding to timeout command: %v", err)
	}
}

func (f *Feature) handleUntimeout(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target, _, _ := commandOptions(s, i)
	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	if err := s.GuildMemberTimeout(i.GuildID, target.ID, nil); err != nil {
		log.Errorf("Error clearing timeout for user %s in guild %s: %v", target.ID, i.GuildID, err)
		common.RespondWithError(s, i, "Could not clear the timeout.")
		return
	}

	if err := common.RespondWithContent(s, i, fmt.Sprintf("🗣️ Cleared timeout for %s.", target.Username)); err != nil {
		log.Errorf("Error responding to untimeout command: %v", err)
	}
}
