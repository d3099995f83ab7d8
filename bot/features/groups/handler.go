package groups

import (
	"context"
	"fmt"
	"strconv"

	"outlaw/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// parseGroup resolves the guild the command ran in. Claiming only makes
// sense inside a guild, not in DMs.
func parseGroup(i *discordgo.InteractionCreate) (int64, error) {
	if i.GuildID == "" {
		return 0, fmt.Errorf("not in a guild")
	}
	return strconv.ParseInt(i.GuildID, 10, 64)
}

func (f *Feature) handleClaim(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	groupID, err := parseGroup(i)
	if err != nil {
		common.RespondWithError(s, i, "This command only works in a server.")
		return
	}

	invoker := common.InteractionUser(i)
	userID, err := strconv.ParseInt(invoker.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", invoker.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.groupService.Claim(ctx, groupID, userID)
	if err != nil {
		if msg, ok := common.UserMessage(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error claiming group %d for user %d: %v", groupID, userID, err)
		common.RespondWithError(s, i, "Claim failed. Please try again.")
		return
	}

	message := fmt.Sprintf("🏴 %s claimed this server and earned **%s coins**!",
		invoker.Mention(), common.FormatAmount(result.Reward))
	if err := common.RespondWithContent(s, i, message); err != nil {
		log.Errorf("Error responding to claim command: %v", err)
	}
}

func (f *Feature) handleOwner(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	groupID, err := parseGroup(i)
	if err != nil {
		common.RespondWithError(s, i, "This command only works in a server.")
		return
	}

	group, err := f.groupService.GetOwnership(ctx, groupID)
	if err != nil {
		log.Errorf("Error getting ownership of group %d: %v", groupID, err)
		common.RespondWithError(s, i, "Unable to retrieve ownership. Please try again.")
		return
	}

	if group == nil || group.ClaimedBy == nil {
		if err := common.RespondWithContent(s, i, "This server is unclaimed. Use `/claim` to take it!"); err != nil {
			log.Errorf("Error responding to owner command: %v", err)
		}
		return
	}

	message := fmt.Sprintf("🏴 This server is owned by %s (claimed %s).",
		common.Mention(*group.ClaimedBy),
		common.FormatDiscordTimestamp(*group.ClaimedAt, "R"))
	if err := common.RespondWithContent(s, i, message); err != nil {
		log.Errorf("Error responding to owner command: %v", err)
	}
}
