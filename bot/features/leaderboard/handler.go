package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"outlaw/bot/common"
	"outlaw/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleTopRich(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.respondWithLeaderboard(s, i, models.LeaderboardFieldBalance, "💰 Richest Outlaws", "coins")
}

func (f *Feature) handleTopKills(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.respondWithLeaderboard(s, i, models.LeaderboardFieldKills, "🔪 Deadliest Outlaws", "kills")
}

func (f *Feature) respondWithLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, field models.LeaderboardField, title, unit string) {
	ctx := context.Background()

	entries, err := f.statsService.Leaderboard(ctx, field)
	if err != nil {
		log.Errorf("Error getting leaderboard for %s: %v", field, err)
		common.RespondWithError(s, i, "Unable to retrieve leaderboard. Please try again.")
		return
	}

	if len(entries) == 0 {
		common.RespondWithError(s, i, "Nobody is on the board yet.")
		return
	}

	medals := []string{"🥇", "🥈", "🥉"}

	var sb strings.Builder
	for _, entry := range entries {
		rank := fmt.Sprintf("%d.", entry.Rank)
		if entry.Rank <= len(medals) {
			rank = medals[entry.Rank-1]
		}
		sb.WriteString(fmt.Sprintf("%s %s — **%s %s**\n",
			rank, common.Mention(entry.UserID), common.FormatAmount(entry.Value), unit))
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       0xE67E22,
	}
	if err := common.RespondWithEmbed(s, i, embed); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}
