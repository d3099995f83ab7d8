package economy

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"outlaw/bot/common"
	"outlaw/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	invoker := common.InteractionUser(i)
	userID, err := strconv.ParseInt(invoker.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", invoker.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	user, err := f.userService.GetOrCreateUser(ctx, userID)
	if err != nil {
		log.Errorf("Error getting user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	message := fmt.Sprintf("%s, your balance: **%s coins**", invoker.Mention(), common.FormatAmount(user.Balance))
	if err := common.RespondWithContent(s, i, message); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

func (f *Feature) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	invoker := common.InteractionUser(i)
	userID, err := strconv.ParseInt(invoker.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", invoker.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.economyService.ClaimDaily(ctx, userID)
	if err != nil {
		if msg, ok := common.UserMessage(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error claiming daily for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to claim daily reward. Please try again.")
		return
	}

	message := fmt.Sprintf("You claimed **%s coins**! New balance: **%s coins**",
		common.FormatAmount(result.Reward), common.FormatAmount(result.NewBalance))
	if err := common.RespondWithSuccess(s, i, message); err != nil {
		log.Errorf("Error responding to daily command: %v", err)
	}
}

func (f *Feature) handleGive(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var amount int64
	var recipient *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}
	if recipient == nil {
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}

	invoker := common.InteractionUser(i)
	fromID, err := strconv.ParseInt(invoker.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", invoker.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	toID, err := strconv.ParseInt(recipient.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing recipient ID %s: %v", recipient.ID, err)
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}

	result, err := f.economyService.Give(ctx, fromID, toID, amount)
	if err != nil {
		if msg, ok := common.UserMessage(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error transferring from %d to %d: %v", fromID, toID, err)
		common.RespondWithError(s, i, "Transfer failed. Please try again.")
		return
	}

	message := fmt.Sprintf("Sent **%s coins** to %s (they received **%s** after **%s** tax). Your balance: **%s coins**",
		common.FormatAmount(result.Amount),
		recipient.Mention(),
		common.FormatAmount(result.NetAmount),
		common.FormatAmount(result.Tax),
		common.FormatAmount(result.NewSenderBalance))
	if err := common.RespondWithSuccess(s, i, message); err != nil {
		log.Errorf("Error responding to give command: %v", err)
	}
}

var transactionLabels = map[models.TransactionType]string{
	models.TransactionTypeDaily:       "Daily reward",
	models.TransactionTypeKillGain:    "Kill reward",
	models.TransactionTypeRobGain:     "Robbery",
	models.TransactionTypeRobLoss:     "Robbed / penalty",
	models.TransactionTypeGiveIn:      "Received",
	models.TransactionTypeGiveOut:     "Sent",
	models.TransactionTypeTax:         "Tax collected",
	models.TransactionTypeProtectCost: "Protection",
	models.TransactionTypeReviveCost:  "Revive",
	models.TransactionTypeGroupClaim:  "Group claim",
}

var identityLabels = map[models.IdentityKind]string{
	models.IdentityKindDisplayName: "Display name",
	models.IdentityKindHandle:      "Handle",
}

// historyEmbed renders transactions and name changes as separate embed
// fields. Either slice may be empty; callers guard against both being
// empty at once.
func historyEmbed(entries []*models.BalanceHistory, identities []*models.IdentityHistory) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "History",
		Color: 0xF1C40F,
	}

	if len(entries) > 0 {
		var sb strings.Builder
		for _, entry := range entries {
			label := transactionLabels[entry.TransactionType]
			if label == "" {
				label = string(entry.TransactionType)
			}
			sign := "+"
			if entry.Amount < 0 {
				sign = ""
			}
			sb.WriteString(fmt.Sprintf("%s · **%s%s** · %s\n",
				common.FormatDiscordTimestamp(entry.CreatedAt, "d"),
				sign, common.FormatAmount(entry.Amount), label))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Transactions",
			Value: sb.String(),
		})
	}

	if len(identities) > 0 {
		var sb strings.Builder
		for _, entry := range identities {
			label := identityLabels[entry.Kind]
			if label == "" {
				label = string(entry.Kind)
			}
			sb.WriteString(fmt.Sprintf("%s · %s: **%s**\n",
				common.FormatDiscordTimestamp(entry.CreatedAt, "d"),
				label, entry.Value))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Name changes",
			Value: sb.String(),
		})
	}

	return embed
}

func (f *Feature) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	invoker := common.InteractionUser(i)
	userID, err := strconv.ParseInt(invoker.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing user ID %s: %v", invoker.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	entries, err := f.userService.GetBalanceHistory(ctx, userID, f.historyLimit)
	if err != nil {
		log.Errorf("Error getting balance history for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to retrieve history. Please try again.")
		return
	}

	identities, err := f.userService.GetIdentityHistory(ctx, userID)
	if err != nil {
		log.Errorf("Error getting identity history for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to retrieve history. Please try again.")
		return
	}
	if len(identities) > f.historyLimit {
		identities = identities[:f.historyLimit]
	}

	if len(entries) == 0 && len(identities) == 0 {
		common.RespondWithError(s, i, "No history yet.")
		return
	}

	if err := common.RespondWithEmbed(s, i, historyEmbed(entries, identities)); err != nil {
		log.Errorf("Error responding to history command: %v", err)
	}
}
