package combat

import (
	"context"
	"fmt"
	"strconv"

	"outlaw/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func parseActor(i *discordgo.InteractionCreate) (int64, error) {
	return strconv.ParseInt(common.InteractionUser(i).ID, 10, 64)
}

func (f *Feature) handleRob(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var amount int64
	var target *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			target = opt.UserValue(s)
		}
	}
	if target == nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	actorID, err := parseActor(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	result, err := f.combatService.Rob(ctx, actorID, targetID, amount)
	if err != nil {
		if msg, ok := common.UserMessage(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error robbing %d by %d: %v", targetID, actorID, err)
		common.RespondWithError(s, i, "Robbery failed. Please try again.")
		return
	}

	var message string
	if result.Success {
		message = fmt.Sprintf("💰 You robbed **%s coins** from %s!",
			common.FormatAmount(result.Amount), target.Mention())
	} else if result.Penalized {
		message = fmt.Sprintf("🚓 You got caught robbing %s and paid a **%s coin** fine.",
			target.Mention(), common.FormatAmount(result.Penalty))
	} else {
		message = fmt.Sprintf("🚓 You got caught robbing %s, but you're too broke to fine.",
			target.Mention())
	}
	if err := common.RespondWithContent(s, i, message); err != nil {
		log.Errorf("Error responding to rob command: %v", err)
	}
}

func (f *Feature) handleKill(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

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

	actorID, err := parseActor(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		common.RespondWithError(s, i, "Invalid target user.")
		return
	}

	result, err := f.combatService.Kill(ctx, actorID, targetID)
	if err != nil {
		if msg, ok := common.UserMessage(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error killing %d by %d: %v", targetID, actorID, err)
		common.RespondWithError(s, i, "Kill failed. Please try again.")
		return
	}

	message := fmt.Sprintf("🔪 You killed %s and earned **%s coins**! They are dead until %s. Total kills: **%d**",
		target.Mention(),
		common.FormatAmount(result.Reward),
		common.FormatDiscordTimestamp(result.DeathUntil, "f"),
		result.TotalKills)
	if err := common.RespondWithContent(s, i, message); err != nil {
		log.Errorf("Error responding to kill command: %v", err)
	}
}

func (f *Feature) handleProtect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	actorID, err := parseActor(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := f.combatService.Protect(ctx, actorID)
	if err != nil {
		if msg, ok := common.UserMessage(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error buying protection for %d: %v", actorID, err)
		common.RespondWithError(s, i, "Protection purchase failed. Please try again.")
		return
	}

	message := fmt.Sprintf("You are protected until %s (cost: **%s coins**).",
		common.FormatDiscordTimestamp(result.Until, "f"),
		common.FormatAmount(result.Cost))
	if err := common.RespondWithSuccess(s, i, "🛡️ "+message); err != nil {
		log.Errorf("Error responding to protect command: %v", err)
	}
}

func (f *Feature) handleRevive(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	actorID, err := parseActor(i)
	if err != nil {
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Target defaults to the actor when none is given
	targetID := actorID
	var target *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}
	if target != nil {
		targetID, err = strconv.ParseInt(target.ID, 10, 64)
		if err != nil {
			common.RespondWithError(s, i, "Invalid target user.")
			return
		}
	}

	result, err := f.combatService.Revive(ctx, actorID, targetID)
	if err != nil {
		if msg, ok := common.UserMessage(err); ok {
			common.RespondWithError(s, i, msg)
			return
		}
		log.Errorf("Error reviving %d by %d: %v", targetID, actorID, err)
		common.RespondWithError(s, i, "Revive failed. Please try again.")
		return
	}

	var message string
	if result.SelfRevive {
		message = fmt.Sprintf("You revived yourself for **%s coins**. Revives used today: %d/%d",
			common.FormatAmount(result.Cost), result.RevivesUsed, result.ReviveLimit)
	} else {
		message = fmt.Sprintf("You revived %s for **%s coins**. Revives used today: %d/%d",
			common.Mention(result.TargetID), common.FormatAmount(result.Cost),
			result.RevivesUsed, result.ReviveLimit)
	}
	if err := common.RespondWithSuccess(s, i, "⛑️ "+message); err != nil {
		log.Errorf("Error responding to revive command: %v", err)
	}
}
