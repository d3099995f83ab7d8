package bot

import (
	"context"
	"strconv"

	log "github.com/sirupsen/logrus"

	"outlaw/bot/common"

	"github.com/bwmarrin/discordgo"
)

var moderatePermission = int64(discordgo.PermissionModerateMembers)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	userOption := func(description string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: description,
			Required:    required,
		}
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "daily",
			Description: "Claim your daily reward",
		},
		{
			Name:        "give",
			Description: "Send coins to another player (a tax is deducted)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount to send",
					Required:    true,
				},
				userOption("Player to send coins to", true),
			},
		},
		{
			Name:        "history",
			Description: "Show your recent transactions and name changes",
		},
		{
			Name:        "rob",
			Description: "Try to rob coins from another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount to steal",
					Required:    true,
				},
				userOption("Player to rob", true),
			},
		},
		{
			Name:        "kill",
			Description: "Kill another player for a reward",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Player to kill", true),
			},
		},
		{
			Name:        "protect",
			Description: "Buy 24 hours of protection",
		},
		{
			Name:        "revive",
			Description: "Revive yourself or another player",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Player to revive (defaults to you)", false),
			},
		},
		{
			Name:        "profile",
			Description: "View your status",
		},
		{
			Name:        "check",
			Description: "View another player's status",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Player to check", true),
			},
		},
		{
			Name:        "toprich",
			Description: "Show the richest players",
		},
		{
			Name:        "topkills",
			Description: "Show the players with the most kills",
		},
		{
			Name:        "claim",
			Description: "Claim this server for a one-time reward",
		},
		{
			Name:        "owner",
			Description: "Show who claimed this server",
		},
		{
			Name:                     "kick",
			Description:              "Kick a member",
			DefaultMemberPermissions: &moderatePermission,
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to kick", true),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Reason for the kick",
				},
			},
		},
		{
			Name:                     "ban",
			Description:              "Ban a member",
			DefaultMemberPermissions: &moderatePermission,
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to ban", true),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Reason for the ban",
				},
			},
		},
		{
			Name:                     "unban",
			Description:              "Unban a user",
			DefaultMemberPermissions: &moderatePermission,
			Options: []*discordgo.ApplicationCommandOption{
				userOption("User to unban", true),
			},
		},
		{
			Name:                     "timeout",
			Description:              "Time out a member",
			DefaultMemberPermissions: &moderatePermission,
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to time out", true),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "minutes",
					Description: "Timeout length in minutes",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Reason for the timeout",
				},
			},
		},
		{
			Name:                     "untimeout",
			Description:              "Clear a member's timeout",
			DefaultMemberPermissions: &moderatePermission,
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Member to clear", true),
			},
		},
		{
			Name:        "flip",
			Description: "Flip a coin",
		},
		{
			Name:        "roll",
			Description: "Roll a die",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "sides",
					Description: "Number of sides (default 6)",
				},
			},
		},
		{
			Name:        "slap",
			Description: "Slap another player",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("Player to slap", true),
			},
		},
	}

	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands); err != nil {
		return err
	}

	log.Infof("Registered %d slash commands", len(commands))
	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	go b.captureIdentity(i)

	switch i.ApplicationCommandData().Name {
	case "balance", "daily", "give", "history":
		b.economyFeature.HandleCommand(s, i)
	case "rob", "kill", "protect", "revive":
		b.combatFeature.HandleCommand(s, i)
	case "profile", "check":
		b.profileFeature.HandleCommand(s, i)
	case "toprich", "topkills":
		b.leaderboardFeature.HandleCommand(s, i)
	case "claim", "owner":
		b.groupsFeature.HandleCommand(s, i)
	case "kick", "ban", "unban", "timeout", "untimeout":
		b.moderationFeature.HandleCommand(s, i)
	case "flip", "roll", "slap":
		b.funFeature.HandleCommand(s, i)
	}
}

// captureIdentity records the invoker's current display name and handle
// on every command, deduplicated against the last recorded values.
// Failures are logged and never affect command handling.
func (b *Bot) captureIdentity(i *discordgo.InteractionCreate) {
	invoker := common.InteractionUser(i)
	if invoker == nil {
		return
	}

	userID, err := strconv.ParseInt(invoker.ID, 10, 64)
	if err != nil {
		return
	}

	displayName := invoker.GlobalName
	if i.Member != nil && i.Member.Nick != "" {
		displayName = i.Member.Nick
	}

	if err := b.userService.RecordIdentity(context.Background(), userID, displayName, invoker.Username); err != nil {
		log.Errorf("Error recording identity for user %d: %v", userID, err)
	}
}
