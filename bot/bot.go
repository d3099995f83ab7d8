package bot

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"outlaw/bot/features/combat"
	"outlaw/bot/features/economy"
	"outlaw/bot/features/fun"
	"outlaw/bot/features/groups"
	"outlaw/bot/features/leaderboard"
	"outlaw/bot/features/moderation"
	"outlaw/bot/features/profile"
	"outlaw/dependencies/random"
	"outlaw/events"
	"outlaw/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token        string
	GuildID      string
	HistoryLimit int
}

type Bot struct {
	config      Config
	session     *discordgo.Session
	userService service.UserService
	eventBus    *events.Bus

	economyFeature     *economy.Feature
	combatFeature      *combat.Feature
	profileFeature     *profile.Feature
	leaderboardFeature *leaderboard.Feature
	groupsFeature      *groups.Feature
	moderationFeature  *moderation.Feature
	funFeature         *fun.Feature
}

func New(config Config, userService service.UserService, economyService service.EconomyService, combatService service.CombatService, groupService service.GroupService, statsService service.StatsService, rng random.Random, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsAll

	bot := &Bot{
		config:      config,
		session:     dg,
		userService: userService,
		eventBus:    eventBus,

		economyFeature:     economy.New(userService, economyService, config.HistoryLimit),
		combatFeature:      combat.New(combatService),
		profileFeature:     profile.New(statsService),
		leaderboardFeature: leaderboard.New(statsService),
		groupsFeature:      groups.New(groupService),
		moderationFeature:  moderation.New(),
		funFeature:         fun.New(rng),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register the guild the first time the bot sees it
	dg.AddHandler(bot.handleGuildCreate(groupService))

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Deliver notification events as DMs
	bot.subscribeNotifications()

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// handleGuildCreate registers a guild the first time it is seen. The
// event also fires for every guild on startup, which is harmless since
// registration is a no-op for known guilds.
func (b *Bot) handleGuildCreate(groupService service.GroupService) func(s *discordgo.Session, g *discordgo.GuildCreate) {
	return func(s *discordgo.Session, g *discordgo.GuildCreate) {
		guildID, err := strconv.ParseInt(g.ID, 10, 64)
		if err != nil {
			log.Errorf("Error parsing guild ID %s: %v", g.ID, err)
			return
		}
		ownerID, err := strconv.ParseInt(g.OwnerID, 10, 64)
		if err != nil {
			log.Errorf("Error parsing guild owner ID %s: %v", g.OwnerID, err)
			return
		}

		if err := groupService.RegisterGroup(context.Background(), guildID, ownerID); err != nil {
			log.Errorf("Error registering guild %d: %v", guildID, err)
		}
	}
}
