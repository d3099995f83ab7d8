package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"outlaw/bot"
	"outlaw/config"
	"outlaw/database"
	"outlaw/dependencies/clock"
	"outlaw/dependencies/random"
	"outlaw/events"
	"outlaw/repository"
	"outlaw/service"
	"outlaw/web"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting outlaw bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus, cfg.StartingBalance)

	// Initialize services
	log.Println("Initializing services...")
	clk := clock.New()
	rng := random.New()
	userService := service.NewUserService(uowFactory)
	economyService := service.NewEconomyService(uowFactory, cfg, clk)
	combatService := service.NewCombatService(uowFactory, cfg, clk, rng)
	groupService := service.NewGroupService(uowFactory, cfg, clk)
	statsService := service.NewStatsService(uowFactory, cfg, clk)
	log.Println("Services initialized successfully")

	// Start the keep-alive web server
	keepAlive := web.NewKeepAliveServer(cfg.KeepAliveAddr)
	keepAlive.Start()

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:        cfg.DiscordToken,
		GuildID:      cfg.DiscordGuildID,
		HistoryLimit: cfg.BalanceHistoryLimit,
	}
	discordBot, err := bot.New(botConfig, userService, economyService, combatService, groupService, statsService, rng, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	// Close Discord bot connection
	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := keepAlive.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down keep-alive server: %v", err)
	}

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
