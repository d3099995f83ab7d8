package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration. Every economy constant is
// configurable; none are computed in code.
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL string

	// Keep-alive web server
	KeepAliveAddr string

	// Owner account that collects transfer tax
	OwnerID int64

	// Economy constants
	StartingBalance  int64
	TaxRate          float64
	DailyReward      int64
	GroupClaimReward int64

	// RPG constants
	RobPenalty       int64
	ProtectCost      int64
	ReviveCost       int64
	MinKillReward    int64
	MaxKillReward    int64
	ReviveDailyLimit int
	DeathDuration    time.Duration
	ProtectDuration  time.Duration

	// Reporting
	LeaderboardLimit    int
	BalanceHistoryLimit int

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		KeepAliveAddr:  ":8080",

		// Economy defaults
		StartingBalance:  100,
		TaxRate:          0.05,
		DailyReward:      100,
		GroupClaimReward: 500,

		// RPG defaults
		RobPenalty:       50,
		ProtectCost:      500,
		ReviveCost:       100,
		MinKillReward:    10,
		MaxKillReward:    20,
		ReviveDailyLimit: 3,
		DeathDuration:    6 * time.Hour,
		ProtectDuration:  24 * time.Hour,

		LeaderboardLimit:    10,
		BalanceHistoryLimit: 15,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if addr := os.Getenv("KEEP_ALIVE_ADDR"); addr != "" {
		config.KeepAliveAddr = addr
	}
	if owner := os.Getenv("OWNER_ID"); owner != "" {
		id, err := strconv.ParseInt(owner, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid OWNER_ID: %w", err)
		}
		config.OwnerID = id
	}

	overrideInt64(&config.StartingBalance, "STARTING_BALANCE")
	overrideInt64(&config.DailyReward, "DAILY_REWARD")
	overrideInt64(&config.GroupClaimReward, "GROUP_CLAIM_REWARD")
	overrideInt64(&config.RobPenalty, "ROB_PENALTY")
	overrideInt64(&config.ProtectCost, "PROTECT_COST")
	overrideInt64(&config.ReviveCost, "REVIVE_COST")
	overrideInt64(&config.MinKillReward, "MIN_KILL_REWARD")
	overrideInt64(&config.MaxKillReward, "MAX_KILL_REWARD")
	overrideInt(&config.ReviveDailyLimit, "REVIVE_DAILY_LIMIT")
	overrideInt(&config.LeaderboardLimit, "LEADERBOARD_LIMIT")
	overrideInt(&config.BalanceHistoryLimit, "BALANCE_HISTORY_LIMIT")
	overrideDuration(&config.DeathDuration, "DEATH_DURATION")
	overrideDuration(&config.ProtectDuration, "PROTECT_DURATION")

	if rate := os.Getenv("TAX_RATE"); rate != "" {
		parsed, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
		}
		config.TaxRate = parsed
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.TaxRate < 0 || config.TaxRate >= 1 {
		return nil, fmt.Errorf("TAX_RATE must be in [0, 1), got %v", config.TaxRate)
	}
	if config.MaxKillReward < config.MinKillReward {
		return nil, fmt.Errorf("MAX_KILL_REWARD (%d) must be >= MIN_KILL_REWARD (%d)",
			config.MaxKillReward, config.MinKillReward)
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.OwnerID == 0 {
			return nil, fmt.Errorf("OWNER_ID is required")
		}
	}

	return config, nil
}

func overrideInt64(target *int64, key string) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			*target = parsed
		}
	}
}

func overrideInt(target *int, key string) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func overrideDuration(target *time.Duration, key string) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			*target = parsed
		}
	}
}
