package service

import (
	"time"

	"outlaw/config"
)

// testConfig returns a config with the default economy constants,
// without reading the environment.
func testConfig() *config.Config {
	return &config.Config{
		OwnerID:          999,
		StartingBalance:  100,
		TaxRate:          0.05,
		DailyReward:      100,
		GroupClaimReward: 500,
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

		Environment: "test",
	}
}
