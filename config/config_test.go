package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, int64(100), cfg.StartingBalance)
	assert.Equal(t, 0.05, cfg.TaxRate)
	assert.Equal(t, int64(100), cfg.DailyReward)
	assert.Equal(t, int64(500), cfg.GroupClaimReward)
	assert.Equal(t, int64(50), cfg.RobPenalty)
	assert.Equal(t, 3, cfg.ReviveDailyLimit)
	assert.Equal(t, 6*time.Hour, cfg.DeathDuration)
	assert.Equal(t, 24*time.Hour, cfg.ProtectDuration)
	assert.Equal(t, ":8080", cfg.KeepAliveAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("STARTING_BALANCE", "250")
	t.Setenv("TAX_RATE", "0.1")
	t.Setenv("DEATH_DURATION", "12h")
	t.Setenv("OWNER_ID", "424242")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, int64(250), cfg.StartingBalance)
	assert.Equal(t, 0.1, cfg.TaxRate)
	assert.Equal(t, 12*time.Hour, cfg.DeathDuration)
	assert.Equal(t, int64(424242), cfg.OwnerID)
}

func TestLoad_InvalidTaxRate(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("TAX_RATE", "1.5")

	_, err := load()
	assert.Error(t, err)
}

func TestLoad_RewardRangeValidation(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("MIN_KILL_REWARD", "30")
	t.Setenv("MAX_KILL_REWARD", "20")

	_, err := load()
	assert.Error(t, err)
}

func TestLoad_ProductionRequiresCredentials(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	_, err := load()
	assert.Error(t, err)
}
