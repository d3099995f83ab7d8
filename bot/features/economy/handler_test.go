package economy

import (
	"testing"
	"time"

	"outlaw/models"

	"github.com/stretchr/testify/assert"
)

func TestHistoryEmbed_RendersTransactionsAndNameChanges(t *testing.T) {
	created := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	entries := []*models.BalanceHistory{
		{UserID: 1, TransactionType: models.TransactionTypeDaily, Amount: 100, CreatedAt: created},
		{UserID: 1, TransactionType: models.TransactionTypeGiveOut, Amount: -50, CreatedAt: created},
	}
	identities := []*models.IdentityHistory{
		{UserID: 1, Kind: models.IdentityKindDisplayName, Value: "New Name", CreatedAt: created},
		{UserID: 1, Kind: models.IdentityKindHandle, Value: "newhandle", CreatedAt: created},
	}

	embed := historyEmbed(entries, identities)

	assert.Len(t, embed.Fields, 2)
	assert.Equal(t, "Transactions", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "+100")
	assert.Contains(t, embed.Fields[0].Value, "Daily reward")
	assert.Contains(t, embed.Fields[0].Value, "-50")
	assert.Equal(t, "Name changes", embed.Fields[1].Name)
	assert.Contains(t, embed.Fields[1].Value, "Display name: **New Name**")
	assert.Contains(t, embed.Fields[1].Value, "Handle: **newhandle**")
}

func TestHistoryEmbed_NameChangesOnly(t *testing.T) {
	identities := []*models.IdentityHistory{
		{UserID: 1, Kind: models.IdentityKindHandle, Value: "firsthandle"},
	}

	embed := historyEmbed(nil, identities)

	assert.Len(t, embed.Fields, 1)
	assert.Equal(t, "Name changes", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "firsthandle")
}
