package models

import (
	"time"
)

// TransactionType represents the category tag of a balance change
type TransactionType string

const (
	TransactionTypeDaily       TransactionType = "daily"
	TransactionTypeKillGain    TransactionType = "kill_gain"
	TransactionTypeRobGain     TransactionType = "rob_gain"
	TransactionTypeRobLoss     TransactionType = "rob_loss"
	TransactionTypeGiveIn      TransactionType = "give_in"
	TransactionTypeGiveOut     TransactionType = "give_out"
	TransactionTypeTax         TransactionType = "tax"
	TransactionTypeProtectCost TransactionType = "protect_cost"
	TransactionTypeReviveCost  TransactionType = "revive_cost"
	TransactionTypeGroupClaim  TransactionType = "group_claim"
)

// BalanceHistory is one immutable ledger entry. Every balance change is
// paired with exactly one of these; an unpaired change is a defect.
type BalanceHistory struct {
	ID              int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	TransactionType TransactionType `db:"transaction_type"`
	Amount          int64           `db:"amount"`
	Details         string          `db:"details"`
	CreatedAt       time.Time       `db:"created_at"`
}
