package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserWindows(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	fresh := &User{DeathUntil: Epoch, ProtectUntil: Epoch}
	assert.False(t, fresh.IsDead(now))
	assert.False(t, fresh.IsProtected(now))

	dead := &User{DeathUntil: now.Add(time.Hour)}
	assert.True(t, dead.IsDead(now))

	// a window ending exactly now is inactive
	boundary := &User{DeathUntil: now, ProtectUntil: now}
	assert.False(t, boundary.IsDead(now))
	assert.False(t, boundary.IsProtected(now))

	expired := &User{ProtectUntil: now.Add(-time.Second)}
	assert.False(t, expired.IsProtected(now))
}

func TestUserUpdateIsEmpty(t *testing.T) {
	assert.True(t, UserUpdate{}.IsEmpty())

	balance := int64(50)
	assert.False(t, UserUpdate{Balance: &balance}.IsEmpty())

	date := "2024-06-15"
	assert.False(t, UserUpdate{ReviveCountDate: &date}.IsEmpty())
}
