package common

import (
	"errors"
	"testing"
	"time"

	"outlaw/service"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage_KnownErrors(t *testing.T) {
	for _, err := range []error{
		service.ErrSelfTarget,
		service.ErrNonPositiveAmount,
		service.ErrInsufficientFunds,
		service.ErrTargetInsufficientFunds,
		service.ErrActorDead,
		service.ErrTargetDead,
		service.ErrTargetNotDead,
		service.ErrTargetProtected,
		service.ErrReviveLimitReached,
		service.ErrDailyAlreadyClaimed,
	} {
		msg, ok := UserMessage(err)
		assert.True(t, ok, "expected a message for %v", err)
		assert.NotEmpty(t, msg)
	}
}

func TestUserMessage_TypedErrors(t *testing.T) {
	msg, ok := UserMessage(&service.AlreadyProtectedError{Until: time.Now()})
	assert.True(t, ok)
	assert.Contains(t, msg, "already protected")

	msg, ok = UserMessage(&service.AlreadyClaimedError{ClaimedBy: 42})
	assert.True(t, ok)
	assert.Contains(t, msg, "<@42>")
}

func TestUserMessage_UnknownError(t *testing.T) {
	_, ok := UserMessage(errors.New("connection refused"))
	assert.False(t, ok)
}

func TestUserMessage_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), service.ErrInsufficientFunds)
	msg, ok := UserMessage(wrapped)
	assert.True(t, ok)
	assert.NotEmpty(t, msg)
}
