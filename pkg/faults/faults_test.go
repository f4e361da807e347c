package faults

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("title", "required")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("get mission: %w", ErrNotFound)))
	assert.Equal(t, KindTransient, KindOf(Wrap(KindTransient, "store busy", errors.New("locked"))))
	assert.Equal(t, KindFatal, KindOf(errors.New("plain")))
	assert.Equal(t, KindFatal, KindOf(nil))
}

func TestSentinelsSurviveWithDetail(t *testing.T) {
	err := ErrNotOwner.WithDetail(map[string]any{"lock_id": "lck-1"})
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Equal(t, "lck-1", err.Detail["lock_id"])

	// The original sentinel carries no detail after the copy.
	assert.Nil(t, ErrNotOwner.Detail)
}

func TestIsMatchesByKindAndMessage(t *testing.T) {
	assert.NotErrorIs(t, ErrNotOwner, ErrNotAssigned)
	assert.NotErrorIs(t, New(KindPrecondition, "other message"), ErrNotOwner)
	assert.ErrorIs(t, New(KindNotFound, "entity not found"), ErrNotFound)
}

func TestValidationDetail(t *testing.T) {
	err := Validation("progress", "must be within [0,100]")
	assert.Equal(t, "progress", err.Detail["field"])
	assert.Contains(t, err.Error(), "field 'progress'")
}

func TestWrapExposesCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := Wrap(KindTransient, "append failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "STORE_UNAVAILABLE")
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.True(t, IsTransient(err))
}
