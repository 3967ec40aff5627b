package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	err := NewUserError("End time must be after start time", "Check the start and end times")
	assert.Equal(t, "End time must be after start time", err.Error())
	assert.True(t, IsUserError(err))
	assert.False(t, IsSystemError(err))

	withField := NewUserErrorWithField("date", "2024-3-1", "Invalid date", "Use YYYY-MM-DD")
	assert.Equal(t, "Invalid date: '2024-3-1'", withField.Error())
}

func TestSystemError(t *testing.T) {
	cause := stderrors.New("disk unplugged")
	err := NewSystemError("failed to persist entries", cause)

	assert.True(t, IsSystemError(err))
	assert.ErrorIs(t, err, cause)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	wrapped := Wrap(ErrEmptyMonth, "clearing month")
	assert.ErrorIs(t, wrapped, ErrEmptyMonth)
	assert.Contains(t, wrapped.Error(), "clearing month")
}

func TestAsUserError(t *testing.T) {
	wrapped := Wrap(NewUserError("bad input", "fix it"), "saving entry")
	ue, ok := AsUserError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "fix it", ue.Suggestion)

	_, ok = AsUserError(stderrors.New("plain"))
	assert.False(t, ok)
}
