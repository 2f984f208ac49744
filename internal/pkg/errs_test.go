package pkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage("delete subgroup subscriptions", cause)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "delete subgroup subscriptions")

	assert.ErrorIs(t, Validationf("user id not provided"), ErrValidation)
	assert.ErrorIs(t, Conflictf("email already registered"), ErrConflict)
	assert.ErrorIs(t, NotFoundf("user %d", 7), ErrNotFound)
	assert.Equal(t, "not found: user 7", NotFoundf("user %d", 7).Error())
}

func TestReason(t *testing.T) {
	assert.Equal(t, "invalidEmail", Reason(ErrInvalidEmail))
	assert.Equal(t, "invalidPassword", Reason(ErrInvalidPassword))
	assert.Equal(t, "", Reason(ErrAuth))
	assert.ErrorIs(t, ErrInvalidPassword, ErrAuth)
}
