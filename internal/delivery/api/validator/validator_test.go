package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"user_type" validate:"omitempty,oneof=customer weaver designer"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signupForm{Username: "asha", Password: "handwoven"}))

	err := v.Validate(&signupForm{Password: "short", Role: "admin"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{
		"username":  "required",
		"password":  "min=8",
		"user_type": "oneof=customer weaver designer",
	}, fields)
}

func TestFieldErrors_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
