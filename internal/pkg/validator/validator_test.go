package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("abc"))
	assert.False(t, IsEmpty(" abc "))
}

func TestIsValidEmail(t *testing.T) {
	for _, email := range []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"} {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range []string{"test@", "@example.com", "test@.com", "test@com", " ", ""} {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	for _, code := range []string{"1000", "0042", "9999"} {
		assert.True(t, IsValidEmployeeCode(code), code)
	}
	for _, code := range []string{"123", "12345", "12a4", "", "ADMIN"} {
		assert.False(t, IsValidEmployeeCode(code), code)
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("maria.santos"))
	assert.True(t, IsValidUsername("chef_01"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-02-30")
	assert.False(t, ok, "impossible date accepted")

	d, ok := IsValidDate("2026-08-03")
	require.True(t, ok)
	assert.Equal(t, "Monday", d.Weekday().String())
}

func TestIsInSlice(t *testing.T) {
	types := []string{"Vacation", "Sick", "Emergency", "Unpaid"}
	assert.True(t, IsInSlice("Sick", types))
	assert.False(t, IsInSlice("Holiday", types))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is invalid"},
		{Field: "reason", Message: "reason is required"},
	}

	assert.Equal(t, "email: email is invalid; reason: reason is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":  "email is invalid",
		"reason": "reason is required",
	}, errs.ToMap())
}
