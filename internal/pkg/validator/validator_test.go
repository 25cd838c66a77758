package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co",
		"user+tag@example.io",
	}
	invalid := []string{
		"",
		"user",
		"user@",
		"@example.com",
		"user@example",
	}

	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("01890a5d-ac96-774b-bcce-b302099a8057"))
	assert.False(t, IsValidUUID("01890a5d-ac96-474b-bcce-b302099a8057")) // v4
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2025-06-02", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"02-06-2025", false},
		{"", false},
	}

	for _, tt := range tests {
		_, ok := IsValidDate(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestIsValidClockTime(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"09:30", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30:00", false},
		{"half past nine", false},
		{"", false},
	}

	for _, tt := range tests {
		_, ok := IsValidClockTime(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
	}

	parsed, ok := IsValidClockTime("10:05")
	assert.True(t, ok)
	assert.Equal(t, 10, parsed.Hour())
	assert.Equal(t, 5, parsed.Minute())
}

func TestIsValidMonth(t *testing.T) {
	parsed, ok := IsValidMonth("2025-06")
	assert.True(t, ok)
	assert.Equal(t, 2025, parsed.Year())

	_, ok = IsValidMonth("2025-6")
	assert.False(t, ok)
	_, ok = IsValidMonth("2025-06-01")
	assert.False(t, ok)
	_, ok = IsValidMonth("")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "week", Message: "week must be between 1 and 53"},
	}

	m := errs.ToMap()
	assert.Equal(t, "email is required", m["email"])
	assert.Equal(t, "week must be between 1 and 53", m["week"])
	assert.NotEmpty(t, errs.Error())
}
