package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qauto/garage/pkg/validator"
)

func TestIsStrongPassword(t *testing.T) {
	t.Parallel()

	cfg := validator.DefaultPasswordStrength()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"minimum length", "ValidPa1", true},
		{"maximum length", "ValidPassword12", true},
		{"symbols allowed", "123Aq!@#$%^&*", true},
		{"too short", "12345Pw", false},
		{"too long", strings.Repeat("Aa92", 4), false},
		{"no uppercase", "password123456", false},
		{"no lowercase", "PASSWORD12", false},
		{"no digits", "Password", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.IsStrongPassword(tt.value, cfg))
		})
	}
}

func TestDefaultPasswordStrength(t *testing.T) {
	t.Parallel()

	cfg := validator.DefaultPasswordStrength()
	assert.Equal(t, 8, cfg.MinLength)
	assert.Equal(t, 15, cfg.MaxLength)
	assert.True(t, cfg.RequireUppercase)
	assert.True(t, cfg.RequireLowercase)
	assert.True(t, cfg.RequireDigits)
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	t.Run("unbounded max length", func(t *testing.T) {
		t.Parallel()
		cfg := validator.PasswordStrengthConfig{MinLength: 4}
		assert.True(t, validator.StrongPassword("password", strings.Repeat("x", 200), cfg).Check())
	})

	t.Run("reports policy in translation values", func(t *testing.T) {
		t.Parallel()
		rule := validator.StrongPassword("password", "weak", validator.DefaultPasswordStrength())
		assert.False(t, rule.Check())
		assert.Equal(t, 8, rule.Error.TranslationValues["min_length"])
		assert.Equal(t, 15, rule.Error.TranslationValues["max_length"])
	})
}

func TestEqualTo(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.EqualTo("repeatPassword", "Password12", "Password12").Check())
	assert.False(t, validator.EqualTo("repeatPassword", "Password13", "Password12").Check())
	assert.Equal(t, "values do not match", validator.EqualTo("x", 1, 2).Error.Message)
}
