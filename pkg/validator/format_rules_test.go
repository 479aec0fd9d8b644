package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qauto/garage/pkg/validator"
)

func TestIsEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"rina.n.qa+1712345678901@gmail.com",
		"kate@example.com",
		"first.last@sub.example.co",
		"a_b-c@my-domain.org",
	}
	for _, email := range valid {
		t.Run("valid "+email, func(t *testing.T) {
			t.Parallel()
			assert.True(t, validator.IsEmail(email))
		})
	}

	invalid := []string{
		"",
		"invalidemail",
		"testemail.com",
		"TestUser1@",
		"@gmail.com",
		"user@@gmail.com",
		"user test@gmail.com",
		"usertest.@gmail.com",
		".usertest@gmail.com",
		"user..test@gmail.com",
		"usertest@gmailcom",
		"usertest@gmail..com",
		"usertest@-gmail.com",
		"usertest@gmail.c",
		"usertest@gmail.c0m",
		" usertest@gmail.com",
		"usertest@gmail.com ",
		strings.Repeat("a", 65) + "@gmail.com",
	}
	for _, email := range invalid {
		t.Run("invalid "+email, func(t *testing.T) {
			t.Parallel()
			assert.False(t, validator.IsEmail(email))
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	rule := validator.ValidEmail("email", "user@@gmail.com")
	assert.False(t, rule.Check())
	assert.Equal(t, "email", rule.Error.Field)
	assert.Equal(t, "validation.email", rule.Error.TranslationKey)
}
