package validator

import (
	"fmt"
	"unicode/utf8"
)

// PasswordStrengthConfig describes the composition a password must satisfy.
type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
}

// DefaultPasswordStrength is the registration policy: 8-15 characters with
// at least one digit, one uppercase and one lowercase letter.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        15,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
	}
}

// IsStrongPassword reports whether value satisfies every requirement of config.
// Any other characters, including symbols, are allowed.
func IsStrongPassword(value string, config PasswordStrengthConfig) bool {
	n := utf8.RuneCountInString(value)
	if n < config.MinLength || (config.MaxLength > 0 && n > config.MaxLength) {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}

	if config.RequireUppercase && !hasUpper {
		return false
	}
	if config.RequireLowercase && !hasLower {
		return false
	}
	if config.RequireDigits && !hasDigit {
		return false
	}
	return true
}

func StrongPassword(field, value string, config PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			return IsStrongPassword(value, config)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be %d-%d characters with required character types", config.MinLength, config.MaxLength),
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"field":             field,
				"min_length":        config.MinLength,
				"max_length":        config.MaxLength,
				"require_uppercase": config.RequireUppercase,
				"require_lowercase": config.RequireLowercase,
				"require_digits":    config.RequireDigits,
			},
		},
	}
}
