package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether value is empty or whitespace only.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// RuneLenBetween reports whether value has between min and max characters, inclusive.
// Characters are counted as runes so that non-ASCII input is not over-counted.
func RuneLenBetween(value string, min, max int) bool {
	n := utf8.RuneCountInString(value)
	return n >= min && n <= max
}

// IsASCIILetters reports whether value is non-empty and made of A-Z and a-z only.
func IsASCIILetters(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !IsBlank(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// LenBetween validates the character length of value against [min, max].
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return RuneLenBetween(value, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be from %d to %d characters long", min, max),
			TranslationKey: "validation.length_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// LettersOnly validates that value contains only English letters.
func LettersOnly(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsASCIILetters(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only English letters",
			TranslationKey: "validation.letters_only",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Required is an alias for RequiredString.
func Required(field, value string) Rule {
	return RequiredString(field, value)
}
