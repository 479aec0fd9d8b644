package validator

// EqualTo validates that value equals other, e.g. a password confirmation.
func EqualTo[T comparable](field string, value, other T) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "values do not match",
			TranslationKey: "validation.equal_to",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
