package registration

import (
	"cmp"
	"slices"

	"github.com/qauto/garage/pkg/validator"
)

// Length limits shared by the form and the server-side registry.
const (
	NameMinLength     = 2
	NameMaxLength     = 20
	PasswordMinLength = 8
	PasswordMaxLength = 15
)

const (
	msgNameRequired     = "Name required"
	msgNameInvalid      = "Name is invalid"
	msgNameLength       = "Name has to be from 2 to 20 characters long"
	msgLastNameRequired = "Last name required"
	msgLastNameInvalid  = "Last name is invalid"
	msgLastNameLength   = "Last name has to be from 2 to 20 characters long"
	msgEmailRequired    = "Email required"
	msgEmailIncorrect   = "Email is incorrect"
	msgPasswordRequired = "Password required"
	msgRepeatRequired   = "Re-enter password required"
	msgPasswordStrength = "Password has to be from 8 to 15 characters long and contain at least one integer, one capital, and one small letter"
	msgPasswordMismatch = "Passwords do not match"
)

// FieldRule is one entry of the rule catalog. Check reports whether value
// passes; rules other than "required" pass on empty input so that an empty
// field reports a single message.
type FieldRule struct {
	ID      string
	Order   int
	Message string
	Check   func(value string, siblings Siblings) bool
}

var passwordStrength = validator.PasswordStrengthConfig{
	MinLength:        PasswordMinLength,
	MaxLength:        PasswordMaxLength,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireDigits:    true,
}

func required(value string, _ Siblings) bool { return value != "" }

func lettersOnly(value string, _ Siblings) bool {
	return value == "" || validator.IsASCIILetters(value)
}

func nameLength(value string, _ Siblings) bool {
	return value == "" || validator.RuneLenBetween(value, NameMinLength, NameMaxLength)
}

func emailShape(value string, _ Siblings) bool {
	return value == "" || validator.IsEmail(value)
}

func strongPassword(value string, _ Siblings) bool {
	return value == "" || validator.IsStrongPassword(value, passwordStrength)
}

// matchesPassword only judges a non-empty, strong confirmation.
func matchesPassword(value string, siblings Siblings) bool {
	if value == "" || !validator.IsStrongPassword(value, passwordStrength) {
		return true
	}
	return value == siblings.Get(Password)
}

var catalog = map[FieldName][]FieldRule{
	Name: {
		{ID: "name.required", Order: 1, Message: msgNameRequired, Check: required},
		{ID: "name.invalid", Order: 2, Message: msgNameInvalid, Check: lettersOnly},
		{ID: "name.length", Order: 3, Message: msgNameLength, Check: nameLength},
	},
	LastName: {
		{ID: "last_name.required", Order: 1, Message: msgLastNameRequired, Check: required},
		{ID: "last_name.invalid", Order: 2, Message: msgLastNameInvalid, Check: lettersOnly},
		{ID: "last_name.length", Order: 3, Message: msgLastNameLength, Check: nameLength},
	},
	Email: {
		{ID: "email.required", Order: 1, Message: msgEmailRequired, Check: required},
		{ID: "email.incorrect", Order: 2, Message: msgEmailIncorrect, Check: emailShape},
	},
	Password: {
		{ID: "password.required", Order: 1, Message: msgPasswordRequired, Check: required},
		{ID: "password.strength", Order: 2, Message: msgPasswordStrength, Check: strongPassword},
	},
	RepeatPassword: {
		{ID: "repeat_password.required", Order: 1, Message: msgRepeatRequired, Check: required},
		{ID: "repeat_password.strength", Order: 2, Message: msgPasswordStrength, Check: strongPassword},
		{ID: "repeat_password.match", Order: 3, Message: msgPasswordMismatch, Check: matchesPassword},
	},
}

// Rules returns a copy of the catalog entries for field sorted by Order.
func Rules(field FieldName) []FieldRule {
	rules := slices.Clone(catalog[field])
	slices.SortStableFunc(rules, func(a, b FieldRule) int { return cmp.Compare(a.Order, b.Order) })
	return rules
}

// evaluate runs every rule and returns the failures in rule order.
func evaluate(field FieldName, rules []FieldRule, value string, siblings Siblings) validator.ValidationErrors {
	checks := make([]validator.Rule, 0, len(rules))
	for _, r := range rules {
		checks = append(checks, validator.Rule{
			Check: func() bool { return r.Check(value, siblings) },
			Error: validator.ValidationError{
				Field:          string(field),
				Message:        r.Message,
				TranslationKey: r.ID,
			},
		})
	}
	return validator.ExtractValidationErrors(validator.Apply(checks...))
}

// Validate evaluates every field of values as if all of them were touched.
// It returns nil or validator.ValidationErrors ordered by field, then rule.
func Validate(values map[FieldName]string) error {
	form := NewFormValidator()
	for _, name := range fieldOrder {
		_ = form.SetValue(name, values[name])
	}
	form.TouchAll()

	siblings := form.siblings()
	var errs validator.ValidationErrors
	for _, fv := range form.fields {
		errs = append(errs, evaluate(fv.name, fv.rules, fv.normalized, siblings)...)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
