package registration

import "github.com/qauto/garage/pkg/sanitizer"

// FieldValidator owns one input: its raw and normalized values, whether it
// has been touched, and the rules it is checked against.
type FieldValidator struct {
	name      FieldName
	rules     []FieldRule
	normalize func(string) string

	raw        string
	normalized string
	touched    bool
}

// NewFieldValidator builds a validator for name with the catalog rules and
// the field's normalization.
func NewFieldValidator(name FieldName) *FieldValidator {
	return &FieldValidator{
		name:      name,
		rules:     Rules(name),
		normalize: normalizerFor(name),
	}
}

// Names are trimmed. Emails and passwords are taken as typed.
func normalizerFor(name FieldName) func(string) string {
	switch name {
	case Name, LastName:
		return sanitizer.Trim
	default:
		return sanitizer.Identity[string]
	}
}

func (v *FieldValidator) Name() FieldName { return v.name }

func (v *FieldValidator) Touched() bool { return v.touched }

func (v *FieldValidator) RawValue() string { return v.raw }

func (v *FieldValidator) NormalizedValue() string { return v.normalized }

// SetValue records a value change.
func (v *FieldValidator) SetValue(raw string) {
	v.raw = raw
	v.normalized = v.normalize(raw)
}

// Blur marks the field touched and writes the normalized value back as the
// displayed value.
func (v *FieldValidator) Blur() {
	v.normalized = v.normalize(v.raw)
	v.raw = v.normalized
	v.touched = true
}

// Touch marks the field touched without changing its value.
func (v *FieldValidator) Touch() { v.touched = true }

// Reset returns the field to an empty, untouched state.
func (v *FieldValidator) Reset() {
	v.raw, v.normalized, v.touched = "", "", false
}

// Evaluate returns every failing rule message regardless of touched state.
func (v *FieldValidator) Evaluate(siblings Siblings) []string {
	return evaluate(v.name, v.rules, v.normalized, siblings).Get(string(v.name))
}

// VisibleErrors is Evaluate for touched fields and nil otherwise.
func (v *FieldValidator) VisibleErrors(siblings Siblings) []string {
	if !v.touched {
		return nil
	}
	return v.Evaluate(siblings)
}

func (v *FieldValidator) State(siblings Siblings) FieldState {
	errs := v.VisibleErrors(siblings)
	return FieldState{
		Name:            v.name,
		RawValue:        v.raw,
		NormalizedValue: v.normalized,
		Touched:         v.touched,
		Errors:          errs,
		IsInvalid:       len(errs) > 0,
	}
}
