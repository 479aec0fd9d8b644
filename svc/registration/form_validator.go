package registration

// FormValidator aggregates the five field validators of the form. It is not
// safe for concurrent use; Form serializes access to it.
type FormValidator struct {
	fields []*FieldValidator
	index  map[FieldName]*FieldValidator
}

func NewFormValidator() *FormValidator {
	fv := &FormValidator{
		fields: make([]*FieldValidator, 0, len(fieldOrder)),
		index:  make(map[FieldName]*FieldValidator, len(fieldOrder)),
	}
	for _, name := range fieldOrder {
		v := NewFieldValidator(name)
		fv.fields = append(fv.fields, v)
		fv.index[name] = v
	}
	return fv
}

// Field returns the validator for name, or nil for an unknown field.
func (fv *FormValidator) Field(name FieldName) *FieldValidator {
	return fv.index[name]
}

func (fv *FormValidator) SetValue(name FieldName, raw string) error {
	v := fv.index[name]
	if v == nil {
		return ErrUnknownField
	}
	v.SetValue(raw)
	return nil
}

func (fv *FormValidator) Blur(name FieldName) error {
	v := fv.index[name]
	if v == nil {
		return ErrUnknownField
	}
	v.Blur()
	return nil
}

// TouchAll marks every field touched so latent errors become visible.
func (fv *FormValidator) TouchAll() {
	for _, v := range fv.fields {
		v.Touch()
	}
}

// IsSubmittable reports whether every rule of every field passes on the
// current normalized values, touched or not.
func (fv *FormValidator) IsSubmittable() bool {
	siblings := fv.siblings()
	for _, v := range fv.fields {
		if len(v.Evaluate(siblings)) > 0 {
			return false
		}
	}
	return true
}

// VisibleErrors returns the errors of touched fields. Fields without
// visible errors are omitted.
func (fv *FormValidator) VisibleErrors() map[FieldName][]string {
	siblings := fv.siblings()
	out := make(map[FieldName][]string)
	for _, v := range fv.fields {
		if errs := v.VisibleErrors(siblings); len(errs) > 0 {
			out[v.name] = errs
		}
	}
	return out
}

// Values returns the normalized value of every field.
func (fv *FormValidator) Values() map[FieldName]string {
	return fv.siblings()
}

// State returns the field snapshots and the submit gate. Server error and
// submitting flags belong to Form and are left zero.
func (fv *FormValidator) State() FormState {
	siblings := fv.siblings()
	state := FormState{
		Fields:      make([]FieldState, 0, len(fv.fields)),
		Submittable: true,
	}
	for _, v := range fv.fields {
		state.Fields = append(state.Fields, v.State(siblings))
		if len(v.Evaluate(siblings)) > 0 {
			state.Submittable = false
		}
	}
	return state
}

// Reset clears every field.
func (fv *FormValidator) Reset() {
	for _, v := range fv.fields {
		v.Reset()
	}
}

func (fv *FormValidator) siblings() Siblings {
	s := make(Siblings, len(fv.fields))
	for _, v := range fv.fields {
		s[v.name] = v.normalized
	}
	return s
}
