package registration

// FieldName identifies an input of the registration form.
type FieldName string

const (
	Name           FieldName = "name"
	LastName       FieldName = "lastName"
	Email          FieldName = "email"
	Password       FieldName = "password"
	RepeatPassword FieldName = "repeatPassword"
)

var fieldOrder = [...]FieldName{
	Name,
	LastName,
	Email,
	Password,
	RepeatPassword,
}

// Fields returns every field in form order.
func Fields() []FieldName {
	out := make([]FieldName, len(fieldOrder))
	copy(out, fieldOrder[:])
	return out
}

func (f FieldName) String() string { return string(f) }

// Valid reports whether f is one of the form's fields.
func (f FieldName) Valid() bool {
	for _, name := range fieldOrder {
		if name == f {
			return true
		}
	}
	return false
}

// Label returns the human-readable field caption.
func (f FieldName) Label() string {
	switch f {
	case Name:
		return "Name"
	case LastName:
		return "Last name"
	case Email:
		return "Email"
	case Password:
		return "Password"
	case RepeatPassword:
		return "Re-enter password"
	default:
		return string(f)
	}
}

// Siblings gives rules read-only access to the normalized values of the
// other fields.
type Siblings map[FieldName]string

func (s Siblings) Get(f FieldName) string { return s[f] }

// FieldState is a render-ready snapshot of one field.
type FieldState struct {
	Name            FieldName
	RawValue        string
	NormalizedValue string
	Touched         bool
	Errors          []string
	IsInvalid       bool
}

// FormState is a render-ready snapshot of the whole form.
type FormState struct {
	Fields      []FieldState
	ServerError string
	Submitting  bool
	Submittable bool
}

// Field returns the state of name, or false if it is missing.
func (s FormState) Field(name FieldName) (FieldState, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldState{}, false
}
