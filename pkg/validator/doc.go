// Package validator provides small, composable validation rules for the
// account registration inputs: required strings, rune-length bounds,
// ASCII-letter names, e-mail shape, password strength and equality.
//
// Every rule is available in two shapes. Predicates (IsEmail,
// IsStrongPassword, RuneLenBetween, ...) are plain functions over a value
// and are what the registration form's rule catalog is built from. Rule
// constructors (ValidEmail, StrongPassword, LenBetween, ...) bind a field
// name and value to a predicate together with an error message, and are
// evaluated with Apply, which aggregates every failure into a
// ValidationErrors value that satisfies the error interface.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.StrongPassword("password", password, validator.DefaultPasswordStrength()),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// Messages can be replaced per call with Rule.WithMessage so that callers
// can surface their own user-facing copy while keeping the rule logic here.
//
// The package keeps no state and is safe for concurrent use.
package validator
