package validator

import "strings"

const (
	maxEmailLength     = 254
	maxEmailLocalPart  = 64
	maxEmailLabelBytes = 63
)

// IsEmail reports whether value has the shape of a deliverable address:
// exactly one '@', a dot-atom local part, and a dotted domain whose last
// label is at least two letters. Whitespace anywhere is rejected.
func IsEmail(value string) bool {
	if value == "" || len(value) > maxEmailLength {
		return false
	}

	at := strings.IndexByte(value, '@')
	if at <= 0 || at == len(value)-1 || at != strings.LastIndexByte(value, '@') {
		return false
	}

	local, domain := value[:at], value[at+1:]
	if len(local) > maxEmailLocalPart {
		return false
	}

	for atom := range strings.SplitSeq(local, ".") {
		if atom == "" {
			return false
		}
		for i := 0; i < len(atom); i++ {
			if !isAtomChar(atom[i]) {
				return false
			}
		}
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isDomainLabel(label) {
			return false
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for i := 0; i < len(tld); i++ {
		if !isASCIILetter(tld[i]) {
			return false
		}
	}

	return true
}

// ValidEmail validates that a string is a well-formed email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isDomainLabel(label string) bool {
	if label == "" || len(label) > maxEmailLabelBytes {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '-' {
			return false
		}
	}
	return true
}

func isAtomChar(c byte) bool {
	if isASCIILetter(c) || isASCIIDigit(c) {
		return true
	}
	return strings.IndexByte("!#$%&'*+/=?^_`{|}~-", c) >= 0
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
