package sanitizer

import "strings"

// NormalizeEmail trims and lowercases an address so that the same mailbox
// typed with different casing maps to one account.
func NormalizeEmail(email string) string {
	return Apply(email, Trim, ToLower)
}

// MaskEmail preserves the domain for recognition while hiding the local part.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return email
	}

	local, domain := email[:at], email[at+1:]
	if len(local) == 1 {
		return "*@" + domain
	}

	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
