// Package sanitizer holds the normalization transforms applied to user input
// before it is validated or stored.
//
// Transforms are plain func(string) string values so they can be chained
// with Apply or stored as reusable pipelines with Compose:
//
//	normalizeName := sanitizer.Compose(sanitizer.Trim)
//	name := normalizeName("  Kate  ") // "Kate"
//
// Trim only strips leading and trailing whitespace; internal whitespace is
// preserved so that validators still see it. NormalizeEmail produces the
// canonical form used as the uniqueness key for accounts, and MaskEmail
// hides the local part before an address is written to logs.
//
// The package is stateless and safe for concurrent use.
package sanitizer
