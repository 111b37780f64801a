// Package phone normalizes Ghanaian phone numbers to the 233-prefixed
// 12-digit form used as the account lookup key.
package phone

import "strings"

const countryCode = "233"

// Normalize strips non-digits and rewrites the number into the canonical
// 233XXXXXXXXX form. ok is false when the input cannot be a valid number.
func Normalize(raw string) (normalized string, ok bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) < 9 {
		return "", false
	}

	switch {
	case strings.HasPrefix(digits, countryCode) && len(digits) == 12:
		return digits, true
	case strings.HasPrefix(digits, "0") && len(digits) == 10:
		return countryCode + digits[1:], true
	case len(digits) == 9:
		return countryCode + digits, true
	}
	return "", false
}
