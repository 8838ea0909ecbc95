package users

import (
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`^(?:[+0])?[0-9]{11}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_./-]+@[a-zA-Z0-9_./-]+\.[a-zA-Z]{2,5}$`)
	nonPhoneChar = regexp.MustCompile(`[^+\d]`)
)

// NormalizePhone keeps only '+' and digits.
func NormalizePhone(raw string) string {
	return nonPhoneChar.ReplaceAllString(raw, "")
}

// ValidPhone reports whether a normalized phone has 11 digits, optionally
// prefixed by '+' or '0'.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizeLogin maps user-typed login input to a registry key. Email-shaped
// input is returned verbatim; anything else is treated as a loosely formatted
// phone number.
func NormalizeLogin(s string) string {
	if IsEmail(s) {
		return s
	}
	return strings.TrimSpace(NormalizePhone(s))
}

// SplitFullName splits "First [Last]" into its parts. Exactly one or two
// whitespace-separated tokens are accepted.
func SplitFullName(s string) (first, last string, err error) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
		return parts[0], "", nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", invalid("", "firstName is empty")
	}
}

// SplitSaltAndHash splits an exported "salt:hash" pair. Blank segments are
// ignored and exactly two must remain.
func SplitSaltAndHash(s string) (salt, hash string, err error) {
	var parts []string
	for _, p := range strings.Split(s, ":") {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != 2 {
		return "", "", invalid("", "wrong hash")
	}
	return parts[0], parts[1], nil
}
