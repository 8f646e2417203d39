// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// NormalizeIdentity derives the canonical identifier for a person from a raw
// phone number or email address. Phone numbers are reduced to their digits so
// that "+91 90000-00001" and "9000000001" resolve to the same user; emails are
// used verbatim, trimmed and lower-cased. The result is the primary key of the
// users collection and the join key between a user and their orders.
func NormalizeIdentity(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if strings.Contains(raw, "@") {
		return strings.ToLower(raw)
	}

	var digits strings.Builder
	digits.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}
