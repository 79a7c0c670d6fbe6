package domain

import "strings"

// Intern is a developer intern from the roster. Email is the identity key
// and is stored normalized.
type Intern struct {
	Email         string
	FullName      string
	Affiliation   string
	Gender        string
	ContactNumber string
}

// Normalize canonicalizes emails and affiliations for matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
