// Package domain contains core business entities and rules.
package domain

// Author represents a person quotes are attributed to.
// This is a domain entity - it has no knowledge of external systems.
type Author struct {
	// ID is the database-assigned identifier, zero until persisted.
	ID int64

	// First is the author's first name.
	First string

	// Last is the author's last name.
	Last string
}

// FormattedName returns the display form "last, first".
func (a Author) FormattedName() string {
	return a.Last + ", " + a.First
}
