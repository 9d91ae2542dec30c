package domain

import "time"

// Quote represents a quotation attributed to exactly one author.
type Quote struct {
	// ID is the database-assigned identifier, zero until persisted.
	ID int64

	// Content is the text of the quote.
	Content string

	// AuthorID references the owning author row.
	AuthorID int64

	// Author is the resolved author, populated on single-quote reads
	// and on creation. Nil in list projections.
	Author *Author

	// PostedAt is assigned by the server at insertion time when unset.
	PostedAt time.Time
}
