package dto

import (
	"encoding/json"
	"strings"
)

// CreateQuoteRequest is the request body for POST /quotes/.
//
// The id and posted_at attributes are dump-only: clients may send them
// but they are silently ignored (gin drops unknown fields on bind).
type CreateQuoteRequest struct {
	Content string      `json:"content" validate:"required,notempty"`
	Author  AuthorValue `json:"author"  validate:"namepair"`
}

// AuthorValue is the author field of a quote-creation request. Clients
// may send either the structured form {"first": ..., "last": ...} or a
// single full-name string, which is normalized into the structured form
// before validation runs.
type AuthorValue struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// UnmarshalJSON normalizes the two accepted shapes. A string value is
// split into (first, last) on its first space; everything after that
// space is the last name, so "Ludwig van Beethoven" yields
// ("Ludwig", "van Beethoven"). A string with no space produces an empty
// pair, which the namepair validation rejects the same way as a missing
// author. No case or whitespace normalization is applied: dedup by name
// is exact by contract.
func (a *AuthorValue) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		a.First, a.Last = splitFullName(name)
		return nil
	}

	type plain AuthorValue

	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*a = AuthorValue(obj)

	return nil
}

// splitFullName splits on the first space only. Returns empty strings
// when no pair is derivable.
func splitFullName(name string) (first, last string) {
	idx := strings.Index(name, " ")
	if idx <= 0 || idx == len(name)-1 {
		return "", ""
	}

	return name[:idx], name[idx+1:]
}
