package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrSearchShopsQueryIsNotConstructed = errors.New(
		"SearchShopsQuery must be created via NewSearchShopsQuery constructor",
	)
)

// SearchShopsQuery retrieves shops whose name contains the given term.
// An empty term matches every shop.
type SearchShopsQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchShopsQuery creates a query to search shops by name.
func NewSearchShopsQuery(term string) SearchShopsQuery {
	return SearchShopsQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchShopsQuery) Validate() error {
	return q.guard.Validate(ErrSearchShopsQueryIsNotConstructed)
}

// Term returns the name fragment to search for.
func (q SearchShopsQuery) Term() string {
	return q.term
}

// SearchShopsQueryResponse represents one shop in the search results.
type SearchShopsQueryResponse struct {
	ID      uint64
	Name    string
	Address string
}
