// Package pagination holds the single page value object shared by every
// listing in the system. Construction validates both bounds up front so no
// repository ever sees a negative offset or a zero-sized page.
package pagination

import (
	"github.com/welderdefender/share-it/internal/domain"
)

// Sort describes the ordering applied to a paged query. Field is a domain
// field name ("start", "id", "created"); repositories map it to a column.
type Sort struct {
	Field      string
	Descending bool
}

// Page is an immutable (offset, limit, sort) triple.
type Page struct {
	offset int
	limit  int
	sort   Sort
}

// New builds a sorted page, failing fast with a pagination error naming the
// bound that is out of range.
func New(from, size int, sort Sort) (Page, error) {
	if err := validate(from, size); err != nil {
		return Page{}, err
	}
	return Page{offset: from, limit: size, sort: sort}, nil
}

// Unsorted builds a page with no ordering requirement.
func Unsorted(from, size int) (Page, error) {
	return New(from, size, Sort{})
}

func validate(from, size int) error {
	if from < 0 {
		return domain.NewPaginationError("from", "must be greater than or equal to 0")
	}
	if size < 1 {
		return domain.NewPaginationError("size", "must be greater than or equal to 1")
	}
	return nil
}

// Offset returns the number of leading results to skip.
func (p Page) Offset() int { return p.offset }

// Limit returns the maximum number of results in the page.
func (p Page) Limit() int { return p.limit }

// Sort returns the requested ordering; the zero Sort means unsorted.
func (p Page) Sort() Sort { return p.sort }

// Next returns the page immediately following this one.
func (p Page) Next() Page {
	return Page{offset: p.offset + p.limit, limit: p.limit, sort: p.sort}
}
