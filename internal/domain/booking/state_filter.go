package booking

import (
	"strings"

	"github.com/welderdefender/share-it/internal/domain"
)

// StateFilter is the closed set of listing filters. ALL, CURRENT, PAST and
// FUTURE classify bookings against the query's wall-clock time; the remaining
// filters match the stored status exactly.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterApproved StateFilter = "APPROVED"
	FilterRejected StateFilter = "REJECTED"
)

var stateFilters = map[StateFilter]struct{}{
	FilterAll:      {},
	FilterCurrent:  {},
	FilterPast:     {},
	FilterFuture:   {},
	FilterWaiting:  {},
	FilterApproved: {},
	FilterRejected: {},
}

// ParseStateFilter converts a query-string value to a StateFilter,
// case-insensitively. Unrecognized values fail before any dispatch happens,
// always as a client error.
func ParseStateFilter(s string) (StateFilter, error) {
	f := StateFilter(strings.ToUpper(s))
	if _, ok := stateFilters[f]; !ok {
		return "", domain.NewUnsupportedFilterError(s)
	}
	return f, nil
}

// Status returns the status a status-valued filter matches, and false for the
// time-relative filters.
func (f StateFilter) Status() (Status, bool) {
	switch f {
	case FilterWaiting, FilterApproved, FilterRejected:
		return Status(f), true
	default:
		return "", false
	}
}

// String returns the string representation of the filter.
func (f StateFilter) String() string {
	return string(f)
}
