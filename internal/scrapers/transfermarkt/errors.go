package transfermarkt

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound means a search yielded nothing (or a country could not be resolved).
	ErrNotFound = errors.New("not found")
	// ErrUnresolved means a required precondition on the data does not hold, ex. no
	// transfer happened at or before the lookup date.
	ErrUnresolved = errors.New("unresolved")
	// ErrMalformedRow marks rows that are present but miss expected cells, these are
	// skipped and reported, never returned to callers of the aggregators.
	ErrMalformedRow = errors.New("malformed row")
)
