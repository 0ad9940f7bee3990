package search

import "errors"

var (
	// ErrNilGraph is returned when the data graph argument is nil.
	ErrNilGraph = errors.New("search: data graph is nil")
	// ErrNilQuery is returned when the query graph argument is nil.
	ErrNilQuery = errors.New("search: query graph is nil")
	// ErrNilPredicate is returned when the predicate argument is nil.
	ErrNilPredicate = errors.New("search: predicate is nil")
	// ErrBadLimit is returned when the result cap K is less than 1.
	ErrBadLimit = errors.New("search: limit must be >= 1")
	// ErrBadDelta is returned when the ordered-mode window delta is negative.
	ErrBadDelta = errors.New("search: delta must be >= 0")
)
