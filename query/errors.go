package query

import "errors"

var (
	// ErrNodeNotFound indicates a constraint was attached to a node index
	// that does not exist in the query graph.
	ErrNodeNotFound = errors.New("query: node index not found")

	// ErrBadThreshold indicates a degree restriction's threshold is negative.
	ErrBadThreshold = errors.New("query: degree restriction threshold must be >= 0")

	// ErrUnknownEdgeType is returned by Validate when a degree restriction
	// or query edge names an edge type that never occurs anywhere in the
	// reference data graph it will be matched against — almost always a
	// typo in the motif definition.
	ErrUnknownEdgeType = errors.New("query: edge type never occurs in the data graph")
)
