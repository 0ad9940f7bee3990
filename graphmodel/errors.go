package graphmodel

import "errors"

// Sentinel errors for graphmodel construction and queries.
var (
	// ErrEmptyLabel indicates AddNode was called with an empty label.
	ErrEmptyLabel = errors.New("graphmodel: node label is empty")

	// ErrNodeNotFound indicates an operation referenced a node index that
	// does not exist in the graph.
	ErrNodeNotFound = errors.New("graphmodel: node index not found")

	// ErrDuplicateLabel indicates AddNode was called with a label already
	// bound to a different type than the node it would alias.
	ErrDuplicateLabel = errors.New("graphmodel: label already bound to a different node type")
)
