package gdfio

import "errors"

var (
	// ErrDataBeforeSection indicates a data row appeared before any
	// "nodedef>"/"edgedef>" header line.
	ErrDataBeforeSection = errors.New("gdfio: data row before nodedef>/edgedef> header")

	// ErrMalformedNode indicates a nodedef row had fewer than the required
	// name,label columns.
	ErrMalformedNode = errors.New("gdfio: nodedef row needs at least name,label")

	// ErrMalformedEdge indicates an edgedef row had fewer than the required
	// node1,node2 columns.
	ErrMalformedEdge = errors.New("gdfio: edgedef row needs at least node1,node2")

	// ErrUnknownNode indicates an edgedef row referenced a node name not
	// previously declared in the nodedef section.
	ErrUnknownNode = errors.New("gdfio: edge references an undeclared node")

	// ErrCountsMismatch indicates WriteWithCounts was called with a counts
	// slice whose length does not match the graph's edge count.
	ErrCountsMismatch = errors.New("gdfio: counts length does not match edge count")
)
