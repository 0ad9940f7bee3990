package synthetic

import (
	"math/rand"
	"strconv"
)

// Option customizes config resolution before a Constructor runs.
type Option func(*config)

// config holds the resolved knobs every Constructor reads: the vertex
// label scheme, the edge type tag, and the timestamp clock that assigns
// each emitted edge its Timestamp.
type config struct {
	idFn      func(int) string
	edgeType  string
	startTime int64
	interval  int64
	jitter    int64
	rng       *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		idFn:     DefaultIDFn,
		edgeType: "EDGE",
		interval: 1,
	}
	for _, apply := range opts {
		apply(cfg)
	}
	return cfg
}

// DefaultIDFn renders index i as its decimal string, "0", "1", "2", ....
func DefaultIDFn(i int) string {
	return strconv.Itoa(i)
}

// WithIDScheme overrides the index->label function used for vertex names.
// A nil fn is a no-op, keeping the default decimal scheme.
func WithIDScheme(fn func(int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithEdgeType sets the Type tag stamped on every generated edge.
func WithEdgeType(typ string) Option {
	return func(c *config) {
		if typ != "" {
			c.edgeType = typ
		}
	}
}

// WithClock sets the timestamp of the first emitted edge (startTime) and
// the fixed step between each subsequently emitted edge (interval),
// producing a strictly increasing, already-sorted timestamp sequence —
// the invariant search's ordered mode relies on, so fixtures built with
// this package never need a separate SortByTimestamp call unless WithJitter
// is also used.
func WithClock(startTime, interval int64) Option {
	return func(c *config) {
		c.startTime = startTime
		if interval > 0 {
			c.interval = interval
		}
	}
}

// WithJitter adds uniform random noise in [-jitter, +jitter] to each
// edge's clock-assigned timestamp, using the given seed. This breaks the
// strictly-increasing guarantee WithClock otherwise provides: callers who
// need a sorted catalog for ordered-mode search must call
// (*graphmodel.Graph).SortByTimestamp after BuildGraph.
func WithJitter(jitter int64, seed int64) Option {
	return func(c *config) {
		if jitter > 0 {
			c.jitter = jitter
			c.rng = rand.New(rand.NewSource(seed))
		}
	}
}

func (c *config) nextTimestamp(n int) int64 {
	ts := c.startTime + int64(n)*c.interval
	if c.rng != nil && c.jitter > 0 {
		ts += c.rng.Int63n(2*c.jitter+1) - c.jitter
	}
	return ts
}
