package search

import "context"

// Option configures optional behavior shared by FindAllSubgraphs and
// FindOrderedSubgraphs. The engine itself threads no cancellation token of
// its own; WithContext is the hook a caller wanting early exit on a long
// search attaches, and it must not change the match order produced when no
// cancellation is ever signaled.
type Option func(*options)

type options struct {
	ctx context.Context
}

// DefaultOptions returns the zero-configuration behavior: a background
// context that never cancels.
func DefaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext attaches ctx to the search; once ctx is Done the engine stops
// exploring and returns the matches accumulated so far along with ctx.Err().
// A nil context is ignored (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
