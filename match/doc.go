// Package match implements the match predicate: two pure, side-effect-free
// queries deciding whether a data-graph node/edge can play the role of a
// query node/edge. Both are necessary, not sufficient, conditions — they
// reason from local information only and do not prove a partial match
// will extend to a complete one; that is search's job.
//
// The predicate is exposed as the Predicate interface so filter and search
// depend on a capability rather than a concrete type. CERT is one concrete
// implementation, named for the insider-threat activity logs this matcher
// was built to search.
package match
