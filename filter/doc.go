// Package filter implements two graph filters: a criteria-driven filter
// that prunes a data graph down to the edges that
// could possibly participate in some match of a query graph, and a
// time-window filter that prunes to a timestamp range. Both copy-project
// into a freshly allocated graphmodel.Graph and never mutate their input —
// every match of the query graph in the original graph is preserved in the
// filtered one (soundness); tightness is best-effort, not optimal.
package filter
