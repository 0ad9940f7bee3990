// Package query defines the motif (query graph) model: a graphmodel.Graph
// plus, per node, the optional constraints attached to the search —
// exact-label matching, a label regex, degree restrictions, and
// (inherited directly from the embedded Graph) the node's own incident
// edge-type sets used as a required-subset test. Each query edge's Type may
// be empty, meaning "match any data-graph edge type".
package query
