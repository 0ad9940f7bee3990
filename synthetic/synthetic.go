package synthetic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tgmatch/graphmodel"
)

// ErrTooFewNodes is returned by a Constructor when n is below the
// topology's minimum (2 for Path/Star, 3 for Cycle, 2 cells for Grid).
var ErrTooFewNodes = errors.New("synthetic: too few nodes")

// Constructor applies one deterministic topology to g under cfg. Node
// labels come from cfg.idFn; edge timestamps come from cfg's clock,
// advancing by one tick per edge emitted, in the order each Constructor
// documents.
type Constructor func(g *graphmodel.Graph, cfg *config) error

// BuildGraph creates an empty graphmodel.Graph, resolves opts once, and
// applies each constructor in order. The first error from any constructor
// is wrapped and returned with a nil graph; no partial graph is returned, matching how
// this repository elsewhere prefers a clear error over silent partial
// state.
func BuildGraph(opts []Option, cons ...Constructor) (*graphmodel.Graph, error) {
	g := graphmodel.New()
	cfg := newConfig(opts...)
	for i, cons := range cons {
		if cons == nil {
			return nil, fmt.Errorf("synthetic: nil constructor at index %d", i)
		}
		if err := cons(g, cfg); err != nil {
			return nil, fmt.Errorf("synthetic: %w", err)
		}
	}
	return g, nil
}

// Path returns a Constructor building a simple directed chain of n nodes:
// 0->1->2->...->(n-1), one edge per consecutive pair, n >= 2.
func Path(n int) Constructor {
	return func(g *graphmodel.Graph, cfg *config) error {
		if n < 2 {
			return fmt.Errorf("Path(%d): %w", n, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(ids[i-1], ids[i], cfg.edgeType, cfg.nextTimestamp(i-1)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle returns a Constructor building an n-node directed ring:
// 0->1->...->(n-1)->0, n >= 3.
func Cycle(n int) Constructor {
	return func(g *graphmodel.Graph, cfg *config) error {
		if n < 3 {
			return fmt.Errorf("Cycle(%d): %w", n, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if _, err := g.AddEdge(ids[i], ids[(i+1)%n], cfg.edgeType, cfg.nextTimestamp(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star returns a Constructor building a star with center node 0 and n-1
// leaves 1..n-1, one edge center->leaf per leaf, n >= 2.
func Star(n int) Constructor {
	return func(g *graphmodel.Graph, cfg *config) error {
		if n < 2 {
			return fmt.Errorf("Star(%d): %w", n, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(ids[0], ids[i], cfg.edgeType, cfg.nextTimestamp(i-1)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Grid returns a Constructor building a rows x cols 4-neighborhood grid,
// node IDs "r,c" in row-major order, with a directed edge from each cell to
// its right and down neighbor (no wraparound). rows, cols >= 1 and rows*cols
// >= 2.
func Grid(rows, cols int) Constructor {
	return func(g *graphmodel.Graph, cfg *config) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("Grid(%d,%d): %w", rows, cols, ErrTooFewNodes)
		}
		label := func(r, c int) string {
			return fmt.Sprintf("%d,%d", r, c)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := g.AddNode(label(r, c), ""); err != nil {
					return err
				}
			}
		}
		n := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				src, _ := g.NodeByLabel(label(r, c))
				if c+1 < cols {
					dst, _ := g.NodeByLabel(label(r, c+1))
					if _, err := g.AddEdge(src, dst, cfg.edgeType, cfg.nextTimestamp(n)); err != nil {
						return err
					}
					n++
				}
				if r+1 < rows {
					dst, _ := g.NodeByLabel(label(r+1, c))
					if _, err := g.AddEdge(src, dst, cfg.edgeType, cfg.nextTimestamp(n)); err != nil {
						return err
					}
					n++
				}
			}
		}
		return nil
	}
}

// addNodes inserts n nodes using cfg.idFn and returns their assigned
// indices in insertion order.
func addNodes(g *graphmodel.Graph, cfg *config, n int) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		idx, err := g.AddNode(cfg.idFn(i), "")
		if err != nil {
			return nil, err
		}
		ids[i] = idx
	}
	return ids, nil
}
