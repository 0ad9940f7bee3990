package gdfio

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/tgmatch/graphmodel"
)

// Write serializes g to w in GDF format.
func Write(w io.Writer, g *graphmodel.Graph) error {
	return writeGraph(w, g, nil)
}

// WriteFile serializes g to the file at path, creating or truncating it.
func WriteFile(path string, g *graphmodel.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, g)
}

// WriteWithCounts serializes g to w in GDF format with an extra "count
// INTEGER" edgedef column, one value per edge in g.Edges() order — the wire
// form for a result.UnionSubgraph/AggregateSubgraph output, where each
// edge's match count is carried alongside it. len(counts) must equal
// g.EdgeCount().
func WriteWithCounts(w io.Writer, g *graphmodel.Graph, counts []int) error {
	if len(counts) != g.EdgeCount() {
		return ErrCountsMismatch
	}
	return writeGraph(w, g, counts)
}

func writeGraph(w io.Writer, g *graphmodel.Graph, counts []int) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("nodedef>name VARCHAR,label VARCHAR,type VARCHAR\n"); err != nil {
		return err
	}
	cw := csv.NewWriter(bw)
	for _, n := range g.Nodes() {
		if err := cw.Write([]string{n.Label, n.Label, n.Type}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	edgeHeader := "edgedef>node1 VARCHAR,node2 VARCHAR,type VARCHAR,timestamp INTEGER"
	if counts != nil {
		edgeHeader += ",count INTEGER"
	}
	if _, err := bw.WriteString(edgeHeader + "\n"); err != nil {
		return err
	}
	for i, e := range g.Edges() {
		srcNode, _ := g.Node(e.Src)
		dstNode, _ := g.Node(e.Dst)
		row := []string{srcNode.Label, dstNode.Label, e.Type, strconv.FormatInt(e.Timestamp, 10)}
		if counts != nil {
			row = append(row, strconv.Itoa(counts[i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	return bw.Flush()
}
