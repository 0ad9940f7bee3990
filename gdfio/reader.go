package gdfio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/tgmatch/graphmodel"
	"github.com/katalvlaran/tgmatch/query"
)

type section int

const (
	sectionNone section = iota
	sectionNode
	sectionEdge
)

// Read parses a GDF data graph from r. The resulting graph is sorted by
// timestamp, the invariant search's ordered mode relies on.
func Read(r io.Reader) (*graphmodel.Graph, error) {
	g := graphmodel.New()
	if err := scan(r, func(sec section, fields []string) error {
		switch sec {
		case sectionNode:
			return readNodeRow(g, fields)
		case sectionEdge:
			return readEdgeRow(g, fields)
		default:
			return ErrDataBeforeSection
		}
	}); err != nil {
		return nil, err
	}
	g.SortByTimestamp()
	return g, nil
}

// ReadFile opens path and parses it as a GDF data graph.
func ReadFile(path string) (*graphmodel.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// ReadQuery parses a GDF motif (query graph) from r. Optional nodedef
// columns namematch and regex (fourth and fifth columns, in that order) set
// the corresponding query.Graph node constraints; either may be omitted or
// left empty.
func ReadQuery(r io.Reader) (*query.Graph, error) {
	h := query.New()
	err := scan(r, func(sec section, fields []string) error {
		switch sec {
		case sectionNode:
			return readQueryNodeRow(h, fields)
		case sectionEdge:
			return readQueryEdgeRow(h, fields)
		default:
			return ErrDataBeforeSection
		}
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// ReadQueryFile opens path and parses it as a GDF motif file.
func ReadQueryFile(path string) (*query.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadQuery(f)
}

// scan drives the line-by-line GDF parse, switching section on header lines
// and delegating each data row to handleRow.
func scan(r io.Reader, handleRow func(sec section, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	sec := sectionNone
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "nodedef>"):
			sec = sectionNode
			continue
		case strings.HasPrefix(line, "edgedef>"):
			sec = sectionEdge
			continue
		}
		fields, err := parseCSVLine(line)
		if err != nil {
			return fmt.Errorf("gdfio: %w", err)
		}
		if err := handleRow(sec, fields); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseCSVLine(line string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.Read()
}

func readNodeRow(g *graphmodel.Graph, fields []string) error {
	if len(fields) < 2 {
		return ErrMalformedNode
	}
	name := fields[0]
	typ := ""
	if len(fields) >= 3 {
		typ = fields[2]
	}
	_, err := g.AddNode(name, typ)
	return err
}

func readEdgeRow(g *graphmodel.Graph, fields []string) error {
	if len(fields) < 2 {
		return ErrMalformedEdge
	}
	srcIdx, ok := g.NodeByLabel(fields[0])
	if !ok {
		return ErrUnknownNode
	}
	dstIdx, ok := g.NodeByLabel(fields[1])
	if !ok {
		return ErrUnknownNode
	}
	typ := ""
	if len(fields) >= 3 {
		typ = fields[2]
	}
	var ts int64
	if len(fields) >= 4 && fields[3] != "" {
		parsed, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return fmt.Errorf("gdfio: bad timestamp %q: %w", fields[3], err)
		}
		ts = parsed
	}
	_, err := g.AddEdge(srcIdx, dstIdx, typ, ts)
	return err
}

func readQueryNodeRow(h *query.Graph, fields []string) error {
	if len(fields) < 2 {
		return ErrMalformedNode
	}
	name := fields[0]
	typ := ""
	if len(fields) >= 3 {
		typ = fields[2]
	}
	idx, err := h.AddNode(name, typ)
	if err != nil {
		return err
	}
	if len(fields) >= 4 && fields[3] != "" {
		needs, err := strconv.ParseBool(fields[3])
		if err != nil {
			return fmt.Errorf("gdfio: bad namematch %q: %w", fields[3], err)
		}
		if err := h.SetNeedsNameMatch(idx, needs); err != nil {
			return err
		}
	}
	if len(fields) >= 5 && fields[4] != "" {
		re, err := regexp.Compile(fields[4])
		if err != nil {
			return fmt.Errorf("gdfio: bad regex %q: %w", fields[4], err)
		}
		if err := h.SetRegex(idx, re); err != nil {
			return err
		}
	}
	return nil
}

func readQueryEdgeRow(h *query.Graph, fields []string) error {
	if len(fields) < 2 {
		return ErrMalformedEdge
	}
	srcIdx, ok := h.NodeByLabel(fields[0])
	if !ok {
		return ErrUnknownNode
	}
	dstIdx, ok := h.NodeByLabel(fields[1])
	if !ok {
		return ErrUnknownNode
	}
	typ := ""
	if len(fields) >= 3 {
		typ = fields[2]
	}
	var ts int64
	if len(fields) >= 4 && fields[3] != "" {
		parsed, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return fmt.Errorf("gdfio: bad timestamp %q: %w", fields[3], err)
		}
		ts = parsed
	}
	_, err := h.AddEdge(srcIdx, dstIdx, typ, ts)
	return err
}
