package edgelist

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/matzehuels/cyclecheck/pkg/errors"
)

// dotMu serializes Graphviz use. go-graphviz runs every instance on one
// shared wasm module whose memory is not safe for concurrent access.
var dotMu sync.Mutex

// readDOT parses a Graphviz document and collects one edge per DOT edge
// statement. Isolated nodes carry no edges and are dropped.
func readDOT(r io.Reader) (*List, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dot: %w", err)
	}

	dotMu.Lock()
	defer dotMu.Unlock()

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse dot")
	}
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "parse dot: no graph in input")
	}
	defer g.Close()

	edges, err := collectDOTEdges(g)
	if err != nil {
		return nil, err
	}
	l := &List{Edges: edges}
	// Anonymous graphs get generated names starting with '%'.
	if name, err := g.Name(); err == nil && !strings.HasPrefix(name, "%") {
		l.Name = name
	}
	return l, nil
}

func collectDOTEdges(g *cgraph.Graph) ([]Edge, error) {
	var edges []Edge
	for n, err := g.FirstNode(); ; n, err = g.NextNode(n) {
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "walk dot nodes")
		}
		if n == nil {
			return edges, nil
		}
		src, err := dotVertexID(n)
		if err != nil {
			return nil, err
		}
		for e, err := g.FirstOut(n); ; e, err = g.NextOut(e) {
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "walk dot edges")
			}
			if e == nil {
				break
			}
			head, err := e.Head()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "edge head")
			}
			dst, err := dotVertexID(head)
			if err != nil {
				return nil, err
			}
			edges = append(edges, Edge{Source: src, Destination: dst})
		}
	}
}

func dotVertexID(n *cgraph.Node) (int64, error) {
	name, err := n.Name()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "node name")
	}
	id, err := errors.ParseVertexID(name)
	if err != nil {
		return 0, fmt.Errorf("dot node %q: %w", name, err)
	}
	return id, nil
}
