// Package edgelist reads and writes graphs as plain-text edge lists.
//
// Format, one record per line:
//
//	u v    an edge from node u to node v
//	u      node u, possibly isolated
//	# ...  comment; everything after '#' is ignored
//
// Blank lines are skipped. IDs are non-negative integers. Loops and repeated
// edges are kept as written.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dfacoet/hopgraph/core"
)

// ErrSyntax is wrapped by every malformed-line error.
var ErrSyntax = errors.New("edgelist: syntax error")

// Read parses an edge list into a graph that allows loops and parallel
// edges. The node set is exactly the IDs mentioned in r; sparse IDs cost
// nothing for the gaps between them.
func Read(r io.Reader) (*core.Graph, error) {
	seen := make(map[core.NodeID]struct{})
	var arcs [][2]core.NodeID

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			return nil, fmt.Errorf("%w: line %d: want \"u v\" or \"u\", got %d fields", ErrSyntax, line, len(fields))
		}

		var ends [2]core.NodeID
		for i, f := range fields {
			id, err := strconv.ParseInt(f, 10, 64)
			if err != nil || id < 0 {
				return nil, fmt.Errorf("%w: line %d: bad node id %q", ErrSyntax, line, f)
			}
			ends[i] = core.NodeID(id)
			seen[ends[i]] = struct{}{}
		}
		if len(fields) == 2 {
			arcs = append(arcs, ends)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	ids := make([]core.NodeID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges(), core.WithCapacity(len(ids)))
	// ascending order keeps every InsertNode at or above the next free ID
	for _, id := range ids {
		if err := g.InsertNode(id); err != nil {
			return nil, err
		}
	}
	for _, a := range arcs {
		if _, err := g.AddEdge(a[0], a[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Write emits one line per arc of view, in NodeIDs order, and a bare "u"
// line for every node without outgoing arcs. Read(Write(view)) reproduces
// the node set and the arc multiset.
func Write(w io.Writer, view core.GraphView) error {
	if view == nil {
		return errors.New("edgelist: nil view")
	}
	bw := bufio.NewWriter(w)
	for _, u := range view.NodeIDs() {
		out, err := view.Neighbors(u, core.Directed)
		if err != nil {
			return fmt.Errorf("edgelist: node %d: %w", u, err)
		}
		if len(out) == 0 {
			fmt.Fprintf(bw, "%d\n", u)
			continue
		}
		for _, v := range out {
			fmt.Fprintf(bw, "%d %d\n", u, v)
		}
	}

	return bw.Flush()
}
