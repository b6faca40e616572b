package graph

import (
	"errors"
	"sort"

	"agvsim/internal/pkg/errs"

	"agvsim/internal/pkg/guard"
)

// ErrGraphIndexIsNotConstructed is returned when using a GraphIndex that was
// not created via the NewGraphIndex constructor.
var ErrGraphIndexIsNotConstructed = errors.New("GraphIndex must be created via NewGraphIndex constructor")

// Neighbor is one entry of an adjacency list: the node on the other end of an
// edge and the weight to reach it.
type Neighbor struct {
	ID     string
	Weight float64
}

// GraphIndex is the immutable weighted graph the fleet moves on. It is built
// once from a node list and an edge list, answers adjacency queries, and is
// never mutated afterwards — replacing the graph means building a new index.
// Because it is read-only after construction it may be queried concurrently
// without synchronization.
type GraphIndex struct {
	nodes map[string]struct{}
	// adjacency holds, per node, its neighbors sorted by id ascending.
	// The ordering is fixed at construction so traversals are deterministic.
	adjacency map[string][]Neighbor
	// weights indexes edge weight by both endpoint orders for O(1) lookup.
	weights map[string]map[string]float64
	// edges preserves the declared edges in declaration order.
	edges []Edge

	guard guard.ConstructorGuard
}

// NewGraphIndex builds a GraphIndex from declared nodes and edges.
//
// Validation rules:
//   - node ids must be non-empty and unique
//   - every edge endpoint must be a declared node (object-not-found otherwise)
//   - edge weights must already satisfy the Edge invariants
//   - redeclaring the same node pair with the same weight keeps the first
//     declaration; redeclaring it with a different weight is rejected,
//     since an undirected relation has exactly one weight
//
// On any validation failure no GraphIndex is produced, so a loaded graph is
// either fully consistent or absent.
func NewGraphIndex(nodes []string, edges []Edge) (*GraphIndex, error) {
	g := &GraphIndex{
		nodes:     make(map[string]struct{}, len(nodes)),
		adjacency: make(map[string][]Neighbor, len(nodes)),
		weights:   make(map[string]map[string]float64, len(nodes)),
		edges:     make([]Edge, 0, len(edges)),
		guard:     guard.NewConstructorGuard(),
	}

	for _, id := range nodes {
		if id == "" {
			return nil, errs.NewValueIsRequiredError("node")
		}
		if _, ok := g.nodes[id]; ok {
			return nil, errs.NewDuplicateNameError("node", id)
		}
		g.nodes[id] = struct{}{}
		g.weights[id] = make(map[string]float64)
	}

	for _, edge := range edges {
		if err := g.addEdge(edge); err != nil {
			return nil, err
		}
	}

	for id := range g.adjacency {
		neighbors := g.adjacency[id]
		sort.Slice(neighbors, func(i, j int) bool {
			return neighbors[i].ID < neighbors[j].ID
		})
	}

	return g, nil
}

// Validate checks that the GraphIndex was created via NewGraphIndex.
func (g *GraphIndex) Validate() error {
	if g == nil {
		return ErrGraphIndexIsNotConstructed
	}
	return g.guard.Validate(ErrGraphIndexIsNotConstructed)
}

// HasNode reports whether the node id exists in the graph.
func (g *GraphIndex) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all node ids sorted ascending.
func (g *GraphIndex) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// NodeCount returns the number of declared nodes.
func (g *GraphIndex) NodeCount() int {
	return len(g.nodes)
}

// Edges returns the declared edges in declaration order. The returned slice
// is a copy.
func (g *GraphIndex) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns the adjacency list of the node, sorted by neighbor id
// ascending. Unknown node ids yield an object-not-found error. The returned
// slice is a copy.
func (g *GraphIndex) Neighbors(id string) ([]Neighbor, error) {
	if !g.HasNode(id) {
		return nil, errs.NewObjectNotFoundError("node", id)
	}

	adj := g.adjacency[id]
	out := make([]Neighbor, len(adj))
	copy(out, adj)
	return out, nil
}

// EdgeWeight returns the weight of the edge between a and b, in either
// direction. The second result is false when no such edge exists.
func (g *GraphIndex) EdgeWeight(a string, b string) (float64, bool) {
	row, ok := g.weights[a]
	if !ok {
		return 0, false
	}
	w, ok := row[b]
	return w, ok
}

func (g *GraphIndex) addEdge(edge Edge) error {
	if err := edge.Validate(); err != nil {
		return err
	}

	for _, id := range []string{edge.From(), edge.To()} {
		if !g.HasNode(id) {
			return errs.NewObjectNotFoundError("node", id)
		}
	}

	if existing, ok := g.weights[edge.From()][edge.To()]; ok {
		if existing == edge.Weight() {
			// Same relation declared twice; keep the first.
			return nil
		}
		return errs.NewValueIsInvalidErrorWithCause(
			"edge", errors.New("conflicting weight for edge "+edge.From()+"-"+edge.To()))
	}

	g.weights[edge.From()][edge.To()] = edge.Weight()
	g.weights[edge.To()][edge.From()] = edge.Weight()
	g.adjacency[edge.From()] = append(g.adjacency[edge.From()], Neighbor{ID: edge.To(), Weight: edge.Weight()})
	g.adjacency[edge.To()] = append(g.adjacency[edge.To()], Neighbor{ID: edge.From(), Weight: edge.Weight()})
	g.edges = append(g.edges, edge)
	return nil
}
