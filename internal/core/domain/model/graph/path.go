package graph

import (
	"container/heap"
	"errors"

	"agvsim/internal/pkg/errs"
)

// ErrUnreachable reports that no path exists between two nodes. It is a
// legitimate query outcome, not a fault: the scheduler treats an unreachable
// robot as a candidate to skip, never as an error to surface.
var ErrUnreachable = errors.New("no path exists")

// Path is the result of a shortest-path query: the total traversal cost and
// the ordered node sequence from source to target inclusive.
type Path struct {
	Distance float64
	Nodes    []string
}

// ShortestPath runs Dijkstra's algorithm from source to target.
//
// The priority queue is keyed by (distance, node id): when several frontier
// nodes tie on distance the lexicographically smallest id is expanded first,
// so whenever multiple minimum-cost paths exist the same one is returned on
// every run. Combined with the sorted adjacency lists this makes routing —
// and everything built on it — fully deterministic.
//
// Outcomes:
//   - unknown source or target: object-not-found error
//   - source == target: distance 0 and a single-node path
//   - target not reachable: ErrUnreachable
//
// Complexity is O((V+E) log V).
func (g *GraphIndex) ShortestPath(source string, target string) (Path, error) {
	for _, id := range []string{source, target} {
		if !g.HasNode(id) {
			return Path{}, errs.NewObjectNotFoundError("node", id)
		}
	}

	if source == target {
		return Path{Distance: 0, Nodes: []string{source}}, nil
	}

	dist := map[string]float64{source: 0}
	prev := make(map[string]string)
	done := make(map[string]bool)

	pq := &frontier{{node: source, distance: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(frontierItem)
		if done[current.node] {
			continue
		}
		done[current.node] = true

		if current.node == target {
			return Path{
				Distance: current.distance,
				Nodes:    reconstruct(prev, source, target),
			}, nil
		}

		for _, neighbor := range g.adjacency[current.node] {
			if done[neighbor.ID] {
				continue
			}
			candidate := current.distance + neighbor.Weight
			// Strict improvement only: with deterministic expansion order
			// this keeps predecessor links, and with them the returned
			// path, stable across runs.
			if known, ok := dist[neighbor.ID]; !ok || candidate < known {
				dist[neighbor.ID] = candidate
				prev[neighbor.ID] = current.node
				heap.Push(pq, frontierItem{node: neighbor.ID, distance: candidate})
			}
		}
	}

	return Path{}, ErrUnreachable
}

// Reachable reports whether target can be reached from source. Unknown node
// ids yield an object-not-found error.
func (g *GraphIndex) Reachable(source string, target string) (bool, error) {
	_, err := g.ShortestPath(source, target)
	if errors.Is(err, ErrUnreachable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func reconstruct(prev map[string]string, source string, target string) []string {
	var reversed []string
	for node := target; node != source; node = prev[node] {
		reversed = append(reversed, node)
	}
	reversed = append(reversed, source)

	nodes := make([]string, len(reversed))
	for i, node := range reversed {
		nodes[len(reversed)-1-i] = node
	}
	return nodes
}

// frontierItem is one priority-queue entry. A node may be queued several
// times with decreasing distances; stale entries are skipped on pop.
type frontierItem struct {
	node     string
	distance float64
}

// frontier is a binary heap ordered by (distance, node id).
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].distance != f[j].distance {
		return f[i].distance < f[j].distance
	}
	return f[i].node < f[j].node
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
