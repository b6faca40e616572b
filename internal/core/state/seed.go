package state

import (
	"agvsim/internal/core/domain/model/graph"
	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/model/robot"
)

// Seed builds the built-in demo scenario: a six-node warehouse segment with
// three idle robots and one pending transport order. It is the state a fresh
// deployment resets to when the store holds nothing yet.
func Seed() (*Snapshot, error) {
	nodes := []string{"A", "B", "C", "D", "E", "F"}

	edgeSpecs := []struct {
		from, to string
		weight   float64
	}{
		{"A", "B", 1},
		{"B", "C", 2},
		{"C", "D", 2},
		{"B", "E", 3},
		{"E", "F", 1},
		{"D", "F", 2},
	}
	edges := make([]graph.Edge, 0, len(edgeSpecs))
	for _, spec := range edgeSpecs {
		e, err := graph.NewEdge(spec.from, spec.to, spec.weight)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	g, err := graph.NewGraphIndex(nodes, edges)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Graph: g}

	for _, spec := range []struct{ name, node string }{
		{"R1", "A"},
		{"R2", "C"},
		{"R3", "E"},
	} {
		r, err := robot.NewRobot(spec.name, spec.node)
		if err != nil {
			return nil, err
		}
		snap.Robots = append(snap.Robots, r)
	}

	o, err := order.NewOrder("O-1001", "B", "D")
	if err != nil {
		return nil, err
	}
	snap.Orders = append(snap.Orders, o)

	return snap, nil
}
