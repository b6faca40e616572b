package state

import (
	"fmt"

	"agvsim/internal/core/domain/model/graph"
	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/model/robot"
	"agvsim/internal/pkg/errs"
)

// Snapshot is the full serializable simulation state: the loaded graph plus
// every robot and order. It is the unit the StateStore boundary persists and
// the seed a reset replaces the live state with.
//
// Robots and Orders are kept sorted by name so two snapshots of the same
// state compare equal field for field.
type Snapshot struct {
	Graph  *graph.GraphIndex
	Robots []*robot.Robot
	Orders []*order.Order
}

// Clone returns a deep copy. The graph is shared — it is immutable — while
// robots and orders are cloned so the copy can never alias live aggregates.
func (s *Snapshot) Clone() *Snapshot {
	clone := &Snapshot{
		Graph:  s.Graph,
		Robots: make([]*robot.Robot, len(s.Robots)),
		Orders: make([]*order.Order, len(s.Orders)),
	}
	for i, r := range s.Robots {
		clone.Robots[i] = r.Clone()
	}
	for i, o := range s.Orders {
		clone.Orders[i] = o.Clone()
	}
	return clone
}

// Validate checks the snapshot's referential invariants before it may become
// live state:
//
//   - the graph must be constructed
//   - every node referenced by a robot (position, route) or order
//     (source, target) must exist in the graph
//   - the robot/order assignment links must be consistent and one-to-one:
//     an EXECUTING robot's order must exist, be IN_PROGRESS, and point back;
//     no robot is claimed by two orders
//
// Node and shape problems are validation errors; broken cross-links are
// invariant violations, since no validated sequence of operations can
// produce them.
func (s *Snapshot) Validate() error {
	if err := s.Graph.Validate(); err != nil {
		return err
	}

	robotsByName := make(map[string]*robot.Robot, len(s.Robots))
	for _, r := range s.Robots {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, dup := robotsByName[r.Name()]; dup {
			return errs.NewDuplicateNameError("robot", r.Name())
		}
		robotsByName[r.Name()] = r

		if !s.Graph.HasNode(r.Node()) {
			return errs.NewObjectNotFoundError("node", r.Node())
		}
		for _, node := range r.Route() {
			if !s.Graph.HasNode(node) {
				return errs.NewObjectNotFoundError("node", node)
			}
		}
	}

	ordersByName := make(map[string]*order.Order, len(s.Orders))
	claimedRobots := make(map[string]string)
	for _, o := range s.Orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if _, dup := ordersByName[o.Name()]; dup {
			return errs.NewDuplicateNameError("order", o.Name())
		}
		ordersByName[o.Name()] = o

		for _, node := range []string{o.Source(), o.Target()} {
			if !s.Graph.HasNode(node) {
				return errs.NewObjectNotFoundError("node", node)
			}
		}

		if o.AssignedRobot() == "" {
			continue
		}
		if prev, claimed := claimedRobots[o.AssignedRobot()]; claimed {
			return errs.NewInvariantViolationError(fmt.Sprintf(
				"robot %q is claimed by orders %q and %q", o.AssignedRobot(), prev, o.Name()))
		}
		claimedRobots[o.AssignedRobot()] = o.Name()

		r, ok := robotsByName[o.AssignedRobot()]
		if !ok {
			return errs.NewInvariantViolationError(fmt.Sprintf(
				"order %q is assigned to unknown robot %q", o.Name(), o.AssignedRobot()))
		}
		if r.AssignedOrder() != o.Name() {
			return errs.NewInvariantViolationError(fmt.Sprintf(
				"order %q claims robot %q but the robot executes %q",
				o.Name(), r.Name(), r.AssignedOrder()))
		}
	}

	// The reverse direction: every executing robot's order must exist and
	// point back.
	for _, r := range s.Robots {
		if r.AssignedOrder() == "" {
			continue
		}
		o, ok := ordersByName[r.AssignedOrder()]
		if !ok {
			return errs.NewInvariantViolationError(fmt.Sprintf(
				"robot %q executes unknown order %q", r.Name(), r.AssignedOrder()))
		}
		if o.AssignedRobot() != r.Name() {
			return errs.NewInvariantViolationError(fmt.Sprintf(
				"robot %q executes order %q assigned to %q",
				r.Name(), o.Name(), o.AssignedRobot()))
		}
	}

	return nil
}

// Equal reports field-for-field equality with another snapshot. It backs the
// StateStore round-trip contract: load(save(s)) must equal s.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if other == nil {
		return false
	}
	if !graphsEqual(s.Graph, other.Graph) {
		return false
	}
	if len(s.Robots) != len(other.Robots) || len(s.Orders) != len(other.Orders) {
		return false
	}
	for i, r := range s.Robots {
		if !robotsEqual(r, other.Robots[i]) {
			return false
		}
	}
	for i, o := range s.Orders {
		if !ordersEqual(o, other.Orders[i]) {
			return false
		}
	}
	return true
}

func graphsEqual(a, b *graph.GraphIndex) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	aNodes, bNodes := a.Nodes(), b.Nodes()
	if len(aNodes) != len(bNodes) {
		return false
	}
	for i := range aNodes {
		if aNodes[i] != bNodes[i] {
			return false
		}
	}

	aEdges, bEdges := a.Edges(), b.Edges()
	if len(aEdges) != len(bEdges) {
		return false
	}
	// Edge declaration order may differ between a built graph and its
	// persisted copy; compare as an unordered relation set.
	for _, e := range aEdges {
		w, ok := b.EdgeWeight(e.From(), e.To())
		if !ok || w != e.Weight() {
			return false
		}
	}
	return true
}

func robotsEqual(a, b *robot.Robot) bool {
	if a.Name() != b.Name() || a.Status() != b.Status() || a.Node() != b.Node() {
		return false
	}
	if a.RouteCursor() != b.RouteCursor() || a.AssignedOrder() != b.AssignedOrder() {
		return false
	}
	aRoute, bRoute := a.Route(), b.Route()
	if len(aRoute) != len(bRoute) {
		return false
	}
	for i := range aRoute {
		if aRoute[i] != bRoute[i] {
			return false
		}
	}
	return true
}

func ordersEqual(a, b *order.Order) bool {
	return a.Name() == b.Name() &&
		a.Source() == b.Source() &&
		a.Target() == b.Target() &&
		a.Status() == b.Status() &&
		a.AssignedRobot() == b.AssignedRobot()
}
