package state

import (
	"errors"
	"fmt"
	"sync"

	"agvsim/internal/core/domain/model/graph"
	"agvsim/internal/core/domain/model/kernel"
	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/model/robot"
	"agvsim/internal/core/domain/services"
	"agvsim/internal/pkg/errs"
)

// ErrGraphNotLoaded is returned by operations that need a graph before one
// was loaded.
var ErrGraphNotLoaded = errors.New("no graph is loaded")

// RobotMove records one robot advancing one edge during a tick.
type RobotMove struct {
	Robot string
	From  string
	To    string
}

// TickSummary reports what a single tick changed: which robots moved and
// which orders completed, in the deterministic processing order. Seq counts
// ticks within the session identified by Session.
type TickSummary struct {
	Session         kernel.UUID
	Seq             uint64
	Moves           []RobotMove
	CompletedOrders []string
}

// Assignment records one successful scheduling decision.
type Assignment struct {
	Order string
	Robot string
	Route []string
}

// Aggregate is the single mutable state of a simulation session: the loaded
// graph plus the robot and order registries, guarded by one mutation lock.
//
// Mutating operations run under the exclusive lock and are atomic as a whole:
// a concurrent reader observes the state fully before or fully after any of
// them, never in between. The graph itself is immutable once loaded and is
// safe to query lock-free once obtained from a projection.
type Aggregate struct {
	mu sync.RWMutex

	session kernel.UUID
	graph   *graph.GraphIndex
	robots  *RobotRegistry
	orders  *OrderRegistry
	tickSeq uint64

	dispatcher services.Dispatcher
}

// NewAggregate creates an empty aggregate with no graph loaded.
func NewAggregate() *Aggregate {
	return &Aggregate{
		session:    kernel.NewUUID(),
		robots:     NewRobotRegistry(),
		orders:     NewOrderRegistry(),
		dispatcher: services.NewDispatcher(),
	}
}

// Session returns the current session id. A new session starts on every
// LoadGraph and Replace.
func (a *Aggregate) Session() kernel.UUID {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

// LoadGraph builds a new GraphIndex from the given nodes and edges and makes
// it the session graph. Since existing robots and orders may reference nodes
// the new graph does not have, loading a graph starts a fresh session with
// empty registries. On validation failure the previous state is kept.
func (a *Aggregate) LoadGraph(nodes []string, edges []graph.Edge) (*graph.GraphIndex, error) {
	g, err := graph.NewGraphIndex(nodes, edges)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.graph = g
	a.robots = NewRobotRegistry()
	a.orders = NewOrderRegistry()
	a.session = kernel.NewUUID()
	a.tickSeq = 0
	return g, nil
}

// AddRobot validates and registers a new IDLE robot at the given node.
// Validation failures leave the registries untouched. The returned robot is
// a clone; the live aggregate is only reachable through operations.
func (a *Aggregate) AddRobot(name string, node string) (*robot.Robot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.graph == nil {
		return nil, ErrGraphNotLoaded
	}
	if !a.graph.HasNode(node) {
		return nil, errs.NewObjectNotFoundError("node", node)
	}

	r, err := robot.NewRobot(name, node)
	if err != nil {
		return nil, err
	}
	if err = a.robots.Add(r); err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// AddOrder validates and registers a new NEW order. Validation failures
// leave the registries untouched. The returned order is a clone.
func (a *Aggregate) AddOrder(name string, source string, target string) (*order.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.graph == nil {
		return nil, ErrGraphNotLoaded
	}
	for _, node := range []string{source, target} {
		if !a.graph.HasNode(node) {
			return nil, errs.NewObjectNotFoundError("node", node)
		}
	}

	o, err := order.NewOrder(name, source, target)
	if err != nil {
		return nil, err
	}
	if err = a.orders.Add(o); err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

// AssignOrder runs one nearest-idle scheduling attempt for the named order.
// It returns services.ErrNoEligibleRobot — and leaves the order NEW — when
// no idle robot can serve it.
func (a *Aggregate) AssignOrder(orderName string) (Assignment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.graph == nil {
		return Assignment{}, ErrGraphNotLoaded
	}
	o, err := a.orders.Get(orderName)
	if err != nil {
		return Assignment{}, err
	}

	assigned, err := a.dispatcher.Dispatch(o, a.robots.All(), a.graph)
	if err != nil {
		return Assignment{}, err
	}

	return Assignment{Order: o.Name(), Robot: assigned.Name(), Route: assigned.Route()}, nil
}

// AssignPendingOrders runs one batch scheduling pass: every NEW order in
// ascending name order gets one dispatch attempt. A robot assigned earlier
// in the pass is EXECUTING and therefore never offered to a later order.
// Orders with no eligible robot stay NEW and are skipped; any other dispatch
// failure aborts the pass.
func (a *Aggregate) AssignPendingOrders() ([]Assignment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.graph == nil {
		return nil, ErrGraphNotLoaded
	}

	var assignments []Assignment
	for _, o := range a.orders.Pending() {
		assigned, err := a.dispatcher.Dispatch(o, a.robots.All(), a.graph)
		if errors.Is(err, services.ErrNoEligibleRobot) {
			continue
		}
		if err != nil {
			return assignments, err
		}
		assignments = append(assignments, Assignment{
			Order: o.Name(),
			Robot: assigned.Name(),
			Route: assigned.Route(),
		})
	}
	return assignments, nil
}

// Tick advances the simulation one step. The set of EXECUTING robots is
// snapshotted at entry and processed in ascending name order; each robot
// moves one edge along its route, and a robot reaching its route's final
// node completes its order and returns to IDLE. Robots or orders created
// after the snapshot are not advanced in this call.
//
// The whole tick runs under the mutation lock: callers observe the pre-tick
// or the post-tick state, never an intermediate per-robot state. An
// invariant violation (an executing robot that cannot advance, a dangling
// order link) aborts the tick with a non-nil error — the state machine was
// broken elsewhere and continuing would fabricate plausible but wrong state.
func (a *Aggregate) Tick() (TickSummary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.graph == nil {
		return TickSummary{}, ErrGraphNotLoaded
	}

	a.tickSeq++
	summary := TickSummary{Session: a.session, Seq: a.tickSeq}

	for _, r := range a.robots.Executing() {
		from := r.Node()
		arrived, err := r.Advance()
		if err != nil {
			return summary, err
		}
		if r.Node() != from {
			summary.Moves = append(summary.Moves, RobotMove{Robot: r.Name(), From: from, To: r.Node()})
		}
		if !arrived {
			continue
		}

		orderName := r.AssignedOrder()
		o, err := a.orders.Get(orderName)
		if err != nil {
			return summary, errs.NewInvariantViolationErrorWithCause(
				fmt.Sprintf("robot %q executes order %q which is not registered", r.Name(), orderName), err)
		}
		if err = o.Complete(); err != nil {
			return summary, errs.NewInvariantViolationErrorWithCause(
				fmt.Sprintf("order %q could not complete on arrival of robot %q", orderName, r.Name()), err)
		}
		if err = r.CompleteAssignment(); err != nil {
			return summary, err
		}
		summary.CompletedOrders = append(summary.CompletedOrders, orderName)
	}

	return summary, nil
}

// Robot returns a clone of the named robot.
func (a *Aggregate) Robot(name string) (*robot.Robot, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	r, err := a.robots.Get(name)
	if err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// Order returns a clone of the named order.
func (a *Aggregate) Order(name string) (*order.Order, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	o, err := a.orders.Get(name)
	if err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

// Snapshot returns a deep-cloned projection of the full state. It is the
// read side of the StateStore contract and backs all queries; the clone can
// be inspected or persisted without holding the lock.
func (a *Aggregate) Snapshot() (*Snapshot, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.graph == nil {
		return nil, ErrGraphNotLoaded
	}

	snap := &Snapshot{Graph: a.graph}
	for _, r := range a.robots.All() {
		snap.Robots = append(snap.Robots, r.Clone())
	}
	for _, o := range a.orders.All() {
		snap.Orders = append(snap.Orders, o.Clone())
	}
	return snap, nil
}

// Replace atomically swaps the live state for the given snapshot, after
// validating its referential invariants. A fresh session starts and the tick
// counter resets. On validation failure the previous state is kept.
func (a *Aggregate) Replace(snap *Snapshot) error {
	if snap == nil {
		return errs.NewValueIsRequiredError("snapshot")
	}
	if err := snap.Validate(); err != nil {
		return err
	}

	owned := snap.Clone()
	robots := NewRobotRegistry()
	for _, r := range owned.Robots {
		if err := robots.Add(r); err != nil {
			return err
		}
	}
	orders := NewOrderRegistry()
	for _, o := range owned.Orders {
		if err := orders.Add(o); err != nil {
			return err
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.graph = owned.Graph
	a.robots = robots
	a.orders = orders
	a.session = kernel.NewUUID()
	a.tickSeq = 0
	return nil
}
