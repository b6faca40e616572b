package services

import (
	"errors"

	"agvsim/internal/core/domain/model/graph"
	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/model/robot"
	"agvsim/internal/pkg/errs"
)

// ErrNoEligibleRobot is returned when no idle robot can reach the order's
// source, or when no robot is idle at all. It is a normal scheduling outcome,
// distinct from a validation error: the order simply stays NEW and a later
// pass may succeed once a robot frees up.
var ErrNoEligibleRobot = errors.New("no eligible robot")

// Dispatcher is the nearest-idle scheduler. For a NEW order it evaluates
// every idle robot's shortest-path distance to the order's source, picks the
// minimum, and breaks distance ties by ascending robot name so repeated runs
// select the same winner.
type Dispatcher struct{}

// NewDispatcher creates a Dispatcher.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Dispatch assigns the given NEW order to the nearest idle robot.
//
// Candidate rules:
//   - only IDLE robots are considered
//   - robots that cannot reach the order's source are excluded
//   - among the rest, minimum distance wins; ties go to the smaller name
//
// On success the full route is path(robot.node -> source) concatenated with
// path(source -> target), the shared junction node appearing once, and both
// aggregates flip together: the order becomes IN_PROGRESS pointing at the
// robot, the robot becomes EXECUTING carrying the route and the order. All
// checks run before the first mutation, so no caller can observe a
// half-linked pair.
//
// Returns ErrNoEligibleRobot when no candidate exists, including the case of
// an order whose target is unreachable from its source.
func (d Dispatcher) Dispatch(
	o *order.Order,
	robots []*robot.Robot,
	g *graph.GraphIndex,
) (*robot.Robot, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !o.IsNew() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			errors.New("only NEW orders are schedulable, "+o.Name()+" is "+o.Status().String()))
	}

	// The delivery leg is shared by every candidate; if the target cannot
	// be reached from the source no robot is eligible, regardless of how
	// close it stands.
	delivery, err := g.ShortestPath(o.Source(), o.Target())
	if errors.Is(err, graph.ErrUnreachable) {
		return nil, ErrNoEligibleRobot
	}
	if err != nil {
		return nil, err
	}

	best, approach, err := d.findNearestIdleRobot(o, robots, g)
	if err != nil {
		return nil, err
	}

	route := concatRoute(approach.Nodes, delivery.Nodes)

	if err = best.AssignRoute(o.Name(), route); err != nil {
		return nil, err
	}
	if err = o.Assign(best.Name()); err != nil {
		return nil, err
	}

	return best, nil
}

// findNearestIdleRobot scans the robots for the best candidate. The scan
// order does not matter: strict distance improvement plus the name tie-break
// yields a single deterministic winner for any input order.
func (d Dispatcher) findNearestIdleRobot(
	o *order.Order,
	robots []*robot.Robot,
	g *graph.GraphIndex,
) (*robot.Robot, graph.Path, error) {
	var (
		best     *robot.Robot
		bestPath graph.Path
	)

	for _, r := range robots {
		if err := r.Validate(); err != nil {
			return nil, graph.Path{}, err
		}
		if !r.IsIdle() {
			continue
		}

		path, err := g.ShortestPath(r.Node(), o.Source())
		if errors.Is(err, graph.ErrUnreachable) {
			continue
		}
		if err != nil {
			return nil, graph.Path{}, err
		}

		if best == nil ||
			path.Distance < bestPath.Distance ||
			(path.Distance == bestPath.Distance && r.Name() < best.Name()) {
			best = r
			bestPath = path
		}
	}

	if best == nil {
		return nil, graph.Path{}, ErrNoEligibleRobot
	}

	return best, bestPath, nil
}

// concatRoute joins the approach and delivery legs, keeping the junction node
// (the order's source, last of the approach and first of the delivery) once.
func concatRoute(approach []string, delivery []string) []string {
	route := make([]string, 0, len(approach)+len(delivery)-1)
	route = append(route, approach...)
	route = append(route, delivery[1:]...)
	return route
}
