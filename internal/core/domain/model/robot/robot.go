package robot

import (
	"errors"
	"fmt"

	"agvsim/internal/pkg/errs"

	"agvsim/internal/pkg/guard"
)

// Domain errors for robot operations.
var (
	// ErrRobotIsNotConstructed is returned when using an improperly
	// initialized Robot.
	ErrRobotIsNotConstructed = errors.New("Robot must be created via NewRobot or RestoreRobot constructor")
)

// Robot is an AGV aggregate. A robot is created IDLE at a graph node; the
// scheduler hands it a route and an order name, the tick engine advances it
// one edge per tick and idles it again on arrival.
//
// Invariant: status == EXECUTING iff route is non-empty and an order is
// assigned; status == IDLE iff both are empty. All mutating methods preserve
// this invariant or fail without modifying the robot.
type Robot struct {
	// name is the globally unique identifier of the robot.
	name string
	// status is IDLE or EXECUTING.
	status Status
	// node is the current position; route[routeCursor] while executing.
	node string
	// route is the ordered node sequence for the current assignment,
	// starting at the node the robot occupied when assigned.
	route []string
	// routeCursor indexes the robot's current position within route.
	routeCursor int
	// assignedOrder is the name of the order being executed, "" when idle.
	assignedOrder string

	guard guard.ConstructorGuard
}

// NewRobot creates an IDLE robot at the given node. Node existence against
// the loaded graph is the registry's concern; here only shape is validated.
func NewRobot(name string, node string) (*Robot, error) {
	r := &Robot{
		status: StatusIdle,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setNode(node),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRobot reconstructs a Robot from a persisted snapshot, including an
// in-flight route. Unlike NewRobot it accepts any status but verifies the
// full set of aggregate invariants, so a corrupted snapshot is rejected
// instead of producing an inconsistent robot.
func RestoreRobot(
	name string,
	status Status,
	node string,
	route []string,
	routeCursor int,
	assignedOrder string,
) (*Robot, error) {
	r := &Robot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setNode(node),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	r.status = status

	if err := status.ValidateConsistency(len(route) > 0, assignedOrder != ""); err != nil {
		return nil, err
	}

	if status == StatusExecuting {
		if routeCursor < 0 || routeCursor >= len(route) {
			return nil, errs.NewValueIsOutOfRangeError("routeCursor", routeCursor, 0, len(route)-1)
		}
		if route[routeCursor] != node {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"route",
				fmt.Errorf("robot node %q does not match route position %q", node, route[routeCursor]))
		}
		r.route = make([]string, len(route))
		copy(r.route, route)
		r.routeCursor = routeCursor
		r.assignedOrder = assignedOrder
	}

	return r, nil
}

// Validate checks that the Robot was created via a constructor.
func (r *Robot) Validate() error {
	if r == nil {
		return ErrRobotIsNotConstructed
	}
	return r.guard.Validate(ErrRobotIsNotConstructed)
}

// Name returns the robot's unique name.
func (r *Robot) Name() string {
	return r.name
}

// Status returns the robot's current lifecycle state.
func (r *Robot) Status() Status {
	return r.status
}

// Node returns the robot's current graph node.
func (r *Robot) Node() string {
	return r.node
}

// Route returns a copy of the current route, nil when idle.
func (r *Robot) Route() []string {
	if len(r.route) == 0 {
		return nil
	}
	out := make([]string, len(r.route))
	copy(out, r.route)
	return out
}

// RouteCursor returns the index of the robot's position within its route.
// Meaningful only while executing.
func (r *Robot) RouteCursor() int {
	return r.routeCursor
}

// AssignedOrder returns the name of the order being executed, "" when idle.
func (r *Robot) AssignedOrder() string {
	return r.assignedOrder
}

// IsIdle reports whether the robot is available to the scheduler.
func (r *Robot) IsIdle() bool {
	return r.status == StatusIdle
}

// AssignRoute flips the robot from IDLE to EXECUTING with the given route and
// order. The route must start at the robot's current node — the scheduler
// computes it from exactly there — and the flip happens only after every
// check passed, so a failed assignment leaves the robot untouched.
func (r *Robot) AssignRoute(orderName string, route []string) error {
	if orderName == "" {
		return errs.NewValueIsRequiredError("orderName")
	}
	if r.status != StatusIdle {
		return errs.NewValueIsInvalidErrorWithCause(
			"robot status",
			fmt.Errorf("robot %q is %s, only IDLE robots accept routes", r.name, r.status))
	}
	if len(route) == 0 {
		return errs.NewValueIsRequiredError("route")
	}
	if route[0] != r.node {
		return errs.NewValueIsInvalidErrorWithCause(
			"route",
			fmt.Errorf("route starts at %q but robot %q is at %q", route[0], r.name, r.node))
	}

	r.route = make([]string, len(route))
	copy(r.route, route)
	r.routeCursor = 0
	r.assignedOrder = orderName
	r.status = StatusExecuting
	return nil
}

// Advance moves the robot one edge along its route: the cursor increments and
// the node becomes the next route entry. It reports whether the robot now
// stands on the route's final node.
//
// Calling Advance on a robot that is not EXECUTING, or whose route is empty,
// is an invariant violation — the state machine was broken elsewhere and the
// tick must halt loudly rather than guess.
func (r *Robot) Advance() (arrived bool, err error) {
	if r.status != StatusExecuting {
		return false, errs.NewInvariantViolationError(
			fmt.Sprintf("robot %q advanced while %s", r.name, r.status))
	}
	if len(r.route) == 0 {
		return false, errs.NewInvariantViolationError(
			fmt.Sprintf("robot %q is EXECUTING with an empty route", r.name))
	}

	// A single-node route means the robot was assigned an order whose
	// pickup and target coincide with its position; there is no edge to
	// traverse and the robot has already arrived.
	if r.routeCursor < len(r.route)-1 {
		r.routeCursor++
		r.node = r.route[r.routeCursor]
	}

	return r.routeCursor == len(r.route)-1, nil
}

// CompleteAssignment flips the robot back to IDLE, clearing route, cursor and
// assigned order. Only an EXECUTING robot standing on its route's final node
// completes; anything else is an invariant violation.
func (r *Robot) CompleteAssignment() error {
	if r.status != StatusExecuting {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("robot %q completed an assignment while %s", r.name, r.status))
	}
	if len(r.route) == 0 || r.routeCursor != len(r.route)-1 {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("robot %q completed an assignment away from its route end", r.name))
	}

	r.route = nil
	r.routeCursor = 0
	r.assignedOrder = ""
	r.status = StatusIdle
	return nil
}

// Clone returns a deep copy of the robot. Snapshots hand out clones so
// projections can never alias live aggregate state.
func (r *Robot) Clone() *Robot {
	clone := *r
	if len(r.route) > 0 {
		clone.route = make([]string, len(r.route))
		copy(clone.route, r.route)
	}
	return &clone
}

func (r *Robot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Robot) setNode(node string) error {
	if node == "" {
		return errs.NewValueIsRequiredError("node")
	}
	r.node = node
	return nil
}
