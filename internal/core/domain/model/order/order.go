package order

import (
	"errors"

	"agvsim/internal/pkg/errs"

	"agvsim/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is a pickup/delivery aggregate. The caller creates it NEW; the
// scheduler links it to exactly one robot (IN_PROGRESS), and the tick engine
// completes it (DONE) when that robot reaches the target node.
//
// Invariant: status == IN_PROGRESS iff a robot is assigned; DONE clears the
// assignment. At most one robot may ever point back at this order — the
// registry and scheduler enforce the one-to-one link.
type Order struct {
	// name is the globally unique identifier of the order.
	name string
	// source is the pickup node.
	source string
	// target is the delivery node.
	target string
	// status is the lifecycle state.
	status Status
	// assignedRobot is the executing robot's name, "" when unassigned.
	assignedRobot string

	guard guard.ConstructorGuard
}

// NewOrder creates a NEW order from source to target. Node existence against
// the loaded graph is the registry's concern; here only shape is validated.
// An order whose source equals its target is legal and completes on the first
// tick after assignment.
func NewOrder(name string, source string, target string) (*Order, error) {
	o := &Order{
		status: StatusNew,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setName(name),
		o.setSource(source),
		o.setTarget(target),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from a persisted snapshot, verifying
// status/assignment consistency so a corrupted snapshot is rejected.
func RestoreOrder(
	name string,
	source string,
	target string,
	status Status,
	assignedRobot string,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setName(name),
		o.setSource(source),
		o.setTarget(target),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveRobot(assignedRobot != ""); err != nil {
		return nil, err
	}

	o.status = status
	o.assignedRobot = assignedRobot
	return o, nil
}

// Validate checks that the Order was created via a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Name returns the order's unique name.
func (o *Order) Name() string {
	return o.name
}

// Source returns the pickup node.
func (o *Order) Source() string {
	return o.source
}

// Target returns the delivery node.
func (o *Order) Target() string {
	return o.target
}

// Status returns the order's lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// AssignedRobot returns the executing robot's name, "" when unassigned.
func (o *Order) AssignedRobot() string {
	return o.assignedRobot
}

// IsNew reports whether the order still waits for a robot.
func (o *Order) IsNew() bool {
	return o.status == StatusNew
}

// Assign links the order to a robot and moves it to IN_PROGRESS. Only NEW
// orders accept an assignment; a failed call leaves the order untouched.
func (o *Order) Assign(robotName string) error {
	if robotName == "" {
		return errs.NewValueIsRequiredError("robotName")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedRobot = robotName
	return nil
}

// Complete marks the order DONE and clears the robot link. DONE is terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedRobot = ""
	return nil
}

// Fail cancels the order. Extension point: nothing in the scheduling or tick
// paths calls it.
func (o *Order) Fail() error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedRobot = ""
	return nil
}

// Clone returns a copy of the order. Snapshots hand out clones so projections
// can never alias live aggregate state.
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}

func (o *Order) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *Order) setSource(source string) error {
	if source == "" {
		return errs.NewValueIsRequiredError("source")
	}
	o.source = source
	return nil
}

func (o *Order) setTarget(target string) error {
	if target == "" {
		return errs.NewValueIsRequiredError("target")
	}
	o.target = target
	return nil
}
