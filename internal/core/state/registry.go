package state

import (
	"sort"

	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/model/robot"
	"agvsim/internal/pkg/errs"
)

// RobotRegistry is a name-keyed collection of robots. Names are globally
// unique within the registry; duplicates are rejected, never overwritten.
type RobotRegistry struct {
	robots map[string]*robot.Robot
}

// NewRobotRegistry creates an empty registry.
func NewRobotRegistry() *RobotRegistry {
	return &RobotRegistry{robots: make(map[string]*robot.Robot)}
}

// Add inserts a robot, rejecting duplicate names.
func (r *RobotRegistry) Add(rb *robot.Robot) error {
	if err := rb.Validate(); err != nil {
		return err
	}
	if _, exists := r.robots[rb.Name()]; exists {
		return errs.NewDuplicateNameError("robot", rb.Name())
	}
	r.robots[rb.Name()] = rb
	return nil
}

// Get returns the robot with the given name.
func (r *RobotRegistry) Get(name string) (*robot.Robot, error) {
	rb, ok := r.robots[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("robot", name)
	}
	return rb, nil
}

// All returns every robot sorted by name ascending.
func (r *RobotRegistry) All() []*robot.Robot {
	out := make([]*robot.Robot, 0, len(r.robots))
	for _, rb := range r.robots {
		out = append(out, rb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Executing returns every EXECUTING robot sorted by name ascending. The tick
// engine uses this as its call-start snapshot.
func (r *RobotRegistry) Executing() []*robot.Robot {
	out := make([]*robot.Robot, 0, len(r.robots))
	for _, rb := range r.robots {
		if rb.Status() == robot.StatusExecuting {
			out = append(out, rb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Len returns the number of registered robots.
func (r *RobotRegistry) Len() int {
	return len(r.robots)
}

// OrderRegistry is a name-keyed collection of orders. Names are globally
// unique within the registry; duplicates are rejected, never overwritten.
type OrderRegistry struct {
	orders map[string]*order.Order
}

// NewOrderRegistry creates an empty registry.
func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{orders: make(map[string]*order.Order)}
}

// Add inserts an order, rejecting duplicate names.
func (r *OrderRegistry) Add(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if _, exists := r.orders[o.Name()]; exists {
		return errs.NewDuplicateNameError("order", o.Name())
	}
	r.orders[o.Name()] = o
	return nil
}

// Get returns the order with the given name.
func (r *OrderRegistry) Get(name string) (*order.Order, error) {
	o, ok := r.orders[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", name)
	}
	return o, nil
}

// All returns every order sorted by name ascending.
func (r *OrderRegistry) All() []*order.Order {
	out := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Pending returns every NEW order sorted by name ascending. Batch scheduling
// passes iterate exactly this, so multiple passes process orders in the same
// deterministic sequence.
func (r *OrderRegistry) Pending() []*order.Order {
	out := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if o.IsNew() {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Len returns the number of registered orders.
func (r *OrderRegistry) Len() int {
	return len(r.orders)
}
