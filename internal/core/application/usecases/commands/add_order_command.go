package commands

import (
	"errors"

	"agvsim/internal/pkg/errs"
	"agvsim/internal/pkg/guard"
)

var ErrAddOrderCommandIsNotConstructed = errors.New(
	"AddOrderCommand must be created via NewAddOrderCommand constructor",
)

// AddOrderCommand represents a request to create a new transport order from
// a source node to a target node.
//
// Example:
//
//	cmd, err := NewAddOrderCommand("O-1002", "B", "D")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("order %s is %s", created.Name(), created.Status())
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	name   string
	source string
	target string

	guard guard.ConstructorGuard
}

// NewAddOrderCommand creates a command to register an order. Name, source
// and target must be non-empty; source may equal target (the order then
// completes at assignment without moving the robot). Node existence is
// checked against the loaded graph by the handler.
func NewAddOrderCommand(name string, source string, target string) (AddOrderCommand, error) {
	command := AddOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setSource(source),
		command.setTarget(target),
	); err != nil {
		return AddOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderCommandIsNotConstructed if validation fails.
func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

// Name returns the order name from the command.
func (c AddOrderCommand) Name() string {
	return c.name
}

// Source returns the pickup node from the command.
func (c AddOrderCommand) Source() string {
	return c.source
}

// Target returns the delivery node from the command.
func (c AddOrderCommand) Target() string {
	return c.target
}

func (c *AddOrderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddOrderCommand) setSource(source string) error {
	if source == "" {
		return errs.NewValueIsRequiredError("source")
	}

	c.source = source
	return nil
}

func (c *AddOrderCommand) setTarget(target string) error {
	if target == "" {
		return errs.NewValueIsRequiredError("target")
	}

	c.target = target
	return nil
}
