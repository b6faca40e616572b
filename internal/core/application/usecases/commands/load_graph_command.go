package commands

import (
	"errors"

	"agvsim/internal/core/domain/model/graph"
	"agvsim/internal/pkg/errs"
	"agvsim/internal/pkg/guard"
)

var ErrLoadGraphCommandIsNotConstructed = errors.New(
	"LoadGraphCommand must be created via NewLoadGraphCommand constructor",
)

// EdgeSpec is the raw edge shape accepted at the boundary: an undirected
// relation between two declared nodes with a positive finite weight.
type EdgeSpec struct {
	From   string
	To     string
	Weight float64
}

// LoadGraphCommand represents a request to (re)initialize the warehouse
// graph. Loading a graph starts a fresh session: robots and orders from the
// previous graph are discarded, since their node references may no longer
// exist.
//
// Example:
//
//	cmd, err := NewLoadGraphCommand(
//	    []string{"A", "B"},
//	    []EdgeSpec{{From: "A", To: "B", Weight: 1}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid graph: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to load graph: %w", err)
//	}
type LoadGraphCommand struct { //nolint:recvcheck //using for validation
	nodes []string
	edges []graph.Edge

	guard guard.ConstructorGuard
}

// NewLoadGraphCommand creates a command to load a new graph. Edge specs are
// converted to validated edges here, so malformed weights and empty node ids
// are rejected before the command reaches a handler. Cross-references (an
// edge naming an undeclared node) are checked at graph construction.
func NewLoadGraphCommand(nodes []string, edges []EdgeSpec) (LoadGraphCommand, error) {
	command := LoadGraphCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNodes(nodes),
		command.setEdges(edges),
	); err != nil {
		return LoadGraphCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadGraphCommandIsNotConstructed if validation fails.
func (c LoadGraphCommand) Validate() error {
	return c.guard.Validate(ErrLoadGraphCommandIsNotConstructed)
}

// Nodes returns the declared node ids.
func (c LoadGraphCommand) Nodes() []string {
	return c.nodes
}

// Edges returns the validated edges.
func (c LoadGraphCommand) Edges() []graph.Edge {
	return c.edges
}

func (c *LoadGraphCommand) setNodes(nodes []string) error {
	if len(nodes) == 0 {
		return errs.NewValueIsRequiredError("nodes")
	}

	c.nodes = nodes
	return nil
}

func (c *LoadGraphCommand) setEdges(specs []EdgeSpec) error {
	edges := make([]graph.Edge, 0, len(specs))
	var errList []error
	for _, spec := range specs {
		e, err := graph.NewEdge(spec.From, spec.To, spec.Weight)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		edges = append(edges, e)
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	c.edges = edges
	return nil
}
