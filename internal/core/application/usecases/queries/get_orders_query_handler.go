package queries

import (
	"context"

	"agvsim/internal/core/state"
)

// GetOrdersQueryHandler projects the order registry into its read model.
type GetOrdersQueryHandler struct {
	aggregate *state.Aggregate
}

// NewGetOrdersQueryHandler creates a handler bound to the live aggregate.
func NewGetOrdersQueryHandler(aggregate *state.Aggregate) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{aggregate: aggregate}
}

// Handle returns every order sorted by name.
func (h GetOrdersQueryHandler) Handle(_ context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snap, err := h.aggregate.Snapshot()
	if err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0, len(snap.Orders))
	for _, o := range snap.Orders {
		orders = append(orders, GetOrdersQueryResponse{
			Name:   o.Name(),
			Source: o.Source(),
			Target: o.Target(),
			Status: o.Status(),
		})
	}

	return orders, nil
}
