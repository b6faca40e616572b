// Package postgres persists simulation snapshots in PostgreSQL via GORM.
// It implements the same single-snapshot contract as the sqlite store and
// suits deployments where several tools inspect the fleet state in a shared
// database.
package postgres

import (
	"encoding/json"
	"time"

	"agvsim/internal/core/domain/model/graph"
	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/model/robot"
)

// MetaDTO marks that a snapshot exists and when it was written. The table
// holds at most one row.
type MetaDTO struct {
	ID      int `gorm:"primaryKey;check:id = 1"`
	SavedAt time.Time
}

// TableName overrides GORM's default naming to use "snapshot_meta".
func (MetaDTO) TableName() string {
	return "snapshot_meta"
}

// NodeDTO stores one declared graph node. Position preserves declaration
// order across a round trip.
type NodeDTO struct {
	Position uint `gorm:"primaryKey;autoIncrement"`
	NodeID   string
}

// TableName overrides GORM's default naming to use "snapshot_nodes".
func (NodeDTO) TableName() string {
	return "snapshot_nodes"
}

// EdgeDTO stores one undirected weighted edge.
type EdgeDTO struct {
	Position uint `gorm:"primaryKey;autoIncrement"`
	FromNode string
	ToNode   string
	Weight   float64
}

// TableName overrides GORM's default naming to use "snapshot_edges".
func (EdgeDTO) TableName() string {
	return "snapshot_edges"
}

// RobotDTO stores one robot, including its in-flight route as a JSON array.
type RobotDTO struct {
	Name          string `gorm:"primaryKey"`
	Status        string
	Node          string
	Route         string
	RouteCursor   int
	AssignedOrder string
}

// TableName overrides GORM's default naming to use "snapshot_robots".
func (RobotDTO) TableName() string {
	return "snapshot_robots"
}

// OrderDTO stores one order.
type OrderDTO struct {
	Name          string `gorm:"primaryKey"`
	Source        string
	Target        string
	Status        string
	AssignedRobot string
}

// TableName overrides GORM's default naming to use "snapshot_orders".
func (OrderDTO) TableName() string {
	return "snapshot_orders"
}

func robotFromDomain(r *robot.Robot) (RobotDTO, error) {
	route, err := json.Marshal(r.Route())
	if err != nil {
		return RobotDTO{}, err
	}

	return RobotDTO{
		Name:          r.Name(),
		Status:        string(r.Status()),
		Node:          r.Node(),
		Route:         string(route),
		RouteCursor:   r.RouteCursor(),
		AssignedOrder: r.AssignedOrder(),
	}, nil
}

func robotToDomain(dto RobotDTO) (*robot.Robot, error) {
	var route []string
	if err := json.Unmarshal([]byte(dto.Route), &route); err != nil {
		return nil, err
	}

	return robot.RestoreRobot(
		dto.Name,
		robot.Status(dto.Status),
		dto.Node,
		route,
		dto.RouteCursor,
		dto.AssignedOrder,
	)
}

func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		Name:          o.Name(),
		Source:        o.Source(),
		Target:        o.Target(),
		Status:        string(o.Status()),
		AssignedRobot: o.AssignedRobot(),
	}
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.Name,
		dto.Source,
		dto.Target,
		order.Status(dto.Status),
		dto.AssignedRobot,
	)
}

func edgeToDomain(dto EdgeDTO) (graph.Edge, error) {
	return graph.NewEdge(dto.FromNode, dto.ToNode, dto.Weight)
}
