package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"agvsim/internal/core/domain/model/graph"
	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/model/robot"
	"agvsim/internal/core/state"
	"agvsim/internal/pkg/errs"
)

// Store implements ports.StateStore over a GORM PostgreSQL connection. Every
// save replaces the single stored snapshot inside one transaction.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over an open GORM connection. Call Migrate before
// first use.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the snapshot tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&MetaDTO{}, &NodeDTO{}, &EdgeDTO{}, &RobotDTO{}, &OrderDTO{},
	)
}

// Save replaces the stored snapshot with the given one, atomically.
func (s *Store) Save(ctx context.Context, snap *state.Snapshot) error {
	if snap == nil {
		return errs.NewValueIsRequiredError("snapshot")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&MetaDTO{}, &NodeDTO{}, &EdgeDTO{}, &RobotDTO{}, &OrderDTO{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&MetaDTO{ID: 1, SavedAt: time.Now().UTC()}).Error; err != nil {
			return err
		}

		for _, node := range snap.Graph.Nodes() {
			if err := tx.Create(&NodeDTO{NodeID: node}).Error; err != nil {
				return err
			}
		}
		for _, e := range snap.Graph.Edges() {
			dto := EdgeDTO{FromNode: e.From(), ToNode: e.To(), Weight: e.Weight()}
			if err := tx.Create(&dto).Error; err != nil {
				return err
			}
		}
		for _, r := range snap.Robots {
			dto, err := robotFromDomain(r)
			if err != nil {
				return err
			}
			if err = tx.Create(&dto).Error; err != nil {
				return err
			}
		}
		for _, o := range snap.Orders {
			dto := orderFromDomain(o)
			if err := tx.Create(&dto).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Reset discards the stored snapshot and stores the seed. With a
// single-snapshot schema this is the same write path as Save.
func (s *Store) Reset(ctx context.Context, seed *state.Snapshot) error {
	return s.Save(ctx, seed)
}

// Load reads the stored snapshot back, reconstructing validated domain
// aggregates. Returns an error matching errs.ErrObjectNotFound when nothing
// was ever saved.
func (s *Store) Load(ctx context.Context) (*state.Snapshot, error) {
	db := s.db.WithContext(ctx)

	var meta MetaDTO
	if err := db.First(&meta, 1).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NewObjectNotFoundError("snapshot", 1)
		}
		return nil, err
	}

	var nodeDTOs []NodeDTO
	if err := db.Order("position").Find(&nodeDTOs).Error; err != nil {
		return nil, err
	}
	nodes := make([]string, 0, len(nodeDTOs))
	for _, dto := range nodeDTOs {
		nodes = append(nodes, dto.NodeID)
	}

	var edgeDTOs []EdgeDTO
	if err := db.Order("position").Find(&edgeDTOs).Error; err != nil {
		return nil, err
	}
	edges := make([]graph.Edge, 0, len(edgeDTOs))
	for _, dto := range edgeDTOs {
		e, err := edgeToDomain(dto)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	g, err := graph.NewGraphIndex(nodes, edges)
	if err != nil {
		return nil, err
	}

	var robotDTOs []RobotDTO
	if err = db.Order("name").Find(&robotDTOs).Error; err != nil {
		return nil, err
	}
	robots := make([]*robot.Robot, 0, len(robotDTOs))
	for _, dto := range robotDTOs {
		r, robotErr := robotToDomain(dto)
		if robotErr != nil {
			return nil, robotErr
		}
		robots = append(robots, r)
	}

	var orderDTOs []OrderDTO
	if err = db.Order("name").Find(&orderDTOs).Error; err != nil {
		return nil, err
	}
	orders := make([]*order.Order, 0, len(orderDTOs))
	for _, dto := range orderDTOs {
		o, orderErr := orderToDomain(dto)
		if orderErr != nil {
			return nil, orderErr
		}
		orders = append(orders, o)
	}

	return &state.Snapshot{Graph: g, Robots: robots, Orders: orders}, nil
}
