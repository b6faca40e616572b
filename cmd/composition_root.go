package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "agvsim/internal/adapters/in/http"
	"agvsim/internal/adapters/out/memstore"
	pgstore "agvsim/internal/adapters/out/postgres"
	"agvsim/internal/adapters/out/sqlitestore"
	"agvsim/internal/core/application/usecases/commands"
	"agvsim/internal/core/application/usecases/queries"
	"agvsim/internal/core/ports"
	"agvsim/internal/core/state"
	"agvsim/internal/jobs"
	"agvsim/internal/pkg/errs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the persistence adapter, the in-memory aggregate and
// the application handlers together. On construction it restores the last
// saved snapshot from the store, falling back to the built-in demo scenario
// when the store is empty.
type CompositionRoot struct {
	aggregate *state.Aggregate
	store     ports.StateStore
	logger    *slog.Logger
}

func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	store, err := newStateStore(configs)
	if err != nil {
		return nil, err
	}

	snap, err := store.Load(context.Background())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("failed to load state snapshot: %w", err)
		}
		snap, err = state.Seed()
		if err != nil {
			return nil, fmt.Errorf("failed to build demo scenario: %w", err)
		}
		if err := store.Reset(context.Background(), snap); err != nil {
			return nil, fmt.Errorf("failed to persist demo scenario: %w", err)
		}
	}

	aggregate := state.NewAggregate()
	if err := aggregate.Replace(snap); err != nil {
		return nil, fmt.Errorf("failed to restore state snapshot: %w", err)
	}

	return &CompositionRoot{
		aggregate: aggregate,
		store:     store,
		logger:    logger,
	}, nil
}

func newStateStore(configs Config) (ports.StateStore, error) {
	switch configs.StoreDriver {
	case "sqlite":
		return sqlitestore.Open(configs.SQLitePath)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
		db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		store := pgstore.NewStore(db)
		if err := store.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to migrate snapshot schema: %w", err)
		}
		return store, nil
	case "memory":
		return memstore.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", configs.StoreDriver)
	}
}

func (c *CompositionRoot) CreateLoadGraphCommandHandler() commands.LoadGraphCommandHandler {
	return commands.NewLoadGraphCommandHandler(c.aggregate)
}

func (c *CompositionRoot) CreateAddRobotCommandHandler() commands.AddRobotCommandHandler {
	return commands.NewAddRobotCommandHandler(c.aggregate)
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	return commands.NewAddOrderCommandHandler(c.aggregate)
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	return commands.NewAssignOrdersCommandHandler(c.aggregate)
}

func (c *CompositionRoot) CreateTickCommandHandler() commands.TickCommandHandler {
	return commands.NewTickCommandHandler(c.aggregate)
}

func (c *CompositionRoot) CreateResetCommandHandler() commands.ResetCommandHandler {
	return commands.NewResetCommandHandler(c.aggregate, c.store)
}

func (c *CompositionRoot) CreateSaveStateCommandHandler() commands.SaveStateCommandHandler {
	return commands.NewSaveStateCommandHandler(c.aggregate, c.store)
}

func (c *CompositionRoot) CreateGetGraphQueryHandler() queries.GetGraphQueryHandler {
	return queries.NewGetGraphQueryHandler(c.aggregate)
}

func (c *CompositionRoot) CreateGetRobotsQueryHandler() queries.GetRobotsQueryHandler {
	return queries.NewGetRobotsQueryHandler(c.aggregate)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.aggregate)
}

func (c *CompositionRoot) CreateGetRoutesQueryHandler() queries.GetRoutesQueryHandler {
	return queries.NewGetRoutesQueryHandler(c.aggregate)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateLoadGraphCommandHandler(),
		c.CreateAddRobotCommandHandler(),
		c.CreateAddOrderCommandHandler(),
		c.CreateTickCommandHandler(),
		c.CreateResetCommandHandler(),
		c.CreateGetGraphQueryHandler(),
		c.CreateGetRobotsQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetRoutesQueryHandler(),
		state.Seed,
	)
}

func (c *CompositionRoot) CreateJobManager(configs Config) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAssignOrdersCommandHandler(),
		c.CreateSaveStateCommandHandler(),
		c.CreateTickCommandHandler(),
		time.Duration(configs.SnapshotIntervalSeconds)*time.Second,
		configs.AutoTick,
		c.logger,
	)
}
