// Package sqlitestore persists simulation snapshots in an embedded SQLite
// database. It is the default StateStore: no external service, a single
// file, and the pure-Go driver keeps the build cgo-free.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"agvsim/internal/core/domain/model/graph"
	"agvsim/internal/core/domain/model/order"
	"agvsim/internal/core/domain/model/robot"
	"agvsim/internal/core/state"
	"agvsim/internal/pkg/errs"
)

// Store implements ports.StateStore over a SQLite file. The store keeps
// exactly one snapshot; every save replaces it wholesale inside one
// transaction.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs migrations. Use
// ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshot_meta (
			id        INTEGER PRIMARY KEY CHECK (id = 1),
			saved_at  TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS snapshot_nodes (
			position  INTEGER PRIMARY KEY AUTOINCREMENT,
			node_id   TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS snapshot_edges (
			position   INTEGER PRIMARY KEY AUTOINCREMENT,
			from_node  TEXT NOT NULL,
			to_node    TEXT NOT NULL,
			weight     REAL NOT NULL
		);
		CREATE TABLE IF NOT EXISTS snapshot_robots (
			name            TEXT PRIMARY KEY,
			status          TEXT NOT NULL,
			node            TEXT NOT NULL,
			route           TEXT NOT NULL,
			route_cursor    INTEGER NOT NULL,
			assigned_order  TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS snapshot_orders (
			name            TEXT PRIMARY KEY,
			source          TEXT NOT NULL,
			target          TEXT NOT NULL,
			status          TEXT NOT NULL,
			assigned_robot  TEXT NOT NULL
		);
	`)
	return err
}

// Save replaces the stored snapshot with the given one, atomically.
func (s *Store) Save(ctx context.Context, snap *state.Snapshot) error {
	if snap == nil {
		return errs.NewValueIsRequiredError("snapshot")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err = s.writeSnapshot(ctx, tx, snap); err != nil {
		return err
	}

	return tx.Commit()
}

// Reset discards the stored snapshot and stores the seed. With a
// single-snapshot schema this is the same write path as Save.
func (s *Store) Reset(ctx context.Context, seed *state.Snapshot) error {
	return s.Save(ctx, seed)
}

func (s *Store) writeSnapshot(ctx context.Context, tx *sql.Tx, snap *state.Snapshot) error {
	for _, table := range []string{
		"snapshot_meta", "snapshot_nodes", "snapshot_edges",
		"snapshot_robots", "snapshot_orders",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (id, saved_at) VALUES (1, datetime('now'))`,
	); err != nil {
		return err
	}

	for _, node := range snap.Graph.Nodes() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_nodes (node_id) VALUES (?)`, node,
		); err != nil {
			return err
		}
	}

	for _, e := range snap.Graph.Edges() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_edges (from_node, to_node, weight) VALUES (?, ?, ?)`,
			e.From(), e.To(), e.Weight(),
		); err != nil {
			return err
		}
	}

	for _, r := range snap.Robots {
		route, err := json.Marshal(r.Route())
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO snapshot_robots (name, status, node, route, route_cursor, assigned_order)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.Name(), string(r.Status()), r.Node(), string(route), r.RouteCursor(), r.AssignedOrder(),
		); err != nil {
			return err
		}
	}

	for _, o := range snap.Orders {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_orders (name, source, target, status, assigned_robot)
			 VALUES (?, ?, ?, ?, ?)`,
			o.Name(), o.Source(), o.Target(), string(o.Status()), o.AssignedRobot(),
		); err != nil {
			return err
		}
	}

	return nil
}

// Load reads the stored snapshot back, reconstructing validated domain
// aggregates. Returns an error matching errs.ErrObjectNotFound when nothing
// was ever saved.
func (s *Store) Load(ctx context.Context) (*state.Snapshot, error) {
	var savedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT saved_at FROM snapshot_meta WHERE id = 1`,
	).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return nil, errs.NewObjectNotFoundError("snapshot", 1)
	}
	if err != nil {
		return nil, err
	}

	g, err := s.loadGraph(ctx)
	if err != nil {
		return nil, err
	}
	robots, err := s.loadRobots(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	return &state.Snapshot{Graph: g, Robots: robots, Orders: orders}, nil
}

func (s *Store) loadGraph(ctx context.Context) (*graph.GraphIndex, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT node_id FROM snapshot_nodes ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []string
	for rows.Next() {
		var node string
		if err = rows.Scan(&node); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	edgeRows, err := s.db.QueryContext(ctx,
		`SELECT from_node, to_node, weight FROM snapshot_edges ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer edgeRows.Close()

	var edges []graph.Edge
	for edgeRows.Next() {
		var from, to string
		var weight float64
		if err = edgeRows.Scan(&from, &to, &weight); err != nil {
			return nil, err
		}
		e, edgeErr := graph.NewEdge(from, to, weight)
		if edgeErr != nil {
			return nil, edgeErr
		}
		edges = append(edges, e)
	}
	if err = edgeRows.Err(); err != nil {
		return nil, err
	}

	return graph.NewGraphIndex(nodes, edges)
}

func (s *Store) loadRobots(ctx context.Context) ([]*robot.Robot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, status, node, route, route_cursor, assigned_order
		  FROM snapshot_robots
		 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var robots []*robot.Robot
	for rows.Next() {
		var name, status, node, routeJSON, assignedOrder string
		var routeCursor int
		if err = rows.Scan(&name, &status, &node, &routeJSON, &routeCursor, &assignedOrder); err != nil {
			return nil, err
		}

		var route []string
		if err = json.Unmarshal([]byte(routeJSON), &route); err != nil {
			return nil, err
		}

		r, restoreErr := robot.RestoreRobot(
			name, robot.Status(status), node, route, routeCursor, assignedOrder)
		if restoreErr != nil {
			return nil, restoreErr
		}
		robots = append(robots, r)
	}
	return robots, rows.Err()
}

func (s *Store) loadOrders(ctx context.Context) ([]*order.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, source, target, status, assigned_robot
		  FROM snapshot_orders
		 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		var name, source, target, status, assignedRobot string
		if err = rows.Scan(&name, &source, &target, &status, &assignedRobot); err != nil {
			return nil, err
		}

		o, restoreErr := order.RestoreOrder(
			name, source, target, order.Status(status), assignedRobot)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
