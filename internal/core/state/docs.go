// Package state models the process-wide simulation state as one explicit
// aggregate instead of ambient globals.
//
// An Aggregate holds the immutable GraphIndex plus the validated robot and
// order registries, guarded by a single mutation lock: all state-mutating
// operations (graph load, entity creation, scheduling, tick, replace) run
// under exclusive access, while reads are snapshot projections that never
// observe a mutation mid-flight. Each graph load or replace starts a fresh
// simulation session identified by a UUID.
//
// Snapshot is the persistence unit handed across the StateStore boundary:
// a deep-cloned, self-validating copy of graph, robots and orders.
package state
