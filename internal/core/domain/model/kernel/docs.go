// Package kernel contains shared value objects used across the domain model.
//
// The package currently holds UUID, a validated wrapper around
// github.com/google/uuid. Robots and orders are keyed by their caller-supplied
// unique names; UUIDs identify simulation sessions — every graph load or reset
// starts a fresh session — and persisted snapshot rows.
package kernel
