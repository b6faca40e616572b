// Package order contains the Order aggregate: a pickup/delivery request
// identified by a unique name, moving a load from a source node to a target
// node.
//
// Orders are created NEW by the caller, become IN_PROGRESS only through a
// successful scheduling decision, and DONE only when the assigned robot's
// tick-driven movement reaches the target. FAILED exists as an explicit
// cancellation outcome and is not produced by the scheduling or tick paths.
package order
