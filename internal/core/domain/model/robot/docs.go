// Package robot contains the Robot aggregate: an automated guided vehicle
// identified by a unique name, positioned on a graph node, and either IDLE or
// EXECUTING a route toward an assigned order's target.
//
// The aggregate enforces the core state-machine invariant: a robot is
// EXECUTING if and only if it carries a non-empty route and an assigned
// order; IDLE robots carry neither. Transitions happen exclusively through
// AssignRoute (IDLE to EXECUTING, driven by the scheduler) and
// CompleteAssignment (EXECUTING to IDLE, driven by the tick engine on
// arrival).
package robot
