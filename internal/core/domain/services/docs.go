// Package services contains domain services that coordinate multiple
// aggregates.
//
// Dispatcher implements nearest-idle scheduling: given a NEW order, the set
// of robots and the loaded graph, it selects the idle robot with minimum
// shortest-path distance to the order's source and links the two atomically.
// Both of its non-error outcomes that assign nothing — an unreachable robot
// and an empty candidate set — are ordinary scheduling results, not faults.
package services
