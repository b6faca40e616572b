// Package graph implements the weighted undirected graph the AGV fleet moves
// on, together with deterministic Dijkstra shortest-path search.
//
// A GraphIndex is built once from a node list and an edge list, is immutable
// afterwards, and may therefore be queried concurrently without
// synchronization. Construction validates every edge against the declared
// nodes and rejects non-positive or non-finite weights, so downstream code
// never has to re-check the graph.
//
// ShortestPath breaks distance ties by node id, which makes routes — and with
// them scheduling decisions — reproducible across runs.
package graph
