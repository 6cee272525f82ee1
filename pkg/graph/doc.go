// Package graph implements the weighted inequality graphs used to refine the
// rows and columns of a tiling.
//
// # Overview
//
// A [Graph] has one vertex per group of labels (initially one label each)
// and an adjacency matrix of non-negative edge weights: an edge u -> v with
// weight w records w independent reasons for u to come before v. Merging two
// vertices sums their weights, rows and columns, then drops every edge at
// the merged vertex whose weight is below the product of its endpoint
// weights, since such an edge no longer holds for every pair of labels.
//
// # Reduction
//
// [Graph.Reduce] merges pairs of vertices with no edge between them until
// every pair is related. A reduced graph either has a cycle of length two
// or three or is acyclic, in which case [Graph.VertexOrder] reads off the
// order of its vertices. Querying a graph before reducing it returns an
// INTERNAL_ERROR.
//
// # Search
//
// [AllOrders] explores the ways of breaking cycles with a priority queue,
// most vertices first, yielding each vertex order it reaches:
//
//	for order := range graph.AllOrders(g, true) {
//	    fmt.Println(order)
//	}
//
// Ties are broken by the label sets and then by insertion order, so the
// sequence is reproducible.
//
// # Rendering
//
// [ToDOT] writes a graph as Graphviz DOT source and [RenderSVG] renders it
// in-process with [github.com/goccy/go-graphviz].
package graph
