// Package graph keeps the per-run dependency adjacency map and answers
// whether the accumulated edges still admit a topological ordering.
package graph

import "sort"

// Graph is an adjacency map from a node to the nodes it references. It is
// not safe for concurrent use; each validator owns exactly one instance.
type Graph struct {
	edges map[string][]string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{edges: make(map[string][]string)}
}

// Set records the full reference list for node, replacing any previous
// entry. Referenced nodes need not have entries of their own.
func (g *Graph) Set(node string, refs []string) {
	out := make([]string, len(refs))
	copy(out, refs)
	g.edges[node] = out
}

// Refs returns the recorded references of node, nil when absent.
func (g *Graph) Refs(node string) []string {
	return g.edges[node]
}

// Len returns the number of nodes with recorded reference lists.
func (g *Graph) Len() int { return len(g.edges) }

// Cycle runs a Kahn feasibility probe over the whole graph and, when no
// topological ordering exists, returns one offending cycle as a node path
// whose first and last elements coincide. It returns nil for acyclic
// graphs. Node order is deterministic: ties are broken lexicographically.
func (g *Graph) Cycle() []string {
	indeg := make(map[string]int)
	for node, refs := range g.edges {
		if _, ok := indeg[node]; !ok {
			indeg[node] = 0
		}
		for _, r := range refs {
			indeg[r]++
		}
	}

	queue := make([]string, 0, len(indeg))
	for node, d := range indeg {
		if d == 0 {
			queue = append(queue, node)
		}
	}
	sort.Strings(queue)

	remaining := len(indeg)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		remaining--
		next := make([]string, 0)
		for _, r := range g.edges[node] {
			indeg[r]--
			if indeg[r] == 0 {
				next = append(next, r)
			}
		}
		sort.Strings(next)
		queue = append(queue, next...)
	}
	if remaining == 0 {
		return nil
	}
	return g.extractCycle(indeg)
}

// extractCycle finds one concrete cycle among the nodes Kahn could not
// remove, using DFS coloring restricted to that subgraph.
func (g *Graph) extractCycle(indeg map[string]int) []string {
	stuck := make(map[string]bool, len(indeg))
	nodes := make([]string, 0, len(indeg))
	for node, d := range indeg {
		if d > 0 {
			stuck[node] = true
			nodes = append(nodes, node)
		}
	}
	sort.Strings(nodes)

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(nodes))
	var path []string
	var cycle []string

	var visit func(n string) bool
	visit = func(n string) bool {
		color[n] = gray
		path = append(path, n)
		for _, r := range g.edges[n] {
			if !stuck[r] {
				continue
			}
			switch color[r] {
			case gray:
				for i, p := range path {
					if p == r {
						cycle = append([]string{}, path[i:]...)
						cycle = append(cycle, r)
						return true
					}
				}
			case white:
				if visit(r) {
					return true
				}
			}
		}
		color[n] = black
		path = path[:len(path)-1]
		return false
	}

	for _, n := range nodes {
		if color[n] == white && visit(n) {
			return cycle
		}
	}
	return nil
}
