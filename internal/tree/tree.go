// Package tree holds the parent-pointer helpers shared by the category model
// and the CLI tree view. Nodes store only their parent; children are derived.
package tree

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrCycle is returned when a parent chain revisits a node.
	ErrCycle = errors.New("parent chain contains a cycle")

	// ErrOrphan is returned when a parent pointer references an unknown node.
	ErrOrphan = errors.New("parent pointer references an unknown node")
)

// Node is the minimal view of a tree member. An empty ParentID marks a root.
type Node struct {
	ID       string
	ParentID string
	Order    int
}

// Index maps parent IDs to their ordered children. It is rebuilt from the
// parent pointers whenever the structure changes.
type Index struct {
	parent   map[string]string
	children map[string][]string
	roots    []string
}

// BuildIndex derives the child lists from nodes. Siblings are ordered by
// Order, ties broken by input position. Nodes whose parent is unknown are
// neither roots nor anyone's children.
func BuildIndex(nodes []Node) *Index {
	ix := &Index{
		parent:   make(map[string]string, len(nodes)),
		children: make(map[string][]string),
	}
	pos := make(map[string]int, len(nodes))
	order := make(map[string]int, len(nodes))
	for i, n := range nodes {
		ix.parent[n.ID] = n.ParentID
		pos[n.ID] = i
		order[n.ID] = n.Order
	}
	for _, n := range nodes {
		if n.ParentID == "" {
			ix.roots = append(ix.roots, n.ID)
			continue
		}
		if _, ok := ix.parent[n.ParentID]; !ok {
			continue
		}
		ix.children[n.ParentID] = append(ix.children[n.ParentID], n.ID)
	}

	less := func(ids []string) func(i, j int) bool {
		return func(i, j int) bool {
			if order[ids[i]] != order[ids[j]] {
				return order[ids[i]] < order[ids[j]]
			}
			return pos[ids[i]] < pos[ids[j]]
		}
	}
	sort.SliceStable(ix.roots, less(ix.roots))
	for id, kids := range ix.children {
		sort.SliceStable(kids, less(kids))
		ix.children[id] = kids
	}
	return ix
}

// Has reports whether id is indexed.
func (ix *Index) Has(id string) bool {
	_, ok := ix.parent[id]
	return ok
}

// Parent returns the parent ID of id ("" for roots) and whether id is known.
func (ix *Index) Parent(id string) (string, bool) {
	p, ok := ix.parent[id]
	return p, ok
}

// Children returns a copy of the ordered child IDs of id.
func (ix *Index) Children(id string) []string {
	return append([]string(nil), ix.children[id]...)
}

// Roots returns a copy of the ordered root IDs.
func (ix *Index) Roots() []string {
	return append([]string(nil), ix.roots...)
}

// IsLeaf reports whether id has no children.
func (ix *Index) IsLeaf(id string) bool {
	return len(ix.children[id]) == 0
}

// Ancestors walks parent pointers from start and returns the chain nearest
// first, excluding start. parentOf reports a node's parent ("" for roots)
// and whether the node exists. A revisited node yields ErrCycle; a dangling
// pointer yields ErrOrphan.
func Ancestors(start string, parentOf func(id string) (string, bool)) ([]string, error) {
	visited := map[string]bool{start: true}
	var chain []string
	cur := start
	for {
		p, ok := parentOf(cur)
		if !ok {
			return chain, fmt.Errorf("%w: %s", ErrOrphan, cur)
		}
		if p == "" {
			return chain, nil
		}
		if visited[p] {
			return chain, fmt.Errorf("%w: %s -> %s", ErrCycle, cur, p)
		}
		if _, known := parentOf(p); !known {
			return chain, fmt.Errorf("%w: %s -> %s", ErrOrphan, cur, p)
		}
		visited[p] = true
		chain = append(chain, p)
		cur = p
	}
}

// Visit is called for each node in Walk. Returning false skips the subtree.
type Visit func(id string, depth int, isLast bool) bool

// Walk visits every node reachable from the roots depth-first, pre-order.
func Walk(ix *Index, visit Visit) {
	seen := make(map[string]bool)
	var rec func(ids []string, depth int)
	rec = func(ids []string, depth int) {
		for i, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			if visit(id, depth, i == len(ids)-1) {
				rec(ix.children[id], depth+1)
			}
		}
	}
	rec(ix.roots, 0)
}

// Subtree returns id followed by all of its descendants, pre-order.
func Subtree(ix *Index, id string) []string {
	seen := make(map[string]bool)
	var out []string
	var rec func(n string)
	rec = func(n string) {
		if seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
		for _, c := range ix.children[n] {
			rec(c)
		}
	}
	rec(id)
	return out
}
