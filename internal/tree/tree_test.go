package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNodes() []Node {
	return []Node{
		{ID: "vehicles"},
		{ID: "vans", ParentID: "vehicles", Order: 1},
		{ID: "cars", ParentID: "vehicles", Order: 0},
		{ID: "plant"},
		{ID: "lorries", ParentID: "vehicles", Order: 1},
	}
}

func parentFunc(nodes []Node) func(string) (string, bool) {
	m := make(map[string]string, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n.ParentID
	}
	return func(id string) (string, bool) {
		p, ok := m[id]
		return p, ok
	}
}

func TestBuildIndex_OrdersChildren(t *testing.T) {
	ix := BuildIndex(sampleNodes())

	assert.Equal(t, []string{"vehicles", "plant"}, ix.Roots())
	if diff := cmp.Diff([]string{"cars", "vans", "lorries"}, ix.Children("vehicles")); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, ix.IsLeaf("plant"))
	assert.False(t, ix.IsLeaf("vehicles"))
	assert.True(t, ix.Has("vans"))
	assert.False(t, ix.Has("boats"))
}

func TestBuildIndex_ChildrenIsCopy(t *testing.T) {
	ix := BuildIndex(sampleNodes())
	kids := ix.Children("vehicles")
	kids[0] = "mutated"
	assert.Equal(t, "cars", ix.Children("vehicles")[0])
}

func TestBuildIndex_SkipsOrphans(t *testing.T) {
	ix := BuildIndex([]Node{{ID: "a"}, {ID: "b", ParentID: "ghost"}})
	assert.Equal(t, []string{"a"}, ix.Roots())
	assert.Empty(t, ix.Children("ghost"))
}

func TestAncestors_NearestFirst(t *testing.T) {
	nodes := []Node{{ID: "g"}, {ID: "p", ParentID: "g"}, {ID: "c", ParentID: "p"}}
	chain, err := Ancestors("c", parentFunc(nodes))
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "g"}, chain)

	chain, err = Ancestors("g", parentFunc(nodes))
	require.NoError(t, err)
	assert.Empty(t, chain)
}

func TestAncestors_DetectsCycle(t *testing.T) {
	nodes := []Node{{ID: "a", ParentID: "c"}, {ID: "b", ParentID: "a"}, {ID: "c", ParentID: "b"}}
	_, err := Ancestors("a", parentFunc(nodes))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCycle))
}

func TestAncestors_DetectsSelfLoop(t *testing.T) {
	nodes := []Node{{ID: "a", ParentID: "a"}}
	_, err := Ancestors("a", parentFunc(nodes))
	assert.True(t, errors.Is(err, ErrCycle))
}

func TestAncestors_DetectsOrphan(t *testing.T) {
	nodes := []Node{{ID: "a", ParentID: "ghost"}}
	_, err := Ancestors("a", parentFunc(nodes))
	assert.True(t, errors.Is(err, ErrOrphan))

	_, err = Ancestors("unknown", parentFunc(nodes))
	assert.True(t, errors.Is(err, ErrOrphan))
}

func TestWalk_PreOrderWithDepth(t *testing.T) {
	ix := BuildIndex(sampleNodes())
	type visit struct {
		ID     string
		Depth  int
		IsLast bool
	}
	var got []visit
	Walk(ix, func(id string, depth int, isLast bool) bool {
		got = append(got, visit{id, depth, isLast})
		return true
	})
	want := []visit{
		{"vehicles", 0, false},
		{"cars", 1, false},
		{"vans", 1, false},
		{"lorries", 1, true},
		{"plant", 0, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_SkipSubtree(t *testing.T) {
	ix := BuildIndex(sampleNodes())
	var got []string
	Walk(ix, func(id string, depth int, isLast bool) bool {
		got = append(got, id)
		return id != "vehicles"
	})
	assert.Equal(t, []string{"vehicles", "plant"}, got)
}

func TestSubtree(t *testing.T) {
	nodes := append(sampleNodes(), Node{ID: "electric", ParentID: "cars"})
	ix := BuildIndex(nodes)
	assert.Equal(t, []string{"vehicles", "cars", "electric", "vans", "lorries"}, Subtree(ix, "vehicles"))
	assert.Equal(t, []string{"plant"}, Subtree(ix, "plant"))
}
