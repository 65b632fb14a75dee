package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())

	st := s.Create("INV2")
	st.Jobs["x"] = nil
	s.Create("INV1")
	assert.Equal(t, []string{"INV1", "INV2"}, s.IDs())

	got, ok := s.Get("INV2")
	require.True(t, ok)
	assert.Same(t, st, got)

	fresh := s.Create("INV2")
	assert.Empty(t, fresh.Jobs, "create replaces prior state")

	assert.True(t, s.Dispose("INV2"))
	assert.False(t, s.Dispose("INV2"))
	_, ok = s.Get("INV2")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestStoresAreIndependent(t *testing.T) {
	a := NewEngine(NewStore())
	b := NewEngine(NewStore())
	require.NoError(t, a.Initialize("INV1", e2eJobs(), ""))

	assert.Equal(t, LineCounts{Included: 2, Total: 2}, a.LineCounts("INV1", "J1"))
	assert.Equal(t, LineCounts{}, b.LineCounts("INV1", "J1"))
}
