package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/chessboard/pkg/unit"
	"tableflip.dev/chessboard/pkg/unitstore"
)

func seeded() *unitstore.Store {
	s := unitstore.New(nil, nil)
	s.Replace(unit.Seed())
	return s
}

func TestToggleTwiceRestores(t *testing.T) {
	sel := New(seeded())
	sel.Add(3, 5)
	before := sel.IDs()

	for _, id := range []int{1, 3, 6} {
		sel.Toggle(id)
		sel.Toggle(id)
		require.Equal(t, before, sel.IDs(), "toggle(%d) twice", id)
	}
}

func TestToggleIgnoresUnknownIDs(t *testing.T) {
	sel := New(seeded())
	sel.Toggle(42)
	require.Zero(t, sel.Len())
}

func TestSelectByFloorScenario(t *testing.T) {
	s := unitstore.New(nil, nil)
	s.Replace([]*unit.Unit{
		{ID: 1, Floor: 1, Section: 1, Number: 101},
		{ID: 2, Floor: 1, Section: 2, Number: 102},
	})
	sel := New(s)
	require.Equal(t, 2, sel.SelectByFloor(1))
	require.Equal(t, []int{1, 2}, sel.IDs())
}

func TestHeaderSelectionIsAdditive(t *testing.T) {
	sel := New(seeded())
	sel.Add(6)
	sel.SelectBySection(1)
	require.Equal(t, []int{1, 3, 5, 6}, sel.IDs())
	require.Zero(t, sel.SelectBySection(1), "reselecting adds nothing")
}

func TestSelectByStoak(t *testing.T) {
	s := unitstore.New(nil, nil)
	s.Replace(unit.Generate(2, 3, 2))
	sel := New(s)
	require.Equal(t, 3, sel.SelectByStoak(2, 1))
	for _, id := range sel.IDs() {
		u, _ := s.Get(id)
		require.Equal(t, 2, u.Section)
		require.Equal(t, 1, u.Stoak)
	}
}

func TestPurgeAfterDelete(t *testing.T) {
	store := seeded()
	sel := New(store)
	sel.Add(1, 2, 4)

	removed := store.Remove(sel.IDs()...)
	sel.Purge(removed...)

	existing := map[int]bool{}
	for _, id := range store.IDs() {
		existing[id] = true
	}
	for _, id := range sel.IDs() {
		require.True(t, existing[id], "stale id %d", id)
	}
	require.Zero(t, sel.Len())
}

func TestPrune(t *testing.T) {
	store := seeded()
	sel := New(store)
	sel.Add(1, 2)
	store.Remove(2)
	require.Equal(t, 1, sel.Prune())
	require.Equal(t, []int{1}, sel.IDs())
}

func TestClear(t *testing.T) {
	sel := New(seeded())
	sel.SelectByFloor(2)
	sel.Clear()
	require.Zero(t, sel.Len())
	require.False(t, sel.Has(3))
}
