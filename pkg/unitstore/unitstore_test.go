package unitstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/chessboard/pkg/store"
	"tableflip.dev/chessboard/pkg/unit"
)

type brokenPersistence struct {
	store.Persistence
}

func (brokenPersistence) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (brokenPersistence) Save(context.Context, string, []byte) error {
	return errors.New("disk on fire")
}

func TestLoadFallsBackToSeed(t *testing.T) {
	s := New(store.NewMemory(), nil)
	require.NoError(t, s.Load(context.Background()))
	require.Equal(t, 6, s.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, s.IDs())
}

func TestSaveAndReload(t *testing.T) {
	ctx := context.Background()
	p := store.NewMemory()
	s := New(p, nil)
	require.NoError(t, s.Load(ctx))
	s.Remove(2)
	u, ok := s.Get(1)
	require.True(t, ok)
	u.Number = 999
	require.NoError(t, s.Save(ctx))

	again := New(p, nil)
	require.NoError(t, again.Load(ctx))
	require.Equal(t, []int{1, 3, 4, 5, 6}, again.IDs())
	u, _ = again.Get(1)
	require.Equal(t, unit.Number(999), u.Number)
}

func TestStorageUnavailable(t *testing.T) {
	ctx := context.Background()
	s := New(brokenPersistence{}, nil)
	err := s.Load(ctx)
	require.ErrorIs(t, err, ErrStorageUnavailable)
	require.Equal(t, 6, s.Len(), "session continues in memory")
	require.ErrorIs(t, s.Save(ctx), ErrStorageUnavailable)
}

func TestCorruptDataFallsBack(t *testing.T) {
	ctx := context.Background()
	p := store.NewMemory()
	require.NoError(t, p.Save(ctx, store.KeyUnits, []byte(`{not json`)))
	s := New(p, nil)
	require.ErrorIs(t, s.Load(ctx), ErrStorageUnavailable)
	require.Equal(t, 6, s.Len())
}

func TestAddRemove(t *testing.T) {
	s := New(nil, nil)
	s.Replace(unit.Seed())
	u := s.Add(&unit.Unit{Floor: 4, Section: 1, Number: 401})
	require.Equal(t, 7, u.ID)

	removed := s.Remove(1, 7, 42)
	require.ElementsMatch(t, []int{1, 7}, removed)
	_, ok := s.Get(1)
	require.False(t, ok)
	require.Equal(t, []int{2, 3, 4, 5, 6}, s.IDs())
}

func TestRecountFollowsIterationOrder(t *testing.T) {
	s := New(nil, nil)
	s.Replace(unit.Seed())
	require.Equal(t, 6, s.Recount(101))
	for i, u := range s.Units() {
		require.Equal(t, unit.Number(101+i), u.Number)
	}
}

func TestReplaceDropsDuplicates(t *testing.T) {
	s := New(nil, nil)
	s.Replace([]*unit.Unit{{ID: 1}, nil, {ID: 1, Number: 5}, {ID: 2}})
	require.Equal(t, []int{1, 2}, s.IDs())
	u, _ := s.Get(1)
	require.Equal(t, unit.Number(0), u.Number)
}

func TestReloadKeepsBoardOnBadData(t *testing.T) {
	ctx := context.Background()
	p := store.NewMemory()
	s := New(p, nil)
	s.Replace([]*unit.Unit{{ID: 7, Floor: 9, Section: 1, Number: 901}, {ID: 8, Floor: 9, Section: 2, Number: 902}})
	require.NoError(t, s.Save(ctx))

	require.NoError(t, p.Save(ctx, store.KeyUnits, []byte(`[{"id":7,"flo`)))
	require.ErrorIs(t, s.Reload(ctx), ErrStorageUnavailable)
	require.Equal(t, []int{7, 8}, s.IDs(), "no seed fallback on reload")

	require.NoError(t, p.Delete(ctx, store.KeyUnits))
	require.NoError(t, s.Reload(ctx))
	require.Equal(t, []int{7, 8}, s.IDs())

	require.NoError(t, p.Save(ctx, store.KeyUnits, []byte(`[{"id":7,"floor":9,"section":1,"number":905}]`)))
	require.NoError(t, s.Reload(ctx))
	require.Equal(t, []int{7}, s.IDs())
	u, _ := s.Get(7)
	require.Equal(t, unit.Number(905), u.Number)

	broken := New(brokenPersistence{}, nil)
	broken.Replace([]*unit.Unit{{ID: 3}})
	require.ErrorIs(t, broken.Reload(ctx), ErrStorageUnavailable)
	require.Equal(t, []int{3}, broken.IDs())
}
