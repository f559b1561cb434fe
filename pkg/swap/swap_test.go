package swap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/chessboard/pkg/actionlog"
	"tableflip.dev/chessboard/pkg/store"
	"tableflip.dev/chessboard/pkg/unit"
	"tableflip.dev/chessboard/pkg/unitstore"
)

func fixture(t *testing.T) (*Engine, *unitstore.Store, *actionlog.Log, store.Persistence) {
	t.Helper()
	p := store.NewMemory()
	units := unitstore.New(p, nil)
	units.Replace(unit.Seed())
	log := actionlog.New(p, nil)
	return New(units, log, p, nil), units, log, p
}

func number(t *testing.T, s *unitstore.Store, id int) unit.Number {
	t.Helper()
	u, ok := s.Get(id)
	require.True(t, ok)
	return u.Number
}

func TestSwapNumbersScenario(t *testing.T) {
	e, units, log, _ := fixture(t)

	res, err := e.Swap(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, unit.Number(102), number(t, units, 1))
	require.Equal(t, unit.Number(101), number(t, units, 2))

	// Positions are untouched.
	require.Equal(t, 1, res.Source.Section)
	require.Equal(t, 2, res.Target.Section)

	require.Equal(t, []int{1, 2}, e.Changed())
	entries := log.List(actionlog.KindMove)
	require.Len(t, entries, 1)
	require.Equal(t, "Swapped 101 and 102", entries[0].Message)
}

func TestSwapTwiceIsIdentity(t *testing.T) {
	e, units, _, _ := fixture(t)
	before := map[int]unit.Number{}
	for _, u := range units.Units() {
		before[u.ID] = u.Number
	}

	ctx := context.Background()
	for _, pair := range [][2]int{{1, 2}, {3, 6}, {5, 4}} {
		_, err := e.Swap(ctx, pair[0], pair[1])
		require.NoError(t, err)
		_, err = e.Swap(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}
	for _, u := range units.Units() {
		require.Equal(t, before[u.ID], u.Number, "unit %d", u.ID)
	}
}

func TestSwapErrorsAreNoOps(t *testing.T) {
	e, units, log, _ := fixture(t)
	ctx := context.Background()

	_, err := e.Swap(ctx, 1, 1)
	require.ErrorIs(t, err, ErrSameUnit)

	_, err = e.Swap(ctx, 1, 99)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = e.Swap(ctx, 99, 1)
	require.ErrorIs(t, err, ErrNotFound)

	require.Equal(t, unit.Number(101), number(t, units, 1))
	require.Empty(t, e.Changed())
	require.Zero(t, log.Len())
}

func TestConfirmGate(t *testing.T) {
	e, units, _, _ := fixture(t)
	ctx := context.Background()

	var asked []unit.Number
	answer := Decision{}
	e.SetConfirmer(ConfirmFunc(func(_ context.Context, _, tgt *unit.Unit) (Decision, error) {
		asked = append(asked, tgt.Number)
		return answer, nil
	}))

	_, err := e.Swap(ctx, 1, 2)
	require.ErrorIs(t, err, ErrDeclined)
	require.Equal(t, unit.Number(101), number(t, units, 1))

	answer = Decision{OK: true}
	_, err = e.Swap(ctx, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []unit.Number{102, 102}, asked)
}

func TestConfirmErrorAborts(t *testing.T) {
	e, units, _, _ := fixture(t)
	boom := errors.New("tty closed")
	e.SetConfirmer(ConfirmFunc(func(context.Context, *unit.Unit, *unit.Unit) (Decision, error) {
		return Decision{}, boom
	}))
	_, err := e.Swap(context.Background(), 3, 4)
	require.ErrorIs(t, err, boom)
	require.Equal(t, unit.Number(201), number(t, units, 3))
}

func TestDontAskAgainIsPersisted(t *testing.T) {
	e, units, log, p := fixture(t)
	ctx := context.Background()

	calls := 0
	e.SetConfirmer(ConfirmFunc(func(context.Context, *unit.Unit, *unit.Unit) (Decision, error) {
		calls++
		return Decision{OK: true, DontAskAgain: true}, nil
	}))

	_, err := e.Swap(ctx, 1, 2)
	require.NoError(t, err)
	_, err = e.Swap(ctx, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.True(t, e.Preferences().SkipSwapConfirm)

	fresh := New(units, log, p, nil)
	require.NoError(t, fresh.LoadPreferences(ctx))
	require.True(t, fresh.Preferences().SkipSwapConfirm)
}

func TestLoadPreferencesMissing(t *testing.T) {
	e, _, _, _ := fixture(t)
	require.NoError(t, e.LoadPreferences(context.Background()))
	require.False(t, e.Preferences().SkipSwapConfirm)
}

func TestChangedTracking(t *testing.T) {
	e, _, _, _ := fixture(t)
	e.MarkChanged(5, 3)
	require.True(t, e.IsChanged(3))
	e.Forget(3)
	require.Equal(t, []int{5}, e.Changed())
	e.ResetChanged()
	require.Empty(t, e.Changed())
}
