package remove

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/chessboard/pkg/actionlog"
	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/mode"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/store"
)

type answer bool

func (a answer) Confirm(string) (bool, error) { return bool(a), nil }

func session(t *testing.T) *app.Session {
	t.Helper()
	s := app.New(app.Options{Persistence: store.NewMemory()})
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestRemoveByFloor(t *testing.T) {
	s := session(t)
	var out bytes.Buffer
	r := Remove{Session: s, Selector: app.Selector{Floors: []int{1}}, Confirmer: answer(true), Out: &out}
	require.NoError(t, r.Do(context.Background()))
	require.Len(t, s.Units(), 4)
	require.Equal(t, "Deleted 2 units.\n", out.String())
	require.Equal(t, mode.None, s.Mode())
	require.Len(t, s.Logs(actionlog.KindMode), 1)
}

func TestRemoveDeclined(t *testing.T) {
	s := session(t)
	r := Remove{Session: s, Selector: app.Selector{IDs: []int{1}}, Confirmer: answer(false), Out: &bytes.Buffer{}}
	require.ErrorIs(t, r.Do(context.Background()), runner.ErrAborted)
	require.Len(t, s.Units(), 6)
	require.Empty(t, s.Selection())
	require.Empty(t, s.Logs(""), "nothing is logged for a declined delete")
}

func TestRemoveNeedsSelector(t *testing.T) {
	r := Remove{Session: session(t)}
	require.Error(t, r.Do(context.Background()))
}
