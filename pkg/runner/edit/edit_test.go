package edit

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/store"
	"tableflip.dev/chessboard/pkg/unit"
)

type answer bool

func (a answer) Confirm(string) (bool, error) { return bool(a), nil }

func session(t *testing.T) *app.Session {
	t.Helper()
	s := app.New(app.Options{Persistence: store.NewMemory()})
	require.NoError(t, s.Load(context.Background()))
	return s
}

func reserved() app.Patch {
	st := unit.Reserved
	return app.Patch{Status: &st}
}

func TestEditSection(t *testing.T) {
	s := session(t)
	var out bytes.Buffer
	e := Edit{Session: s, Selector: app.Selector{Sections: []int{2}}, Patch: reserved(), Confirmer: answer(true), Out: &out}
	require.NoError(t, e.Do(context.Background()))
	require.Equal(t, "Edited 3 units.\n", out.String())
	for _, id := range []int{2, 4, 6} {
		u, err := s.Unit(id)
		require.NoError(t, err)
		require.Equal(t, unit.Reserved, u.Status)
	}
	require.Empty(t, s.Selection())
}

func TestEditDeclinedLogsNothing(t *testing.T) {
	s := session(t)
	e := Edit{Session: s, Selector: app.Selector{IDs: []int{1}}, Patch: reserved(), Confirmer: answer(false), Out: &bytes.Buffer{}}
	require.ErrorIs(t, e.Do(context.Background()), runner.ErrAborted)
	u, err := s.Unit(1)
	require.NoError(t, err)
	require.Equal(t, unit.Free, u.Status)
	require.Empty(t, s.Selection())
	require.Empty(t, s.Logs(""))
}

func TestEditNeedsPatch(t *testing.T) {
	s := session(t)
	e := Edit{Session: s, Selector: app.Selector{IDs: []int{1}}, Out: &bytes.Buffer{}}
	require.Error(t, e.Do(context.Background()))
	require.Empty(t, s.Selection())
}
