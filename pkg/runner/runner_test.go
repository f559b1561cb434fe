package runner

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"tableflip.dev/chessboard/pkg/unitstore"
)

func init() {
	color.NoColor = true
}

type answer bool

func (a answer) Confirm(string) (bool, error) { return bool(a), nil }

func TestConfirm(t *testing.T) {
	require.NoError(t, Confirm(nil, false, "delete?"))
	require.NoError(t, Confirm(answer(false), true, "delete?"))
	require.NoError(t, Confirm(answer(true), false, "delete?"))
	require.ErrorIs(t, Confirm(answer(false), false, "delete?"), ErrAborted)
}

func TestSoft(t *testing.T) {
	var buf bytes.Buffer
	err := fmt.Errorf("%w: disk full", unitstore.ErrStorageUnavailable)
	require.NoError(t, Soft(&buf, err))
	require.Contains(t, buf.String(), "warning: unitstore: storage unavailable: disk full")

	other := errors.New("boom")
	require.ErrorIs(t, Soft(&buf, other), other)
	require.NoError(t, Soft(&buf, nil))
}
