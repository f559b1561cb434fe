package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/chessboard/pkg/actionlog"
	"tableflip.dev/chessboard/pkg/unit"
)

// run executes one command line against a board stored under a temp dir.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	t.Setenv("CHESSBOARD_PATH", dir)
	t.Setenv("CHESSBOARD_CONFIRM", "false")
	t.Setenv("CHESSBOARD_CONFIG_PATH", dir)

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func units(t *testing.T, dir string) map[int]*unit.Unit {
	t.Helper()
	var us []*unit.Unit
	require.NoError(t, json.Unmarshal([]byte(run(t, dir, "show", "--json")), &us))
	byID := make(map[int]*unit.Unit, len(us))
	for _, u := range us {
		byID[u.ID] = u
	}
	return byID
}

func TestShowPrintsSeedBoard(t *testing.T) {
	dir := t.TempDir()
	out := run(t, dir, "show", "--show-id")
	require.Contains(t, out, "Chessboard")
	require.Contains(t, out, "#1")
	require.Len(t, units(t, dir), 6)
}

func TestSwapPersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "swap", "1", "2")

	us := units(t, dir)
	require.Equal(t, unit.Number(102), us[1].Number)
	require.Equal(t, unit.Number(101), us[2].Number)

	var entries []actionlog.Entry
	require.NoError(t, json.Unmarshal([]byte(run(t, dir, "log", "--kind=move", "--json")), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, "Swapped 101 and 102", entries[0].Message)
}

func TestDeleteByFloor(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "delete", "--floor=2")
	us := units(t, dir)
	require.Len(t, us, 4)
	require.Nil(t, us[3])
	require.Nil(t, us[4])
}

func TestEditAddAndRecount(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "edit", "--section=2", "--status=reserved")
	run(t, dir, "add", "--floor=4", "--section=1", "--area=40")
	run(t, dir, "recount", "--start=1")

	us := units(t, dir)
	require.Len(t, us, 7)
	require.Equal(t, unit.Reserved, us[2].Status)
	require.Equal(t, unit.Reserved, us[6].Status)
	require.Equal(t, unit.Free, us[1].Status)
	require.Equal(t, unit.Number(1), us[1].Number)
	require.Equal(t, unit.Number(7), us[7].Number)
	require.Equal(t, 4, us[7].Floor)
}

func TestCopyIntoEmptySlot(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "copy", "1", "f4s1")
	us := units(t, dir)
	require.Len(t, us, 7)
	require.Equal(t, unit.Number(401), us[7].Number)
	require.Equal(t, us[1].Area, us[7].Area)
}

func TestErrorsAsJSON(t *testing.T) {
	dir := t.TempDir()
	out := run(t, dir, "swap", "1", "99", "--json")
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Contains(t, got["error"], "not found")
}

func TestVersion(t *testing.T) {
	require.Contains(t, run(t, t.TempDir(), "version"), "dev")
}
