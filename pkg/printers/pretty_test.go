package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/chessboard/pkg/actionlog"
	"tableflip.dev/chessboard/pkg/grid"
	"tableflip.dev/chessboard/pkg/unit"
)

func init() {
	color.NoColor = true
}

func TestCellText(t *testing.T) {
	u := &unit.Unit{ID: 2, Number: 102, Area: 68, RoomCount: 3, Status: unit.Sold}
	pp := &PrettyPrint{Display: unit.ShowNumber}
	if got := pp.CellText(u); got != "● 102" {
		t.Fatalf("unexpected cell %q", got)
	}
	pp.Display = unit.ShowRooms
	pp.ShowID = true
	if got := pp.CellText(u); got != "● 3k #2" {
		t.Fatalf("unexpected cell %q", got)
	}
	if got := pp.CellText(nil); got != emptySlot {
		t.Fatalf("unexpected empty cell %q", got)
	}
}

func TestBoardFlat(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Display: unit.ShowNumber}
	pp.Board(grid.New(unit.Seed(), grid.Options{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 floors, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "S1") || !strings.Contains(lines[0], "S2") {
		t.Fatalf("missing section headers: %q", lines[0])
	}
	if !strings.Contains(lines[1], "F1") || !strings.Contains(lines[1], "○ 101") || !strings.Contains(lines[1], "● 102") {
		t.Fatalf("unexpected first floor: %q", lines[1])
	}
}

func TestBoardFreeOnlyHidesSold(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Board(grid.New(unit.Seed(), grid.Options{FreeOnly: true}))
	if strings.Contains(buf.String(), "102") {
		t.Fatalf("sold unit rendered:\n%s", buf.String())
	}
}

func TestBoardSectioned(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Board(grid.New(unit.Generate(2, 3, 2), grid.Options{Layout: grid.Sectioned}))
	out := buf.String()
	for _, want := range []string{"Section 1", "Section 2", "T1", "T2", "F3", "331"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "F3") > strings.Index(out, "F1") {
		t.Fatalf("expected top floor first:\n%s", out)
	}
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Log()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none, got %q", buf.String())
	}

	buf.Reset()
	pp.Log(actionlog.Entry{Timestamp: time.Now(), Kind: actionlog.KindMove, Message: "Swapped 101 and 102"})
	if !strings.Contains(buf.String(), "Swapped 101 and 102") || !strings.Contains(buf.String(), "move") {
		t.Fatalf("unexpected log output:\n%s", buf.String())
	}
}
