// Package key provides CLI helpers to display the board legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/chessboard/pkg/printers"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/unit"
)

// Binding is one key of the interactive board.
type Binding struct {
	Key     string
	Meaning string
}

// Bindings lists the interactive board keys in help order.
func Bindings() []Binding {
	return []Binding{
		{"arrows", "move the cursor"},
		{"space", "click: toggle selection, pick or drop in move mode, place in copy mode"},
		{"enter", "show unit details"},
		{"f", "select the cursor's floor"},
		{"s", "select the cursor's section (riser in the sectioned layout)"},
		{"v", "start or finish a lasso"},
		{"g", "start or finish a drag"},
		{"d", "delete mode"},
		{"m", "move mode"},
		{"c", "copy mode"},
		{"e", "edit mode"},
		{"x", "select mode"},
		{"y", "confirm the active mode, or yes to a swap question"},
		{"a", "yes to a swap question, don't ask again"},
		{"n", "no to a swap question"},
		{"esc", "cancel mode and selection"},
		{"1 2 3", "show number, area or rooms"},
		{"r", "recount numbers from 101"},
		{"w", "save changes"},
		{"l", "toggle the action log"},
		{"k", "toggle this key"},
		{"q", "quit"},
	}
}

// Key prints the status legend and the interactive board keys.
type Key struct {
	Out io.Writer
}

func (k *Key) Do(ctx context.Context) error {
	out := runner.Out(k.Out)
	_, _ = fmt.Fprintln(out, "")

	pp := printers.PrettyPrint{Out: out}
	pp.Legend(unit.DefaultStatuses())
	_, _ = fmt.Fprintln(out, "")

	k.Key(ctx, out, Bindings())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders the key bindings table.
func (k *Key) Key(_ context.Context, out io.Writer, bindings []Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
	for _, b := range bindings {
		tbl.AddRow(b.Key, b.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
