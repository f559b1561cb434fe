// Package swap runs the swap command.
package swap

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/printers"
	"tableflip.dev/chessboard/pkg/runner"
	engine "tableflip.dev/chessboard/pkg/swap"
)

// Swap exchanges the numbers of units A and B.
type Swap struct {
	Session *app.Session
	A, B    int
	Out     io.Writer
}

func (n *Swap) Do(ctx context.Context) error {
	res, err := n.Session.Swap(ctx, n.A, n.B)
	if errors.Is(err, engine.ErrDeclined) {
		runner.Summary(n.Out, "Swap cancelled.")
		return nil
	}
	if res.Source == nil {
		return err
	}
	runner.Summary(n.Out, "%s", res.Entry.Message)
	pp := printers.PrettyPrint{Out: n.Out, Display: n.Session.Display(), Marks: n.Session}
	pp.Board(n.Session.Grid())
	return err
}
