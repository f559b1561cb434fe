// Package show prints the chessboard.
package show

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/printers"
	"tableflip.dev/chessboard/pkg/runner"
)

type Show struct {
	Session *app.Session
	ShowID  bool
	// Watch reprints the board on every stored change until ctx ends.
	Watch bool
	Out   io.Writer
	Err   io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	n.print()
	if !n.Watch {
		return nil
	}
	events, err := n.Session.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := runner.Soft(n.Err, n.Session.Reload(ctx)); err != nil {
				return err
			}
			// Clear the screen before redrawing.
			_, _ = fmt.Fprint(runner.Out(n.Out), "\033[H\033[2J")
			n.print()
		}
	}
}

func (n *Show) print() {
	pp := printers.PrettyPrint{
		Out:     n.Out,
		Display: n.Session.Display(),
		ShowID:  n.ShowID,
		Marks:   n.Session,
	}
	ix := n.Session.Grid()
	pp.TitleWithCount("Chessboard", len(n.Session.Units()))
	pp.Board(ix)
	pp.NewLine()
	runner.Summary(n.Out, "%s", n.Session.Hint())
}
