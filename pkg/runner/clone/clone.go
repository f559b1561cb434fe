// Package clone runs the copy command.
package clone

import (
	"context"
	"io"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/grid"
	"tableflip.dev/chessboard/pkg/printers"
	"tableflip.dev/chessboard/pkg/runner"
)

// Clone duplicates unit ID into the empty slot Ref, like "f4s2" or "s1f4t2".
type Clone struct {
	Session *app.Session
	ID      int
	Ref     string
	Out     io.Writer
}

func (n *Clone) Do(ctx context.Context) error {
	c, err := grid.ParseCoord(n.Ref)
	if err != nil {
		return err
	}
	u, err := n.Session.Copy(ctx, n.ID, c)
	if u == nil {
		return err
	}
	runner.Summary(n.Out, "Copied unit %d to %s.", n.ID, c)
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Unit(u)
	return err
}
