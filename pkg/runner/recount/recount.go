// Package recount renumbers the whole board.
package recount

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/runner"
)

type Recount struct {
	Session   *app.Session
	Start     int
	Yes       bool
	Confirmer runner.Confirmer
	Out       io.Writer
}

func (n *Recount) Do(ctx context.Context) error {
	label := fmt.Sprintf("Renumber %d units from %d", len(n.Session.Units()), n.Start)
	if err := runner.Confirm(n.Confirmer, n.Yes, label); err != nil {
		return err
	}
	count, err := n.Session.Recount(ctx, n.Start)
	runner.Summary(n.Out, "Renumbered %d units.", count)
	return err
}
