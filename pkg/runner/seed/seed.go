// Package seed replaces the board with a generated sample.
package seed

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/runner"
)

type Seed struct {
	Session   *app.Session
	Sections  int
	Floors    int
	Stoaks    int
	Yes       bool
	Confirmer runner.Confirmer
	Out       io.Writer
}

func (n *Seed) Do(ctx context.Context) error {
	label := fmt.Sprintf("Replace all %d units", len(n.Session.Units()))
	if err := runner.Confirm(n.Confirmer, n.Yes, label); err != nil {
		return err
	}
	count, err := n.Session.Seed(ctx, n.Sections, n.Floors, n.Stoaks)
	if count == 0 {
		return err
	}
	runner.Summary(n.Out, "Seeded %d units.", count)
	return err
}
