// Package remove runs the bulk delete command.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/mode"
	"tableflip.dev/chessboard/pkg/runner"
)

type Remove struct {
	Session   *app.Session
	Selector  app.Selector
	Yes       bool
	Confirmer runner.Confirmer
	Out       io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Selector.Empty() {
		return errors.New("nothing selected, use --id, --floor, --section or --stoak")
	}
	if _, err := n.Session.Select(n.Selector); err != nil {
		n.Session.Cancel()
		return err
	}
	count := len(n.Session.Selection())
	if count == 0 {
		n.Session.Cancel()
		runner.Summary(n.Out, "No matching units.")
		return nil
	}
	if err := runner.Confirm(n.Confirmer, n.Yes, fmt.Sprintf("Delete %d units", count)); err != nil {
		n.Session.Cancel()
		return err
	}
	// The mode is recorded only once the change is going ahead.
	if err := n.Session.Activate(ctx, mode.Delete); runner.Soft(nil, err) != nil {
		return err
	}
	deleted, err := n.Session.ConfirmDelete(ctx)
	runner.Summary(n.Out, "Deleted %d units.", deleted)
	return err
}
