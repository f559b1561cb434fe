// Package edit runs the bulk edit command.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/mode"
	"tableflip.dev/chessboard/pkg/runner"
)

// Form collects a patch interactively for count units.
type Form interface {
	EditForm(count int) (app.Patch, error)
}

type Edit struct {
	Session   *app.Session
	Selector  app.Selector
	Patch     app.Patch
	Form      Form
	Yes       bool
	Confirmer runner.Confirmer
	Out       io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
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

	patch := n.Patch
	if n.Form != nil {
		var err error
		if patch, err = n.Form.EditForm(count); err != nil {
			n.Session.Cancel()
			return err
		}
	}
	if patch.Empty() {
		n.Session.Cancel()
		return errors.New("nothing to change, use --status, --area, --number, --rooms or -i")
	}
	if err := runner.Confirm(n.Confirmer, n.Yes, fmt.Sprintf("%d units will be changed", count)); err != nil {
		n.Session.Cancel()
		return err
	}
	// The mode is recorded only once the change is going ahead.
	if err := n.Session.Activate(ctx, mode.Edit); runner.Soft(nil, err) != nil {
		return err
	}
	edited, err := n.Session.ConfirmEdit(ctx, patch)
	runner.Summary(n.Out, "Edited %d units.", edited)
	return err
}
