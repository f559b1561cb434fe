package log

import (
	"context"
	"io"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/printers"
	"tableflip.dev/chessboard/pkg/runner"
)

// Log prints the action log, newest first, or clears it.
type Log struct {
	Session   *app.Session
	Kind      string
	Clear     bool
	Yes       bool
	Confirmer runner.Confirmer
	Out       io.Writer
}

func (n *Log) Do(ctx context.Context) error {
	if n.Clear {
		if err := runner.Confirm(n.Confirmer, n.Yes, "Clear the action log"); err != nil {
			return err
		}
		if err := n.Session.ClearLogs(ctx); err != nil {
			return err
		}
		runner.Summary(n.Out, "Action log cleared.")
		return nil
	}

	entries := n.Session.Logs(n.Kind)
	pp := printers.PrettyPrint{Out: n.Out}
	title := "Action log"
	if n.Kind != "" {
		title += " (" + n.Kind + ")"
	}
	pp.Title(title)
	pp.Log(entries...)
	return nil
}
