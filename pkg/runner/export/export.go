// Package export writes the board to an xlsx file.
package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/export"
	"tableflip.dev/chessboard/pkg/runner"
)

type Export struct {
	Session *app.Session
	Path    string
	Out     io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(n.Path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	err = export.Board(f, n.Session.Grid(), n.Session.Units(), n.Session.Display())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	runner.Summary(n.Out, "Wrote %d units to %s.", len(n.Session.Units()), n.Path)
	return nil
}
