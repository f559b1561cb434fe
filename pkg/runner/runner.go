// Package runner holds what the command runners share.
package runner

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/chessboard/pkg/unitstore"
)

// Confirmer asks a yes/no question before a destructive command.
type Confirmer interface {
	Confirm(label string) (bool, error)
}

// ErrAborted is returned when the user answers no.
var ErrAborted = errors.New("aborted")

// Confirm asks c unless yes is set or there is no one to ask.
func Confirm(c Confirmer, yes bool, label string) error {
	if yes || c == nil {
		return nil
	}
	ok, err := c.Confirm(label)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

// Soft prints storage failures as a warning and swallows them. Other errors
// pass through.
func Soft(w io.Writer, err error) error {
	if err == nil || !errors.Is(err, unitstore.ErrStorageUnavailable) {
		return err
	}
	if w == nil {
		w = color.Error
	}
	_, _ = color.New(color.FgYellow).Fprintf(w, "warning: %v\n", err)
	return nil
}

// Out defaults w to the color-aware stdout.
func Out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

// Summary prints a one-line result.
func Summary(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(Out(w), format+"\n", args...)
}
