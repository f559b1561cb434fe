// Package prompt asks the user questions on the terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	"tableflip.dev/chessboard/pkg/swap"
	"tableflip.dev/chessboard/pkg/unit"
)

// Prompter runs promptui prompts against In and Out, the terminal by default.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// ErrNoTerminal is returned when a question would be asked of input that is
// a file or pipe rather than a terminal.
var ErrNoTerminal = errors.New("prompt: input is not a terminal, pass --yes to skip confirmation")

// Interactive reports whether In can answer prompts. Readers that are not
// files are taken as scripted answers.
func (p *Prompter) Interactive() bool {
	in := p.In
	if in == nil {
		in = os.Stdin
	}
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (p *Prompter) stdin() io.ReadCloser {
	if p.In == nil {
		return os.Stdin
	}
	return io.NopCloser(p.In)
}

func (p *Prompter) stdout() io.WriteCloser {
	if p.Out == nil {
		return os.Stdout
	}
	return nopWriteCloser{p.Out}
}

var confirmTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} ",
	Valid:   "{{ . | green }} ",
	Invalid: "{{ . | red }} ",
	Success: "{{ . | bold }} ",
}

// Confirm asks a yes/no question. Anything but yes is false.
func (p *Prompter) Confirm(label string) (bool, error) {
	if !p.Interactive() {
		return false, ErrNoTerminal
	}
	pr := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Templates: confirmTemplates,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	_, err := pr.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

const (
	answerYes = iota
	answerAlways
	answerNo
)

// ConfirmSwap asks before a swap and can remember the answer.
func (p *Prompter) ConfirmSwap(ctx context.Context, src, tgt *unit.Unit) (swap.Decision, error) {
	if err := ctx.Err(); err != nil {
		return swap.Decision{}, err
	}
	if !p.Interactive() {
		return swap.Decision{}, ErrNoTerminal
	}
	sel := promptui.Select{
		HideHelp: true,
		Label:    fmt.Sprintf("Swap %s with unit %s?", src.Number, tgt.Number),
		Items:    []string{"Yes", "Yes, don't ask again", "No"},
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "➜  {{ . | bold }}",
			Inactive: "   {{ . }}",
			Selected: "{{ . | green }}",
		},
		Stdin:  p.stdin(),
		Stdout: p.stdout(),
	}
	i, _, err := sel.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return swap.Decision{}, nil
	}
	if err != nil {
		return swap.Decision{}, err
	}
	return decision(i), nil
}

func decision(answer int) swap.Decision {
	switch answer {
	case answerYes:
		return swap.Decision{OK: true}
	case answerAlways:
		return swap.Decision{OK: true, DontAskAgain: true}
	}
	return swap.Decision{}
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
