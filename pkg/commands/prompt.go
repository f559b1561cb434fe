package commands

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// PromptNext lets the user pick a subcommand, fill in its flags and run it.
func PromptNext(cmd *cobra.Command, args []string) error {
	subcommands := make([]*cobra.Command, 0)
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() && c.Args == nil {
			subcommands = append(subcommands, c)
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name }} {{ .Short | cyan }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "➜  {{ .Name }} {{ .Short | cyan }}",
		Details: `
--------- Example ----------
{{ .Example }}
`,
	}

	searcher := func(input string, index int) bool {
		subcommand := subcommands[index]
		name := strings.Replace(strings.ToLower(subcommand.Name()+subcommand.Short), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)

		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Commands",
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     ioutil.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return err
	}
	next := subcommands[i]

	if next.HasSubCommands() {
		return PromptNext(next, args)
	}
	if err := PromptFlags(next); err != nil {
		return err
	}
	if next.RunE != nil {
		return next.RunE(next, args)
	}
	if next.Run != nil {
		next.Run(next, args)
	}
	return nil
}

const doneFlag = "(run)"

// PromptFlags asks for flag values until the user picks run.
func PromptFlags(cmd *cobra.Command) error {
	fs := []*pflag.Flag{{Name: doneFlag, Usage: "run the command"}}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" || f.Hidden {
			return
		}
		fs = append(fs, f)
	})

	templates := &promptui.SelectTemplates{
		Label:    "{{ . | magenta }} flags?",
		Active:   "➜  {{ .Name }} {{ .Usage | cyan }}",
		Inactive: "   {{ .Name }} {{ .Usage | cyan }}",
		Selected: "➜  {{ .Name }} {{ .Value }}",
		Details: `
--------- Details ----------
default: {{ .DefValue }}
`,
	}

	searcher := func(input string, index int) bool {
		f := fs[index]
		name := strings.Replace(strings.ToLower(f.Name), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)

		return strings.Contains(name, input)
	}

	for {
		prompt := promptui.Select{
			HideHelp:  true,
			Label:     cmd.Name(),
			Items:     fs,
			Templates: templates,
			Size:      10,
			Searcher:  searcher,
			Stdin:     ioutil.NopCloser(cmd.InOrStdin()),
			Stdout:    NopCloser(cmd.OutOrStdout()),
		}

		i, _, err := prompt.Run()
		if err != nil {
			return err
		}
		if fs[i].Name == doneFlag {
			return nil
		}
		if err := promptFlag(cmd, fs[i]); err != nil {
			return err
		}
	}
}

func promptFlag(cmd *cobra.Command, f *pflag.Flag) error {
	if f.Value.Type() == "bool" {
		prompt := promptui.Prompt{
			Label:     f.Name,
			IsConfirm: true,
			Stdin:     ioutil.NopCloser(cmd.InOrStdin()),
			Stdout:    NopCloser(cmd.OutOrStdout()),
		}
		_, err := prompt.Run()
		if err == promptui.ErrAbort {
			return cmd.Flags().Set(f.Name, "false")
		}
		if err != nil {
			return err
		}
		return cmd.Flags().Set(f.Name, "true")
	}
	def := f.Value.String()
	if strings.HasSuffix(f.Value.Type(), "Slice") {
		def = ""
	}
	for {
		prompt := promptui.Prompt{
			Label:   f.Name,
			Default: def,
			Stdin:   ioutil.NopCloser(cmd.InOrStdin()),
			Stdout:  NopCloser(cmd.OutOrStdout()),
		}
		result, err := prompt.Run()
		if err != nil {
			return err
		}
		err = cmd.Flags().Set(f.Name, result)
		if err == nil {
			return nil
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "not a %s: %v\n", f.Value.Type(), err)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping
// the provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
