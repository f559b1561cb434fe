package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	l := log.Log{}
	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"history"},
		Short:   "Show the action log, newest first.",
		Example: `
chessboard log
chessboard log --kind=move
chessboard log --clear --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{})
			if err != nil {
				return output.HandleError(err)
			}
			if !l.Clear {
				if done, err := output.Emit(e.Session.Logs(l.Kind)); done {
					return output.HandleError(err)
				}
			}
			l.Session = e.Session
			l.Yes = co.Yes
			l.Confirmer = e.Confirmer(co.Yes)
			l.Out = e.Out
			err = runner.Soft(cmd.ErrOrStderr(), l.Do(ctx))
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&l.Kind, "kind", "", `Only show one kind, for example "move", "delete" or "edit".`)
	cmd.Flags().BoolVar(&l.Clear, "clear", false, "Remove every entry.")
	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
