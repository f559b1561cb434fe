package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	watch := false
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"board", "ls"},
		Short:   "Print the chessboard.",
		Example: `
chessboard show
chessboard show --display=area --free-only
chessboard show --layout=sectioned --show-id
chessboard show --watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			e, err := open(ctx, cmd, openOptions{display: do})
			if err != nil {
				return output.HandleError(err)
			}
			if done, err := output.Emit(e.Session.Units()); done {
				return output.HandleError(err)
			}
			s := show.Show{
				Session: e.Session,
				ShowID:  do.ShowID,
				Watch:   watch,
				Out:     e.Out,
				Err:     cmd.ErrOrStderr(),
			}
			err = runner.Soft(cmd.ErrOrStderr(), s.Do(ctx))
			return output.HandleError(err)
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reprint the board whenever the stored board changes.")

	topLevel.AddCommand(cmd)
}
