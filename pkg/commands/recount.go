package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/recount"
)

func addRecount(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	start := 101
	cmd := &cobra.Command{
		Use:   "recount",
		Short: "Renumber every unit in board order.",
		Example: `
chessboard recount
chessboard recount --start=1 --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{})
			if err != nil {
				return output.HandleError(err)
			}
			r := recount.Recount{
				Session:   e.Session,
				Start:     start,
				Yes:       co.Yes,
				Confirmer: e.Confirmer(co.Yes),
				Out:       e.Out,
			}
			err = runner.Soft(cmd.ErrOrStderr(), r.Do(ctx))
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&start, "start", start, "Number given to the first unit.")
	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
