package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	cmd := &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write the board and the unit list to a spreadsheet.",
		Example: `
chessboard export board.xlsx
chessboard export --layout=sectioned --display=area board.xlsx
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{display: do})
			if err != nil {
				return output.HandleError(err)
			}
			x := export.Export{
				Session: e.Session,
				Path:    args[0],
				Out:     e.Out,
			}
			err = runner.Soft(cmd.ErrOrStderr(), x.Do(ctx))
			return output.HandleError(err)
		},
	}

	options.AddDisplayArgs(cmd, do)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
