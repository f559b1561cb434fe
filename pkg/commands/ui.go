package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	do := &options.DisplayOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Edit the chessboard in the terminal.",
		Example: `
chessboard ui
chessboard ui --layout=sectioned
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			// The ui asks about swaps on its status line, not on stdin.
			e, err := open(ctx, cmd, openOptions{display: do, yes: true})
			if err != nil {
				return err
			}
			u := ui.UI{
				Session:      e.Session,
				Logger:       e.Logger,
				ConfirmSwaps: e.Config.Confirm(),
			}
			return u.Do(ctx)
		},
	}

	options.AddDisplayArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
