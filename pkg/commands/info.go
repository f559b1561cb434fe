package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the board and where it is stored.",
		Example: `
chessboard info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{})
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:      e.Config,
				Persistence: e.Persistence,
				Session:     e.Session,
				Out:         e.Out,
			}
			err = runner.Soft(cmd.ErrOrStderr(), s.Do(ctx))
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
