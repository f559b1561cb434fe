package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/clone"
)

func addCopy(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "copy <id> <coord>",
		Aliases: []string{"cp"},
		Short:   "Copy a unit into an empty slot.",
		Long: base.Wrap80(`The coordinate names the slot as f<floor>s<section>, for example f4s1.
In the sectioned layout add the stoak: s1f4t2.`),
		Example: `
chessboard copy 1 f4s1
chessboard copy 2 s1f4t2
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ids, err := parseIDs(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{})
			if err != nil {
				return output.HandleError(err)
			}
			c := clone.Clone{
				Session: e.Session,
				ID:      ids[0],
				Ref:     args[1],
				Out:     e.Out,
			}
			err = runner.Soft(cmd.ErrOrStderr(), c.Do(ctx))
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
