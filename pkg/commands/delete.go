package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	sel := &options.SelectorOptions{}
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete the selected units.",
		Example: `
chessboard delete --id=3 --id=4
chessboard delete --floor=2
chessboard delete --stoak=1/2 --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{})
			if err != nil {
				return output.HandleError(err)
			}
			r := remove.Remove{
				Session:   e.Session,
				Selector:  sel.Selector(),
				Yes:       co.Yes,
				Confirmer: e.Confirmer(co.Yes),
				Out:       e.Out,
			}
			err = runner.Soft(cmd.ErrOrStderr(), r.Do(ctx))
			return output.HandleError(err)
		},
	}

	options.AddSelectorArgs(cmd, sel)
	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
