package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	uo := &options.UnitOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a unit to an empty slot.",
		Example: `
chessboard add --floor=4 --section=1 --area=55 --rooms=2
chessboard add --floor=4 --section=2 --stoak=1 --status=reserved --number=402
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			u, err := uo.Unit()
			if err != nil {
				return output.HandleError(err)
			}
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{})
			if err != nil {
				return output.HandleError(err)
			}
			a := add.Add{
				Session: e.Session,
				Unit:    u,
				Out:     e.Out,
			}
			err = runner.Soft(cmd.ErrOrStderr(), a.Do(ctx))
			return output.HandleError(err)
		},
	}

	options.AddUnitArgs(cmd, uo, true)
	_ = cmd.MarkFlagRequired("floor")
	_ = cmd.MarkFlagRequired("section")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
