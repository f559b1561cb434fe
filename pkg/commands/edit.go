package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	sel := &options.SelectorOptions{}
	uo := &options.UnitOptions{}
	co := &options.ConfirmOptions{}
	interactive := &options.InteractiveOptions{}
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply the same field values to every selected unit.",
		Example: `
chessboard edit --floor=2 --status=reserved
chessboard edit --id=1 --area=54.5 --rooms=2
chessboard edit --section=1 -i
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			patch, err := uo.Patch(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{})
			if err != nil {
				return output.HandleError(err)
			}
			r := edit.Edit{
				Session:   e.Session,
				Selector:  sel.Selector(),
				Patch:     patch,
				Yes:       co.Yes,
				Confirmer: e.Confirmer(co.Yes),
				Out:       e.Out,
			}
			if interactive.Interactive {
				r.Form = e.Prompter
			}
			err = runner.Soft(cmd.ErrOrStderr(), r.Do(ctx))
			return output.HandleError(err)
		},
	}

	options.AddSelectorArgs(cmd, sel)
	options.AddUnitArgs(cmd, uo, false)
	options.AddConfirmArgs(cmd, co)
	options.InteractiveArgs(cmd, interactive)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
