package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/swap"
)

func addSwap(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:     "swap <id> <id>",
		Aliases: []string{"move", "mv"},
		Short:   "Exchange the numbers of two units.",
		Example: `
chessboard swap 1 3
chessboard swap 1 3 --yes
`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) >= 2 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return unitCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ids, err := parseIDs(args...)
			if err != nil {
				return output.HandleError(err)
			}
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{yes: co.Yes})
			if err != nil {
				return output.HandleError(err)
			}
			s := swap.Swap{
				Session: e.Session,
				A:       ids[0],
				B:       ids[1],
				Out:     e.Out,
			}
			err = runner.Soft(cmd.ErrOrStderr(), s.Do(ctx))
			return output.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func parseIDs(args ...string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil || id <= 0 {
			return nil, errors.New("unit ids are positive integers, got " + strconv.Quote(a))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
