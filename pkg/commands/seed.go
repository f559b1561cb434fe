package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/runner/seed"
)

func addSeed(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	s := seed.Seed{Sections: 2, Floors: 3, Stoaks: 2}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the board with a generated one.",
		Example: `
chessboard seed
chessboard seed --sections=3 --floors=9 --stoaks=4 --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			e, err := open(ctx, cmd, openOptions{})
			if err != nil {
				return output.HandleError(err)
			}
			s.Session = e.Session
			s.Yes = co.Yes
			s.Confirmer = e.Confirmer(co.Yes)
			s.Out = e.Out
			err = runner.Soft(cmd.ErrOrStderr(), s.Do(ctx))
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&s.Sections, "sections", s.Sections, "Number of sections.")
	cmd.Flags().IntVar(&s.Floors, "floors", s.Floors, "Number of floors, 1 to 9.")
	cmd.Flags().IntVar(&s.Stoaks, "stoaks", s.Stoaks, "Stoaks (risers) per section, 1 to 9.")
	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
