package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(chessboard completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(chessboard completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

// unitCompletions lists stored unit ids with their number as description.
func unitCompletions(_ *cobra.Command, toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	s := app.New(app.Options{Persistence: p})
	if err := s.Load(context.Background()); err != nil {
		return nil
	}
	ids := make([]string, 0, len(s.Units()))
	for _, u := range s.Units() {
		id := strconv.Itoa(u.ID)
		if len(toComplete) > 0 && (len(id) < len(toComplete) || id[:len(toComplete)] != toComplete) {
			continue
		}
		ids = append(ids, id+"\t"+u.Number.String())
	}
	return ids
}
