package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/printers"
)

var (
	output = &options.OutputOptions{}
	so     = &sessionOptions{}
)

func New() *cobra.Command {
	interactive := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "chessboard",
		Short: base.Wrap80("Edit the unit chessboard of a residential building from the command line."),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			output.Out = cmd.OutOrStdout()
			printers.DetectColor(cmd.OutOrStdout())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive.Interactive {
				return PromptNext(cmd, args)
			}
			return cmd.Help()
		},
	}

	options.InteractiveArgs(cmd, interactive)
	addSessionArgs(cmd, so)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addSwap(topLevel)
	addDelete(topLevel)
	addEdit(topLevel)
	addCopy(topLevel)
	addAdd(topLevel)
	addRecount(topLevel)
	addSeed(topLevel)
	addLog(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addExport(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
