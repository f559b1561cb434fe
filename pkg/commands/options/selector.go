package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/app"
)

// SelectorOptions pick units for bulk commands.
type SelectorOptions struct {
	IDs      []int
	Floors   []int
	Sections []int
	Stoaks   []string
}

func AddSelectorArgs(cmd *cobra.Command, o *SelectorOptions) {
	cmd.Flags().IntSliceVar(&o.IDs, "id", nil,
		"Select a unit by id. Repeatable.")
	cmd.Flags().IntSliceVar(&o.Floors, "floor", nil,
		"Select every unit on a floor. Repeatable.")
	cmd.Flags().IntSliceVar(&o.Sections, "section", nil,
		"Select every unit in a section. Repeatable.")
	cmd.Flags().StringSliceVar(&o.Stoaks, "stoak", nil,
		`Select a riser as section/stoak, example: --stoak=1/2. Repeatable.`)
}

func (o *SelectorOptions) Selector() app.Selector {
	return app.Selector{IDs: o.IDs, Floors: o.Floors, Sections: o.Sections, Stoaks: o.Stoaks}
}
