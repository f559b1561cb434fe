package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/grid"
	"tableflip.dev/chessboard/pkg/unit"
)

// DisplayOptions control how the board is drawn.
type DisplayOptions struct {
	Display  string
	Layout   string
	FreeOnly bool
	ShowID   bool
}

func AddDisplayArgs(cmd *cobra.Command, o *DisplayOptions) {
	cmd.Flags().StringVar(&o.Display, "display", "",
		`Cell text, one of "number", "area" or "rooms". Defaults to the config.`)
	cmd.Flags().StringVar(&o.Layout, "layout", "",
		`Board layout, "flat" or "sectioned". Defaults to the config.`)
	cmd.Flags().BoolVar(&o.FreeOnly, "free-only", false,
		"Hide units that are not free.")
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the id of each unit.")
}

// Resolve fills the unset fields from the configured defaults.
func (o *DisplayOptions) Resolve(display, layout string) (unit.DisplayMode, grid.Options, error) {
	if o.Display != "" {
		display = o.Display
	}
	if o.Layout != "" {
		layout = o.Layout
	}
	dm, err := unit.ParseDisplayMode(display)
	if err != nil {
		return "", grid.Options{}, err
	}
	l, err := grid.ParseLayout(layout)
	if err != nil {
		return "", grid.Options{}, err
	}
	return dm, grid.Options{Layout: l, FreeOnly: o.FreeOnly}, nil
}
