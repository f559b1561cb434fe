package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/unit"
)

// UnitOptions describe a unit on the command line.
type UnitOptions struct {
	Floor   int
	Section int
	Stoak   int
	Number  int
	Area    float64
	Rooms   int
	Status  string
}

// AddUnitArgs registers the unit fields. With place set, floor, section and
// stoak are registered too.
func AddUnitArgs(cmd *cobra.Command, o *UnitOptions, place bool) {
	if place {
		cmd.Flags().IntVar(&o.Floor, "floor", 0, "Floor of the unit.")
		cmd.Flags().IntVar(&o.Section, "section", 0, "Section of the unit.")
		cmd.Flags().IntVar(&o.Stoak, "stoak", 0, "Stoak (riser) of the unit, used by the sectioned layout.")
	}
	cmd.Flags().IntVar(&o.Number, "number", 0, "Unit number.")
	cmd.Flags().Float64Var(&o.Area, "area", 0, "Area in square meters.")
	cmd.Flags().IntVar(&o.Rooms, "rooms", 0, "Room count.")
	cmd.Flags().StringVar(&o.Status, "status", "", `One of "free", "sold" or "reserved".`)
}

// Unit builds a unit from the flags. An empty status is free.
func (o *UnitOptions) Unit() (unit.Unit, error) {
	u := unit.Unit{
		Floor:     o.Floor,
		Section:   o.Section,
		Stoak:     o.Stoak,
		Number:    unit.Number(o.Number),
		Area:      o.Area,
		RoomCount: o.Rooms,
	}
	if o.Status != "" {
		st, err := unit.StatusForAlias(o.Status)
		if err != nil {
			return unit.Unit{}, err
		}
		u.Status = st
	}
	return u, nil
}

// Patch holds only the fields that were set on cmd.
func (o *UnitOptions) Patch(cmd *cobra.Command) (app.Patch, error) {
	var p app.Patch
	flags := cmd.Flags()
	if flags.Changed("status") {
		st, err := unit.StatusForAlias(o.Status)
		if err != nil {
			return app.Patch{}, err
		}
		p.Status = &st
	}
	if flags.Changed("area") {
		p.Area = &o.Area
	}
	if flags.Changed("number") {
		n := unit.Number(o.Number)
		p.Number = &n
	}
	if flags.Changed("rooms") {
		p.RoomCount = &o.Rooms
	}
	return p, nil
}
