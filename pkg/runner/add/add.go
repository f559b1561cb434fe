package add

import (
	"context"
	"io"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/printers"
	"tableflip.dev/chessboard/pkg/unit"
)

// Add stores Unit at its slot. A zero number becomes floor*100+section.
type Add struct {
	Session *app.Session
	Unit    unit.Unit
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	u, err := n.Session.Add(ctx, n.Unit)
	if u == nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Title("Added")
	pp.Unit(u)
	return err
}
