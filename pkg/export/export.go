// Package export writes the chessboard to an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/xuri/excelize/v2"

	"tableflip.dev/chessboard/pkg/grid"
	"tableflip.dev/chessboard/pkg/unit"
)

// UnitsSheet lists every unit, one per row.
const UnitsSheet = "Units"

var UnitsHeader = []string{"ID", "Number", "Floor", "Section", "Stoak", "Area", "Rooms", "Status"}

// statusColor matches the terminal status colors. Cells are filled with a
// light tint of it so the text stays readable.
var statusColor = map[unit.Status]string{
	unit.Free:     "#2E7D32",
	unit.Sold:     "#C62828",
	unit.Reserved: "#F9A825",
}

const tint = 0.75

var white = colorful.Color{R: 1, G: 1, B: 1}

// Tint blends hex toward white by amount in Lab space.
func Tint(hex string, amount float64) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("export: color %q: %w", hex, err)
	}
	return c.BlendLab(white, amount).Clamped().Hex(), nil
}

// BoardSheet names the sheet of one board.
func BoardSheet(ix *grid.Index, b grid.Board) string {
	if ix.Options().Layout == grid.Sectioned {
		return fmt.Sprintf("Section %d", b.Section)
	}
	return "Board"
}

type writer struct {
	f      *excelize.File
	header int
	fills  map[unit.Status]int
}

// Board writes one sheet per board of ix, cells showing display, followed by
// the Units sheet. Hidden units are left out of the board sheets only.
func Board(w io.Writer, ix *grid.Index, units []*unit.Unit, display unit.DisplayMode) error {
	f := excelize.NewFile()
	defer f.Close()

	ew := &writer{f: f, fills: map[unit.Status]int{}}
	var err error
	ew.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}
	for st, base := range statusColor {
		fill, err := Tint(base, tint)
		if err != nil {
			return err
		}
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return fmt.Errorf("export: %s style: %w", st, err)
		}
		ew.fills[st] = id
	}

	for _, b := range ix.Boards() {
		if err := ew.board(ix, b, display); err != nil {
			return err
		}
	}
	if err := ew.units(units); err != nil {
		return err
	}

	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex(BoardSheet(ix, firstBoard(ix))); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}

func firstBoard(ix *grid.Index) grid.Board {
	if bs := ix.Boards(); len(bs) > 0 {
		return bs[0]
	}
	return grid.Board{}
}

func (ew *writer) set(sheet string, col, row int, value interface{}, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := ew.f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("export: set %s!%s: %w", sheet, cell, err)
	}
	if style != 0 {
		return ew.f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}

func (ew *writer) board(ix *grid.Index, b grid.Board, display unit.DisplayMode) error {
	sheet := BoardSheet(ix, b)
	if _, err := ew.f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export: sheet %s: %w", sheet, err)
	}
	for c, v := range b.Columns {
		if err := ew.set(sheet, c+2, 1, label(b.ColAxis, v), ew.header); err != nil {
			return err
		}
	}
	for r, v := range b.Rows {
		if err := ew.set(sheet, 1, r+2, label(b.RowAxis, v), ew.header); err != nil {
			return err
		}
		for c := range b.Columns {
			coord, err := b.Coord(r, c)
			if err != nil {
				return err
			}
			u, ok := ix.At(coord)
			if !ok {
				continue
			}
			if err := ew.set(sheet, c+2, r+2, display.Display(u), ew.fills[u.Status]); err != nil {
				return err
			}
		}
	}
	return ew.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
}

func (ew *writer) units(units []*unit.Unit) error {
	if _, err := ew.f.NewSheet(UnitsSheet); err != nil {
		return fmt.Errorf("export: sheet %s: %w", UnitsSheet, err)
	}
	for c, h := range UnitsHeader {
		if err := ew.set(UnitsSheet, c+1, 1, h, ew.header); err != nil {
			return err
		}
	}
	for i, u := range units {
		row := []interface{}{u.ID, int(u.Number), u.Floor, u.Section, u.Stoak, u.Area, u.RoomCount, u.Status.String()}
		for c, v := range row {
			style := 0
			if c == len(row)-1 {
				style = ew.fills[u.Status]
			}
			if err := ew.set(UnitsSheet, c+1, i+2, v, style); err != nil {
				return err
			}
		}
	}
	return ew.f.SetColWidth(UnitsSheet, "A", "H", 12)
}

func label(a grid.Axis, v int) string {
	switch a {
	case grid.Floor:
		return fmt.Sprintf("Floor %d", v)
	case grid.Section:
		return fmt.Sprintf("Section %d", v)
	case grid.Stoak:
		return fmt.Sprintf("Stoak %d", v)
	}
	return fmt.Sprint(v)
}
