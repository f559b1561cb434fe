package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/chessboard/pkg/actionlog"
	"tableflip.dev/chessboard/pkg/grid"
	"tableflip.dev/chessboard/pkg/unit"
)

// Marks reports per-unit render state owned by the session.
type Marks interface {
	IsSelected(id int) bool
	IsChanged(id int) bool
}

type noMarks struct{}

func (noMarks) IsSelected(int) bool { return false }
func (noMarks) IsChanged(int) bool  { return false }

// PrettyPrint writes colored tables to Out.
type PrettyPrint struct {
	Out     io.Writer
	Display unit.DisplayMode
	ShowID  bool
	Marks   Marks
}

const emptySlot = "·"

var (
	title = color.New(color.Bold, color.Underline)
	faint = color.New(color.Faint)
	bold  = color.New(color.Bold)

	statusColor = map[unit.Status]color.Attribute{
		unit.Free:     color.FgGreen,
		unit.Sold:     color.FgRed,
		unit.Reserved: color.FgYellow,
	}
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) marks() Marks {
	if pp.Marks == nil {
		return noMarks{}
	}
	return pp.Marks
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(t string) {
	_, _ = title.Fprintln(pp.out(), t)
}

func (pp *PrettyPrint) TitleWithCount(t string, count int) {
	_, _ = title.Fprint(pp.out(), t)
	switch count {
	case 1:
		_, _ = faint.Fprintf(pp.out(), " - %d unit\n", count)
	default:
		_, _ = faint.Fprintf(pp.out(), " - %d units\n", count)
	}
}

// CellText is the plain text of a cell, without color.
func (pp *PrettyPrint) CellText(u *unit.Unit) string {
	if u == nil {
		return emptySlot
	}
	text := pp.Display.Display(u)
	if pp.ShowID {
		text = fmt.Sprintf("%s #%d", text, u.ID)
	}
	return u.Status.Glyph().Symbol + " " + text
}

// Cell renders one unit with its status color and selection marks.
func (pp *PrettyPrint) Cell(u *unit.Unit) string {
	if u == nil {
		return faint.Sprint(emptySlot)
	}
	attrs := []color.Attribute{statusColor[u.Status]}
	if pp.marks().IsSelected(u.ID) {
		attrs = append(attrs, color.Bold, color.ReverseVideo)
	}
	if pp.marks().IsChanged(u.ID) {
		attrs = append(attrs, color.Underline)
	}
	return color.New(attrs...).Sprint(pp.CellText(u))
}

// BoardTable builds the table for one board of the index.
func (pp *PrettyPrint) BoardTable(ix *grid.Index, b grid.Board) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "

	header := []interface{}{""}
	for _, c := range b.Columns {
		header = append(header, bold.Sprint(axisLabel(b.ColAxis, c)))
	}
	tbl.AddRow(header...)

	for r, row := range b.Rows {
		cells := []interface{}{bold.Sprint(axisLabel(b.RowAxis, row))}
		for c := range b.Columns {
			coord, err := b.Coord(r, c)
			if err != nil {
				cells = append(cells, "")
				continue
			}
			u, _ := ix.At(coord)
			cells = append(cells, pp.Cell(u))
		}
		tbl.AddRow(cells...)
	}
	tbl.RightAlign(0)
	return tbl
}

// Board prints every board of the index. The free-only filter of the index
// applies.
func (pp *PrettyPrint) Board(ix *grid.Index) {
	boards := ix.Boards()
	for i, b := range boards {
		if ix.Options().Layout == grid.Sectioned {
			pp.Title(fmt.Sprintf("Section %d", b.Section))
		}
		_, _ = fmt.Fprintln(pp.out(), pp.BoardTable(ix, b))
		if i < len(boards)-1 {
			pp.NewLine()
		}
	}
}

func axisLabel(a grid.Axis, v int) string {
	switch a {
	case grid.Floor:
		return fmt.Sprintf("F%d", v)
	case grid.Section:
		return fmt.Sprintf("S%d", v)
	case grid.Stoak:
		return fmt.Sprintf("T%d", v)
	}
	return fmt.Sprint(v)
}

// Unit prints the fields of one unit.
func (pp *PrettyPrint) Unit(u *unit.Unit) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("id"), u.ID)
	tbl.AddRow(bold.Sprint("number"), u.Number)
	tbl.AddRow(bold.Sprint("floor"), u.Floor)
	tbl.AddRow(bold.Sprint("section"), u.Section)
	if u.Stoak != 0 {
		tbl.AddRow(bold.Sprint("stoak"), u.Stoak)
	}
	tbl.AddRow(bold.Sprint("area"), unit.ShowArea.Display(u))
	tbl.AddRow(bold.Sprint("rooms"), u.RoomCount)
	tbl.AddRow(bold.Sprint("status"), color.New(statusColor[u.Status]).Sprint(u.Status.Glyph().Noun))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Log prints action log entries in the order given.
func (pp *PrettyPrint) Log(entries ...actionlog.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("When"), bold.Sprint("Kind"), bold.Sprint("Message"))
	for _, e := range entries {
		when := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		tbl.AddRow(faint.Sprint(when), e.Kind, e.Message)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Legend prints the status glyphs.
func (pp *PrettyPrint) Legend(glyphs []unit.Glyph) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Status"), bold.Sprint("Meaning"), bold.Sprint("Aliases"))
	for _, g := range glyphs {
		sym := color.New(statusColor[g.Status]).Sprint(g.Symbol + " " + g.Short)
		tbl.AddRow(sym, g.Meaning, strings.Join(g.Aliases, ", "))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
