package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"tableflip.dev/chessboard/pkg/actionlog"
	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/grid"
	"tableflip.dev/chessboard/pkg/logging"
	"tableflip.dev/chessboard/pkg/mode"
	"tableflip.dev/chessboard/pkg/printers"
	"tableflip.dev/chessboard/pkg/prompt"
	"tableflip.dev/chessboard/pkg/runner/key"
	"tableflip.dev/chessboard/pkg/swap"
	"tableflip.dev/chessboard/pkg/unit"
	"tableflip.dev/chessboard/pkg/unitstore"
)

// UI is the interactive board.
type UI struct {
	Session *app.Session
	Logger  *zap.Logger
	// ConfirmSwaps asks on the status line before each swap until the
	// user answers "don't ask again".
	ConfirmSwaps bool

	ctx context.Context
	log *zap.Logger
	ui  tui.UI

	gate    swapGate
	cur     cursor
	side    sideView
	message string
	editing bool

	board     *tui.Table
	boardView *tui.Box
	details   *tui.Label
	sideBox   *tui.Box
	status    *tui.StatusBar
	entry     *tui.Entry
	root      *tui.Box
	popup     *tui.Box
}

type sideView int

const (
	sideDetails sideView = iota
	sideLog
)

// cursor points at a cell of one board.
type cursor struct {
	board, row, col int
}

func (d *UI) Do(ctx context.Context) error {
	d.build(ctx)

	ui, err := tui.New(d.root)
	if err != nil {
		return err
	}
	ui.SetTheme(theme())
	d.ui = ui
	d.bind()

	events, err := d.Session.Watch(ctx)
	if err == nil && events != nil {
		go func() {
			for range events {
				ui.Update(func() {
					if err := d.Session.Reload(d.ctx); err != nil {
						d.report(err)
					}
					d.render()
				})
			}
		}()
	}

	return ui.Run()
}

func theme() *tui.Theme {
	t := tui.NewTheme()
	t.SetStyle("label.free", tui.Style{Fg: tui.ColorGreen})
	t.SetStyle("label.sold", tui.Style{Fg: tui.ColorRed})
	t.SetStyle("label.reserved", tui.Style{Fg: tui.ColorYellow})
	t.SetStyle("label.selected", tui.Style{Fg: tui.ColorWhite, Bg: tui.ColorBlue})
	t.SetStyle("label.cursor", tui.Style{Fg: tui.ColorBlack, Bg: tui.ColorWhite})
	t.SetStyle("label.header", tui.Style{Fg: tui.ColorCyan})
	return t
}

// build creates the widgets. It needs no terminal.
func (d *UI) build(ctx context.Context) {
	d.ctx = ctx
	if d.ConfirmSwaps {
		d.Session.SetConfirmer(&d.gate)
	}
	d.log = logging.OrNop(d.Logger)

	d.board = tui.NewTable(0, 0)
	d.board.SetSizePolicy(tui.Expanding, tui.Maximum)

	d.boardView = tui.NewVBox(d.board, tui.NewSpacer())
	d.boardView.SetBorder(true)
	d.boardView.SetSizePolicy(tui.Expanding, tui.Expanding)

	d.details = tui.NewLabel("")
	d.details.SetSizePolicy(tui.Preferred, tui.Expanding)
	d.sideBox = tui.NewVBox(d.details, tui.NewSpacer())
	d.sideBox.SetBorder(true)
	d.sideBox.SetSizePolicy(tui.Preferred, tui.Expanding)

	d.entry = tui.NewEntry()
	d.entry.SetSizePolicy(tui.Expanding, tui.Maximum)
	d.entry.OnSubmit(func(e *tui.Entry) {
		d.submitEdit(e.Text())
	})

	d.status = tui.NewStatusBar("")
	d.status.SetPermanentText(`'k' for key, 'q' to QUIT`)

	d.root = tui.NewVBox(
		tui.NewHBox(d.boardView, d.sideBox),
		d.entry,
		d.status,
	)

	keys := make([]tui.Widget, 0, len(key.Bindings())+1)
	keys = append(keys, tui.NewLabel("Keys"))
	for _, b := range key.Bindings() {
		keys = append(keys, tui.NewLabel(fmt.Sprintf("%-7s %s", b.Key, b.Meaning)))
	}
	legend := tui.NewVBox(keys...)
	legend.SetBorder(true)
	legend.SetTitle("key")
	d.popup = tui.NewVBox(
		tui.NewHBox(legend, tui.NewSpacer()),
		tui.NewSpacer(),
		d.status,
	)

	d.render()
}

func (d *UI) bind() {
	isKey := false
	d.ui.SetKeybinding("k", func() {
		if d.editing {
			return
		}
		if isKey {
			d.ui.SetWidget(d.root)
		} else {
			d.ui.SetWidget(d.popup)
		}
		isKey = !isKey
	})
	for _, k := range []string{"Up", "Down", "Left", "Right", "Enter", "Esc",
		" ", "Space", "f", "s", "v", "g", "d", "m", "c", "e", "x", "y",
		"1", "2", "3", "r", "w", "l", "a", "n"} {
		k := k
		d.ui.SetKeybinding(k, func() { d.press(k) })
	}
	d.ui.SetKeybinding("q", func() {
		if !d.editing {
			d.ui.Quit()
		}
	})
}

// press handles one key. Keys other than Esc are ignored while the edit
// entry has focus.
func (d *UI) press(k string) {
	if d.editing {
		if k == "Esc" {
			d.closeEdit()
			d.render()
		}
		return
	}
	d.message = ""
	if answered, err := d.answerKey(k); answered {
		if err != nil {
			d.report(err)
		}
		d.render()
		return
	}
	var err error
	switch k {
	case "Up":
		d.move(-1, 0)
	case "Down":
		d.move(1, 0)
	case "Left":
		d.move(0, -1)
	case "Right":
		d.move(0, 1)
	case " ", "Space":
		_, err = d.Session.Click(d.ctx, d.target())
	case "Enter":
		if u, ok := d.Session.DoubleClick(d.target()); ok {
			d.side = sideDetails
			d.message = fmt.Sprintf("unit %s", u.Number)
		}
	case "Esc":
		d.Session.Cancel()
	case "f":
		if c, ok := d.coord(); ok {
			d.Session.SelectFloor(c.Floor)
		}
	case "s":
		if c, ok := d.coord(); ok {
			if d.Session.GridOptions().Layout == grid.Sectioned {
				d.Session.SelectStoak(c.Section, c.Stoak)
			} else {
				d.Session.SelectSection(c.Section)
			}
		}
	case "v", "g":
		err = d.gesture(k)
	case "d":
		err = d.Session.Activate(d.ctx, mode.Delete)
	case "m":
		err = d.Session.Activate(d.ctx, mode.Move)
	case "c":
		err = d.Session.Activate(d.ctx, mode.Copy)
	case "e":
		err = d.Session.Activate(d.ctx, mode.Edit)
	case "x":
		err = d.Session.Activate(d.ctx, mode.Select)
	case "y":
		err = d.confirm()
	case "1":
		d.Session.SetDisplay(unit.ShowNumber)
	case "2":
		d.Session.SetDisplay(unit.ShowArea)
	case "3":
		d.Session.SetDisplay(unit.ShowRooms)
	case "r":
		var n int
		n, err = d.Session.Recount(d.ctx, 101)
		d.message = fmt.Sprintf("renumbered %d units", n)
	case "w":
		err = d.Session.Save(d.ctx)
		d.message = "saved"
	case "l":
		if d.side == sideLog {
			d.side = sideDetails
		} else {
			d.side = sideLog
		}
	}
	if err != nil {
		d.report(err)
	}
	d.render()
}

// gesture starts a lasso (v) or drag (g) at the cursor, or finishes the one
// in flight. Cursor moves feed the gesture in between.
func (d *UI) gesture(k string) error {
	if _, ok := d.Session.Gesture(); ok {
		_, err := d.Session.Dispatch(d.ctx, mode.Event{Kind: mode.PointerUp, Target: d.target()})
		return err
	}
	t := d.target()
	if k == "g" && !t.OnUnit {
		d.message = "drag has to start on a unit"
		return nil
	}
	_, err := d.Session.Dispatch(d.ctx, mode.Event{Kind: mode.PointerDown, Target: t})
	if _, ok := d.Session.Gesture(); !ok {
		d.message = fmt.Sprintf("nothing to %s in %s mode", map[string]string{"v": "lasso", "g": "drag"}[k], d.Session.Mode())
	}
	return err
}

func (d *UI) confirm() error {
	switch d.Session.Mode() {
	case mode.Delete:
		n, err := d.Session.ConfirmDelete(d.ctx)
		d.message = fmt.Sprintf("deleted %d units", n)
		return err
	case mode.Edit:
		if len(d.Session.Selection()) == 0 {
			d.message = "nothing selected"
			return nil
		}
		d.openEdit()
	case mode.None:
	default:
		d.message = fmt.Sprintf("%s mode done", d.Session.EndMode())
	}
	return nil
}

func (d *UI) openEdit() {
	d.editing = true
	d.entry.SetText("")
	d.entry.SetFocused(true)
	d.message = "status=free|sold|reserved area=N number=N rooms=N, enter to apply, esc to cancel"
}

func (d *UI) closeEdit() {
	d.editing = false
	d.entry.SetText("")
	d.entry.SetFocused(false)
}

func (d *UI) submitEdit(text string) {
	if !d.editing {
		return
	}
	patch, err := prompt.ParseAssignments(text)
	if err != nil {
		d.report(err)
		d.render()
		return
	}
	d.closeEdit()
	n, err := d.Session.ConfirmEdit(d.ctx, patch)
	d.message = fmt.Sprintf("edited %d units", n)
	if err != nil {
		d.report(err)
	}
	d.render()
}

func (d *UI) report(err error) {
	switch {
	case errors.Is(err, swap.ErrDeclined) && d.gate.pending != nil:
		d.message = d.gate.question()
	case errors.Is(err, unitstore.ErrStorageUnavailable):
		d.message = "not saved: " + err.Error()
		d.log.Warn("storage unavailable", zap.Error(err))
	default:
		d.message = err.Error()
	}
}

func (d *UI) boards() (*grid.Index, []grid.Board) {
	ix := d.Session.Grid()
	return ix, ix.Boards()
}

// clamp keeps the cursor inside the current boards.
func clamp(c cursor, boards []grid.Board) cursor {
	if len(boards) == 0 {
		return cursor{}
	}
	if c.board >= len(boards) {
		c.board = len(boards) - 1
	}
	if c.board < 0 {
		c.board = 0
	}
	b := boards[c.board]
	c.row = bound(c.row, len(b.Rows))
	c.col = bound(c.col, len(b.Columns))
	return c
}

func bound(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// step moves c by dr rows and dc columns. Moving past the last column of a
// board continues on the next board.
func step(c cursor, boards []grid.Board, dr, dc int) cursor {
	c = clamp(c, boards)
	if len(boards) == 0 {
		return c
	}
	c.row = bound(c.row+dr, len(boards[c.board].Rows))
	c.col += dc
	switch {
	case c.col < 0 && c.board > 0:
		c.board--
		c.col = len(boards[c.board].Columns) - 1
	case c.col >= len(boards[c.board].Columns) && c.board < len(boards)-1:
		c.board++
		c.col = 0
	}
	return clamp(c, boards)
}

func (d *UI) move(dr, dc int) {
	_, boards := d.boards()
	d.cur = step(d.cur, boards, dr, dc)
	if _, ok := d.Session.Gesture(); ok {
		_, _ = d.Session.Dispatch(d.ctx, mode.Event{Kind: mode.PointerMove, Target: d.target()})
	}
}

func (d *UI) coord() (grid.Coord, bool) {
	_, boards := d.boards()
	d.cur = clamp(d.cur, boards)
	if len(boards) == 0 {
		return grid.Coord{}, false
	}
	c, err := boards[d.cur.board].Coord(d.cur.row, d.cur.col)
	if err != nil {
		return grid.Coord{}, false
	}
	return c, true
}

// target is the slot under the cursor. Hidden units read as empty slots.
func (d *UI) target() mode.Target {
	c, ok := d.coord()
	if !ok {
		return mode.Target{}
	}
	if u, ok := d.Session.Grid().At(c); ok {
		return mode.At(c, u.ID)
	}
	return mode.Empty(c)
}

func (d *UI) render() {
	ix, boards := d.boards()
	d.cur = clamp(d.cur, boards)
	pp := printers.PrettyPrint{Display: d.Session.Display()}

	d.board.RemoveRows()
	for _, row := range d.cells(ix, boards, pp) {
		d.board.AppendRow(row...)
	}
	d.boardView.SetTitle(fmt.Sprintf("chessboard [%s]", d.Session.Mode()))

	switch d.side {
	case sideLog:
		d.sideBox.SetTitle("log")
		d.details.SetText(logText(d.Session.Logs(""), sideWidth))
	default:
		d.sideBox.SetTitle("unit")
		d.details.SetText(d.describe())
	}

	text := d.Session.Hint().String()
	if d.message != "" {
		text += " | " + d.message
	}
	d.status.SetText(text)
}

// cells lays the boards out side by side: a label column, then the columns
// of each board, with an empty column between boards.
func (d *UI) cells(ix *grid.Index, boards []grid.Board, pp printers.PrettyPrint) [][]tui.Widget {
	height := 0
	for _, b := range boards {
		if len(b.Rows) > height {
			height = len(b.Rows)
		}
	}
	rows := make([][]tui.Widget, height+1)
	src, hasSrc := d.Session.MoveSource()

	for bi, b := range boards {
		if bi > 0 {
			for r := range rows {
				rows[r] = append(rows[r], tui.NewLabel(" "))
			}
		}
		corner := ""
		if ix.Options().Layout == grid.Sectioned {
			corner = fmt.Sprintf("S%d", b.Section)
		}
		rows[0] = append(rows[0], header(corner))
		for _, v := range b.Columns {
			rows[0] = append(rows[0], header(axisLabel(b.ColAxis, v)))
		}
		for r := 0; r < height; r++ {
			if r >= len(b.Rows) {
				for i := 0; i <= len(b.Columns); i++ {
					rows[r+1] = append(rows[r+1], tui.NewLabel(""))
				}
				continue
			}
			rows[r+1] = append(rows[r+1], header(axisLabel(b.RowAxis, b.Rows[r])))
			for c := range b.Columns {
				coord, _ := b.Coord(r, c)
				u, _ := ix.At(coord)
				here := d.cur == cursor{board: bi, row: r, col: c}
				rows[r+1] = append(rows[r+1], d.cell(pp, u, here, hasSrc && u != nil && u.ID == src))
			}
		}
	}
	return rows
}

func header(text string) *tui.Label {
	l := tui.NewLabel(text)
	l.SetStyleName("header")
	return l
}

func axisLabel(a grid.Axis, v int) string {
	switch a {
	case grid.Floor:
		return fmt.Sprintf("F%d", v)
	case grid.Section:
		return fmt.Sprintf("S%d", v)
	}
	return fmt.Sprintf("T%d", v)
}

// CellText decorates a cell: '>' under the cursor, '*' selected, '@' the
// pending move source, '~' changed since the last save.
func CellText(text string, here, selected, source, changed bool) string {
	mark := func(on bool, r string) string {
		if on {
			return r
		}
		return " "
	}
	return mark(here, ">") + mark(selected, "*") + mark(source, "@") + text + mark(changed, "~")
}

func (d *UI) cell(pp printers.PrettyPrint, u *unit.Unit, here, source bool) *tui.Label {
	if u == nil {
		l := tui.NewLabel(CellText(pp.CellText(nil), here, false, false, false))
		if here {
			l.SetStyleName("cursor")
		}
		return l
	}
	selected := d.Session.IsSelected(u.ID)
	l := tui.NewLabel(CellText(pp.CellText(u), here, selected, source, d.Session.IsChanged(u.ID)))
	switch {
	case here:
		l.SetStyleName("cursor")
	case selected:
		l.SetStyleName("selected")
	default:
		l.SetStyleName(u.Status.String())
	}
	return l
}

// sideWidth bounds the side pane so long log messages do not squeeze the
// board.
const sideWidth = 36

// logText lays out log entries for the side pane. Messages wrap at width with
// continuation lines indented under the message.
func logText(entries []actionlog.Entry, width int) string {
	if len(entries) == 0 {
		return "none"
	}
	const stamp = "15:04:05"
	hang := len(stamp) + 1
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		msg := wordwrap.String(e.Message, width-hang)
		first, rest, _ := strings.Cut(msg, "\n")
		line := e.Timestamp.Local().Format(stamp) + " " + first
		if rest != "" {
			line += "\n" + indent.String(rest, uint(hang))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (d *UI) describe() string {
	t := d.target()
	if !t.OnUnit {
		return fmt.Sprintf("%s\nempty", t.Coord)
	}
	u, err := d.Session.Unit(t.ID)
	if err != nil {
		return err.Error()
	}
	lines := []string{
		fmt.Sprintf("number  %s", u.Number),
		fmt.Sprintf("id      %d", u.ID),
		fmt.Sprintf("slot    %s", t.Coord),
		fmt.Sprintf("area    %s", unit.ShowArea.Display(u)),
		fmt.Sprintf("rooms   %d", u.RoomCount),
		fmt.Sprintf("status  %s", u.Status.Glyph().Short),
	}
	return strings.Join(lines, "\n")
}
