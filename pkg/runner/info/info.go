package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/store"
	"tableflip.dev/chessboard/pkg/unit"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Session     *app.Session
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := runner.Out(n.Out)

	if override := os.Getenv("CHESSBOARD_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "CHESSBOARD_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "CHESSBOARD_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if f := store.ConfigFileUsed(n.Config); f != "" {
		_, _ = fmt.Fprintln(out, "Config file:", f)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.driver:", n.Config.Driver())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}
	_, _ = fmt.Fprintln(out, "Keys:")
	keys := n.Persistence.Keys(ctx)
	for _, k := range keys {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
	}
	if len(keys) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "nothing stored yet")
	}

	if n.Session != nil {
		_, _ = fmt.Fprintln(out, "")
		n.report(out, n.Session.Report())
	}
	return nil
}

func (n *Info) report(out io.Writer, r app.ReportResult) {
	bold := color.New(color.Bold)
	statuses := unit.DefaultStatuses()

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold.Sprint("Section"), bold.Sprint("Units")}
	for _, g := range statuses {
		header = append(header, bold.Sprint(g.Noun))
	}
	header = append(header, bold.Sprint("Area"), bold.Sprint("Free area"))
	tbl.AddRow(header...)

	for _, s := range r.Sections {
		row := []interface{}{s.Section, s.Units}
		for _, g := range statuses {
			row = append(row, s.ByStatus[g.Status])
		}
		row = append(row, fmt.Sprintf("%.1f", s.Area), fmt.Sprintf("%.1f", s.FreeArea))
		tbl.AddRow(row...)
	}
	total := []interface{}{bold.Sprint("all"), r.Total}
	for _, g := range statuses {
		total = append(total, r.ByStatus[g.Status])
	}
	total = append(total, fmt.Sprintf("%.1f", r.Area), "")
	tbl.AddRow(total...)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
}
