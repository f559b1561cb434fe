package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/commands/options"
	"tableflip.dev/chessboard/pkg/logging"
	"tableflip.dev/chessboard/pkg/prompt"
	"tableflip.dev/chessboard/pkg/runner"
	"tableflip.dev/chessboard/pkg/store"
)

type sessionOptions struct {
	Ephemeral bool
	Driver    string
	Verbose   bool
}

func addSessionArgs(cmd *cobra.Command, o *sessionOptions) {
	cmd.PersistentFlags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Keep the board in memory only, nothing is written to disk.")
	cmd.PersistentFlags().StringVar(&o.Driver, "driver", "",
		`Storage driver, one of "diskv", "sqlite" or "memory". Defaults to the config.`)
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log at debug level.")
}

// env is everything a command needs to run against the stored board.
type env struct {
	Config      store.Config
	Persistence store.Persistence
	Logger      *zap.Logger
	Session     *app.Session
	Prompter    *prompt.Prompter
	Out         io.Writer
}

// Confirmer returns nil when nothing should be asked.
func (e *env) Confirmer(yes bool) runner.Confirmer {
	if yes || !e.Config.Confirm() {
		return nil
	}
	return e.Prompter
}

type openOptions struct {
	display *options.DisplayOptions
	// yes skips the swap confirmation too.
	yes bool
}

// open reads the config, builds the persistence and loads the session.
// Storage failures are printed as a warning; the session then works on the
// seed board.
func open(ctx context.Context, cmd *cobra.Command, oo openOptions) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if so.Driver != "" {
		d, err := store.ParseDriver(so.Driver)
		if err != nil {
			return nil, err
		}
		cfg = store.WithDriver(cfg, d)
	}
	if so.Ephemeral {
		cfg = store.WithDriver(cfg, store.DriverMemory)
	}

	level := cfg.LogLevel()
	if so.Verbose {
		level = "debug"
	}
	log, err := logging.New(level, cfg.LogFormat())
	if err != nil {
		return nil, err
	}

	p, err := store.Load(cfg)
	if err != nil {
		log.Warn("opening storage failed", zap.Error(err))
		p = nil
	}

	display := oo.display
	if display == nil {
		display = &options.DisplayOptions{}
	}
	dm, gopts, err := display.Resolve(cfg.Display(), cfg.Layout())
	if err != nil {
		return nil, err
	}

	e := &env{
		Config:      cfg,
		Persistence: p,
		Logger:      log,
		Prompter:    &prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()},
		Out:         cmd.OutOrStdout(),
	}
	opts := app.Options{
		Persistence: p,
		Logger:      log,
		Display:     dm,
		Grid:        gopts,
	}
	if !oo.yes && cfg.Confirm() {
		opts.Confirmer = e.Prompter
	}
	e.Session = app.New(opts)
	if err := runner.Soft(cmd.ErrOrStderr(), e.Session.Load(ctx)); err != nil {
		return nil, err
	}
	return e, nil
}
