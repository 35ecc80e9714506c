package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alem-hub/university-hub/config"
	"github.com/alem-hub/university-hub/internal/infrastructure/persistence/postgres"
	"github.com/alem-hub/university-hub/internal/infrastructure/seed"
	"github.com/alem-hub/university-hub/pkg/logger"
)

// Options configures the command tree.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// LoadConfig defaults to config.Load.
	LoadConfig func() (*config.Config, error)

	// OpenStores defaults to OpenStores.
	OpenStores func(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error)
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.LoadConfig == nil {
		o.LoadConfig = config.Load
	}
	if o.OpenStores == nil {
		o.OpenStores = OpenStores
	}
}

type runner struct {
	opts    Options
	verbose bool
}

// NewRootCommand builds the university command. Without a subcommand it
// runs the scripted demo.
func NewRootCommand(opts Options) *cobra.Command {
	opts.defaults()
	r := &runner{opts: opts}

	root := &cobra.Command{
		Use:   "university",
		Short: "University records hub",
		Long: `Keeps people, courses, departments, grades and enrollments of a
small university.

Run without a subcommand to execute the scripted demo.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          r.runDemo,
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	root.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "log debug output to stderr")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted demo",
		Args:  cobra.NoArgs,
		RunE:  r.runDemo,
	}

	var seedPath string
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Import a YAML roster and print the payroll",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := seed.LoadFile(seedPath)
			if err != nil {
				return err
			}
			return r.withApp(cmd, func(ctx context.Context, app *App) error {
				return LoadRoster(ctx, app, doc, r.opts.Stdout)
			})
		},
	}
	loadCmd.Flags().StringVar(&seedPath, "seed", "roster.yaml", "roster file to import")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		Args:  cobra.NoArgs,
		RunE:  r.runMigrate,
	}

	root.AddCommand(demoCmd, loadCmd, migrateCmd)
	return root
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	root := NewRootCommand(Options{Stdout: stdout, Stderr: stderr})
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (r *runner) runDemo(cmd *cobra.Command, _ []string) error {
	return r.withApp(cmd, func(ctx context.Context, app *App) error {
		return RunDemo(ctx, app, r.opts.Stdout)
	})
}

func (r *runner) runMigrate(cmd *cobra.Command, _ []string) error {
	return r.withApp(cmd, func(ctx context.Context, app *App) error {
		if app.Stores.Postgres == nil {
			return errors.New("migrate requires STORE_BACKEND=postgres")
		}
		applied, err := postgres.NewMigrator(app.Stores.Postgres).Migrate(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.opts.Stdout, "Applied %d migration(s).\n", applied)
		return nil
	})
}

// withApp loads configuration, opens the backends and runs fn. Domain errors
// returned by fn are reported and do not fail the command.
func (r *runner) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := r.opts.LoadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, r.verbose, r.opts.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	stores, err := r.opts.OpenStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(); err != nil {
			log.Warn("closing stores", logger.Err(err))
		}
	}()

	app := NewApp(cfg, log, stores)
	ctx = logger.WithContext(ctx, log)
	return app.Report(fn(ctx, app), r.opts.Stderr)
}

// newLogger builds the process logger. LOG_OUTPUT=none discards everything
// unless --verbose is set, which logs at debug level to stderr.
func newLogger(cfg *config.Config, verbose bool, stderr io.Writer) (*logger.Logger, func(), error) {
	obs := cfg.Observability
	level := logger.ParseLevel(obs.LogLevel)
	output := obs.LogOutput
	if verbose {
		level = logger.LevelDebug
		if output == "none" {
			output = "stderr"
		}
	}

	var (
		w       io.Writer
		closeFn = func() {}
	)
	switch output {
	case "none", "":
		return logger.Nop(), closeFn, nil
	case "stderr":
		w = stderr
	default:
		sink, closeSink, err := logger.OpenSink(output)
		if err != nil {
			return nil, nil, fmt.Errorf("open log output: %w", err)
		}
		w, closeFn = sink, closeSink
	}

	log := logger.New(logger.Options{
		Output:    w,
		Level:     level,
		Format:    logger.Format(obs.LogFormat),
		AddCaller: cfg.IsDevelopment(),
	})
	log = log.With(logger.String("app", cfg.App.Name), logger.String("env", string(cfg.App.Environment)))
	return log, func() { _ = log.Sync(); closeFn() }, nil
}
