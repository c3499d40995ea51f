package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/api"
	"github.com/Makepad-fr/tada/internal/board"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/page"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Plain   bool   // print once to stdout instead of starting the UI
	Format  string // cards or table, plain mode only
	Theme   string // overrides TADA_THEME
	Verbose bool   // debug logging
}

// failure is a runtime error (exit 1). Anything else cobra returns is a
// usage error (exit 2). shown means the error was already rendered.
type failure struct {
	err   error
	shown bool
}

func (f *failure) Error() string { return f.err.Error() }
func (f *failure) Unwrap() error { return f.err }

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string) int {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		PrintHelp(stderr)
		return 2
	}

	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var f *failure
	if errors.As(err, &f) {
		if !f.shown {
			ui.Fail(stderr, err.Error())
		}
		return 1
	}
	ui.Fail(stderr, err.Error())
	fmt.Fprintln(stderr)
	PrintHelp(stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `tada - users, todos and products in the terminal

Usage:
  tada <subcommand> [flags]

Subcommands:
  users              Directory of users
  todos              Todo list with progress, filters, toggle and delete
  products           Tech products catalog

Flags:
  --plain            Print once to stdout instead of the interactive UI
  --format <f>       cards (default) or table, with --plain
  --theme <name>     classic | neon | mono
  --verbose          Debug logging
  --limit <n>        Items to fetch (todos, products)
  --filter <f>       all | completed | pending (todos)
  --detail <i>       Print the detail of the i-th product, with --plain

Examples:
  tada users
  tada todos --filter pending
  tada products --plain --format table
  TADA_LOG_FILE=tada.log tada products --verbose
`)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opt := &Options{}
	root := &cobra.Command{
		Use:           "tada",
		Short:         "tada shows users, todos and products fetched from public APIs.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.BoolVar(&opt.Plain, "plain", false, "print once to stdout instead of the interactive UI")
	pf.StringVar(&opt.Format, "format", string(ui.FormatCards), "plain output format: cards or table")
	pf.StringVar(&opt.Theme, "theme", "", "classic, neon or mono")
	pf.BoolVar(&opt.Verbose, "verbose", false, "debug logging")

	root.AddCommand(
		usersCmd(opt, stdout, stderr),
		todosCmd(opt, stdout, stderr),
		productsCmd(opt, stdout, stderr),
	)
	return root
}

// app is what a subcommand needs once flags and env are resolved.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	client   *api.Client
	printer  *ui.Printer
	closeLog func() error
}

func (o *Options) setup(stdout, stderr io.Writer) (*app, error) {
	format, err := ui.ParseFormat(o.Format)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, &failure{err: err}
	}

	theme := cfg.Theme
	if o.Theme != "" {
		theme = o.Theme
	}
	ui.SetTheme(theme)

	level := cfg.Level()
	if o.Verbose {
		level = slog.LevelDebug
	}
	log, closeLog, err := logging.Setup(!o.Plain, cfg.LogFile, level, stderr)
	if err != nil {
		return nil, &failure{err: err}
	}

	a := &app{
		cfg: cfg,
		log: log,
		client: api.NewClient(api.Options{
			UsersBaseURL:    cfg.UsersBaseURL,
			ProductsBaseURL: cfg.ProductsBaseURL,
			Logger:          log,
		}),
		closeLog: closeLog,
	}
	if o.Plain {
		a.printer = ui.NewPrinter(stdout, stderr, format)
	}
	return a, nil
}

// finish maps a plain load result or a UI exit to the command error. A
// plain run that succeeds ends with done on the status stream.
func (a *app) finish(err error, done string) error {
	_ = a.closeLog()
	if err != nil {
		return &failure{err: err, shown: a.printer != nil && a.printer.HasFailed()}
	}
	if a.printer != nil && done != "" {
		ui.OK(a.printer.Status, done)
	}
	return nil
}

func limitOr(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}

func usersCmd(opt *Options, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Directory of users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opt.setup(stdout, stderr)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if a.printer != nil {
				return a.finish(page.NewUsers(a.client, a.printer, a.log).Load(ctx), "usuarios cargados")
			}
			return a.finish(tui.Run(ctx, tui.NewUsers(ctx, a.client, a.log)), "")
		},
	}
}

func todosCmd(opt *Options, stdout, stderr io.Writer) *cobra.Command {
	var (
		limit  int
		filter string
	)
	cmd := &cobra.Command{
		Use:   "todos [--filter all|completed|pending]",
		Short: "Todo list with progress, filters, toggle and delete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := board.ParseFilter(filter)
			if err != nil {
				return err
			}
			a, err := opt.setup(stdout, stderr)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			n := limitOr(limit, a.cfg.TodoLimit)
			if a.printer != nil {
				p := page.NewTodos(a.client, a.printer, n, a.log)
				p.SetFilter(f)
				return a.finish(p.Load(ctx), "tareas cargadas")
			}
			return a.finish(tui.Run(ctx, tui.NewTodos(ctx, a.client, n, f, a.log)), "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "todos to fetch (default TADA_TODO_LIMIT)")
	cmd.Flags().StringVar(&filter, "filter", string(board.All), "all, completed or pending")
	return cmd
}

func productsCmd(opt *Options, stdout, stderr io.Writer) *cobra.Command {
	var (
		limit  int
		detail int
	)
	cmd := &cobra.Command{
		Use:   "products [--detail <i>]",
		Short: "Tech products catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("detail") && !opt.Plain {
				return errors.New("--detail needs --plain; press enter on a product instead")
			}
			a, err := opt.setup(stdout, stderr)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			n := limitOr(limit, a.cfg.ProductLimit)
			if a.printer == nil {
				return a.finish(tui.Run(ctx, tui.NewProducts(ctx, a.client, n, a.log)), "")
			}

			p := page.NewProducts(a.client, a.printer, n, a.log)
			if err := p.Load(ctx); err != nil {
				return a.finish(err, "")
			}
			if detail < 0 {
				return a.finish(nil, "productos cargados")
			}
			if !p.Select(detail) {
				return a.finish(fmt.Errorf("detail: index out of range: have %d, got %d", len(p.Shown()), detail), "")
			}
			return a.finish(nil, fmt.Sprintf("detalle de %s", p.Shown()[detail].Title))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "products to fetch (default TADA_PRODUCT_LIMIT)")
	cmd.Flags().IntVar(&detail, "detail", -1, "print the detail of the i-th shown product (0-based), with --plain")
	return cmd
}
