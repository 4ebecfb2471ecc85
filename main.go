// echo-tray renders a compact, width-aware status line for terminals and
// prompt integrations.
//
// Named segments (git branch, cwd, clock, battery, system load, ...) are
// selected by rules that adapt to the terminal width, overridden per project
// via .echo-tray.yaml files, and toggled interactively in watch mode.
//
// Usage:
//
//	echo-tray [flags]
//
// Flags:
//
//	-watch            Run the interactive watcher (Bubbletea)
//	-follow           Repaint the line in place on a plain ticker
//	-shell string     Output prompt integration script (auto|bash|zsh|fish|ksh)
//	-list             List registered segments and exit
//	-themes           List available themes and exit
//	-config string    Path to configuration file (default: ~/.config/echo-tray/config.toml)
//	-theme string     Theme name override
//	-theme-file string Load a custom TOML theme file
//	-width int        Terminal width override (0 = auto-detect)
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/echo-tray/pkg/app"
	"gitlab.com/tinyland/lab/echo-tray/pkg/config"
	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
	"gitlab.com/tinyland/lab/echo-tray/pkg/segments"
	"gitlab.com/tinyland/lab/echo-tray/pkg/shell"
	"gitlab.com/tinyland/lab/echo-tray/pkg/surface"
	"gitlab.com/tinyland/lab/echo-tray/pkg/theme"
	"gitlab.com/tinyland/lab/echo-tray/pkg/tray"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		runWatch    = flag.Bool("watch", false, "Run the interactive watcher (Bubbletea)")
		runFollow   = flag.Bool("follow", false, "Repaint the line in place on a plain ticker")
		listSegs    = flag.Bool("list", false, "List registered segments and exit")
		listThemes  = flag.Bool("themes", false, "List available themes and exit")
		shellName   = flag.String("shell", "", "Output prompt integration script (auto|bash|zsh|fish|ksh)")
		themeName   = flag.String("theme", "", "Theme name override")
		themeFile   = flag.String("theme-file", "", "Load a custom TOML theme file")
		termWidth   = flag.Int("width", 0, "Terminal width override (0 = auto-detect)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("echo-tray %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *listThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	// Prompt integration output does not require config.
	if *shellName != "" {
		sh, err := shell.Parse(*shellName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Print(shell.Integration(sh))
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging. Stdout carries the line, so logs go to stderr only.
	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Resolve the theme: flag overrides config, a custom file overrides both.
	if *themeName != "" {
		cfg.Tray.Theme = *themeName
	}
	th := theme.Get(cfg.Tray.Theme)
	if *themeFile != "" {
		th, err = theme.LoadCustom(*themeFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load theme: %v\n", err)
			os.Exit(1)
		}
	}

	reg := segment.NewRegistry()
	segments.RegisterBuiltins(reg, cfg, th)

	if *listSegs {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	opts := engineOptions(cfg)

	switch {
	case *runWatch:
		buf := surface.NewBuffer(*termWidth)
		eng := tray.NewEngine(reg, buf, opts, logger)
		eng.Start()

		m := app.NewModel(eng, buf, segments.BuildContext)
		p := tea.NewProgram(m)
		if _, err := p.Run(); err != nil {
			logger.Error("watch mode failed", "error", err)
			os.Exit(1)
		}

	case *runFollow:
		term := surface.NewTerminal(os.Stdout)
		if *termWidth > 0 {
			term = term.WithWidthOverride(*termWidth)
		}
		eng := tray.NewEngine(reg, term, opts, logger)
		eng.Start()

		if err := follow(signalContext(logger), eng); err != nil {
			logger.Error("follow mode failed", "error", err)
			os.Exit(1)
		}
		fmt.Println()

	default:
		out := surface.NewWriter(os.Stdout, *termWidth)
		eng := tray.NewEngine(reg, out, opts, logger)
		eng.Start()

		if _, err := eng.Refresh(segments.BuildContext()); err != nil {
			logger.Error("line build failed", "error", err)
			os.Exit(1)
		}
	}
}

// engineOptions maps the loaded configuration onto engine options.
func engineOptions(cfg *config.Config) tray.Options {
	return tray.Options{
		Persistent:     cfg.Rules.Active,
		Temporary:      cfg.Rules.Temporary,
		Detectors:      segments.DefaultDetectors(),
		Separator:      cfg.Tray.Separator,
		RightPadding:   cfg.Tray.RightPadding,
		WidthThreshold: cfg.Tray.WidthThreshold,
		Interval:       cfg.Tray.Interval.Duration,
		SkipCommands:   cfg.Tray.SkipCommands,
	}
}

// follow repaints the line in place until the context is cancelled. Segment
// updates run on their own slower cadence, same as watch mode.
func follow(ctx context.Context, eng *tray.Engine) error {
	paint := time.NewTicker(eng.Interval())
	defer paint.Stop()
	update := time.NewTicker(app.DefaultUpdateInterval)
	defer update.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-update.C:
			eng.UpdateSegments()
		case <-paint.C:
			if _, err := eng.Refresh(segments.BuildContext()); err != nil {
				return err
			}
		}
	}
}

// signalContext returns a context cancelled by SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()
	return ctx
}
