// # cmd/depscan/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"depscan/internal/app"
	"depscan/internal/config"
)

var (
	configPath  = flag.String("config", "./depscan.toml", "Path to config file")
	checkCycles = flag.Bool("check-cycles", false, "Check for circular dependencies")
	buildOrder  = flag.Bool("build-order", false, "Show build order")
	dotPath     = flag.String("dot", "", "Generate DOT graph file")
	tsvPath     = flag.String("tsv", "", "Generate TSV edge listing")
	watch       = flag.Bool("watch", false, "Stay resident and re-analyze on changes")
	metricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (watch mode)")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("depscan v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if *configPath != "./depscan.toml" {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		// No config file is fine; the conventional layout applies.
		cfg = config.Default()
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	a := app.New(cfg)
	if err := a.Scan(); err != nil {
		if errors.Is(err, app.ErrNoSourceFiles) {
			fmt.Fprintln(os.Stderr, "No source files found.")
		} else {
			slog.Error("analysis failed", "error", err)
		}
		os.Exit(1)
	}

	fmt.Println("Include Dependency Analysis")
	fmt.Println(strings.Repeat("=", 40))
	a.PrintSummary(os.Stdout)

	if *checkCycles {
		a.CheckCycles(os.Stdout)
	}

	if *buildOrder {
		a.PrintBuildOrder(os.Stdout)
	}

	if *dotPath != "" {
		if err := a.WriteDOT(*dotPath); err != nil {
			slog.Error("DOT export failed", "path", *dotPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("\nDOT graph saved to %s\n", *dotPath)
		fmt.Println("Generate image with: dot -Tpng deps.dot -o deps.png")
	}

	if *tsvPath != "" {
		if err := a.WriteTSV(*tsvPath); err != nil {
			slog.Error("TSV export failed", "path", *tsvPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("\nTSV edges saved to %s\n", *tsvPath)
	}

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := a.Watch(ctx, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("watch mode failed", "error", err)
			os.Exit(1)
		}
	}
}
