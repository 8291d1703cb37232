// # internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"depscan/internal/config"
	"depscan/internal/discover"
	"depscan/internal/graph"
	"depscan/internal/include"
	"depscan/internal/observability"
	"depscan/internal/output"
	"depscan/internal/util"
	"depscan/internal/watcher"

	"github.com/google/uuid"
)

// ErrNoSourceFiles is the only fatal analysis condition: nothing to
// analyze under any configured root.
var ErrNoSourceFiles = errors.New("no source files discovered")

// App owns the discovery index and the dependency graph for one run.
// Scan rebuilds both from scratch; nothing persists between runs.
type App struct {
	Config *config.Config
	Index  *discover.Index
	Graph  *graph.Graph
}

func New(cfg *config.Config) *App {
	return &App{Config: cfg}
}

// Scan performs a full discovery-and-analysis pass.
func (a *App) Scan() error {
	runID := uuid.NewString()
	start := time.Now()

	ix, err := discover.Scan(a.Config.Discovery)
	if err != nil {
		return err
	}
	if ix.Len() == 0 {
		return ErrNoSourceFiles
	}

	resolver := include.NewResolver(ix, a.Config.Discovery.IncludeDirs, a.Config.Discovery.SystemPrefix)
	g := graph.Build(ix, resolver)

	a.Index = ix
	a.Graph = g

	duration := time.Since(start)
	stats := g.ComputeStats()
	observability.ScanDuration.Observe(duration.Seconds())
	observability.GraphNodes.WithLabelValues("source").Set(float64(stats.SourceCount))
	observability.GraphNodes.WithLabelValues("header").Set(float64(stats.HeaderCount))
	observability.GraphNodes.WithLabelValues("assembly").Set(float64(stats.AssemblyCount))
	observability.GraphEdges.Set(float64(stats.EdgeCount))

	slog.Info("scan complete",
		"run_id", runID,
		"files", ix.Len(),
		"edges", stats.EdgeCount,
		"duration", duration)
	return nil
}

// PrintSummary writes the aggregate statistics block.
func (a *App) PrintSummary(w io.Writer) {
	s := a.Graph.ComputeStats()

	fmt.Fprintf(w, "Source files: %d\n", s.SourceCount+s.AssemblyCount)
	fmt.Fprintf(w, "Header files: %d\n", s.HeaderCount)
	fmt.Fprintf(w, "Dependencies: %d\n", s.EdgeCount)

	if s.MostOutgoing != "" {
		fmt.Fprintf(w, "Most dependencies: %s (%d deps)\n", s.MostOutgoing, s.MostOutgoingCount)
	}
	if s.MostIncoming != "" {
		fmt.Fprintf(w, "Most dependents: %s (%d dependents)\n", s.MostIncoming, s.MostIncomingCount)
	}
}

// CheckCycles reports the first circular include path, if any.
func (a *App) CheckCycles(w io.Writer) {
	fmt.Fprintln(w, "\nChecking for circular dependencies...")
	if cycle := a.Graph.DetectCycle(); cycle != nil {
		fmt.Fprintf(w, "Circular dependency found: %s\n", joinArrow(cycle))
	} else {
		fmt.Fprintln(w, "No circular dependencies found.")
	}
}

// PrintBuildOrder writes the 1-based numbered Kahn ordering.
func (a *App) PrintBuildOrder(w io.Writer) {
	fmt.Fprintln(w, "\nBuild order:")
	for i, path := range a.Graph.BuildOrder() {
		fmt.Fprintf(w, "%3d. %s\n", i+1, path)
	}
}

// WriteDOT exports the graph to path. A write failure fails this
// operation only; statistics already printed stay valid.
func (a *App) WriteDOT(path string) error {
	dot, err := output.NewDOTGenerator(a.Graph).Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(dot), 0644); err != nil {
		return fmt.Errorf("writing DOT graph: %w", err)
	}
	return nil
}

func (a *App) WriteTSV(path string) error {
	tsv, err := output.NewTSVGenerator(a.Graph).Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(tsv), 0644); err != nil {
		return fmt.Errorf("writing TSV edges: %w", err)
	}
	return nil
}

// Watch stays resident, re-running the full analysis whenever analyzed
// files change. Each rescan rebuilds the index and graph from scratch;
// the rate limiter drops change bursts that arrive faster than the
// configured rescan budget.
func (a *App) Watch(ctx context.Context, out io.Writer) error {
	limiter := util.NewLimiter(a.Config.Watch.RescansPerSecond, a.Config.Watch.RescanBurst)

	if a.Config.Metrics.Addr != "" {
		srv := observability.NewServer(a.Config.Metrics.Addr)
		if err := srv.Start(); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Stop(shutdownCtx)
		}()
	}

	w, err := watcher.NewWatcher(a.Config.Watch.Debounce, a.Config.Discovery.ExcludeDirs, func(paths []string) {
		observability.WatcherEventsTotal.Inc()
		if !limiter.Allow(1) {
			observability.RescansThrottledTotal.Inc()
			slog.Debug("rescan throttled", "changed", len(paths))
			return
		}

		observability.RescansTotal.Inc()
		slog.Info("change detected, re-analyzing", "changed", len(paths))
		if err := a.Scan(); err != nil {
			slog.Error("re-analysis failed", "error", err)
			return
		}
		a.PrintSummary(out)
		a.CheckCycles(out)
		a.writeConfiguredOutputs()
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(a.Config.Discovery.Roots); err != nil {
		return err
	}

	<-ctx.Done()
	return ctx.Err()
}

func (a *App) writeConfiguredOutputs() {
	if a.Config.Output.DOT != "" {
		if err := a.WriteDOT(a.Config.Output.DOT); err != nil {
			slog.Error("DOT export failed", "path", a.Config.Output.DOT, "error", err)
		}
	}
	if a.Config.Output.TSV != "" {
		if err := a.WriteTSV(a.Config.Output.TSV); err != nil {
			slog.Error("TSV export failed", "path", a.Config.Output.TSV, "error", err)
		}
	}
}

func joinArrow(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " -> "
		}
		out += p
	}
	return out
}
