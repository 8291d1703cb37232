// # cmd/headerstamp/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"depscan/internal/header"
)

var (
	project = flag.String("project", "Avatar Project", "Project name for the copyright line")
	dryRun  = flag.Bool("dry-run", false, "Show what would be done without making changes")
	force   = flag.Bool("force", false, "Overwrite existing headers")
	exclude = flag.String("exclude", "", "Additional exclude patterns, comma separated")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var patterns []string
	for _, p := range strings.Split(*exclude, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}

	tool, err := header.NewTool(*project, *dryRun, *force, patterns)
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(1)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	fmt.Println("Copyright Header Tool")
	fmt.Println(strings.Repeat("=", 40))
	if *dryRun {
		fmt.Println("DRY RUN MODE - no files will be modified")
	}

	var total header.Summary
	for _, path := range paths {
		sum, err := tool.ProcessPath(path)
		if err != nil {
			slog.Error("failed to process path", "path", path, "error", err)
			os.Exit(1)
		}
		total.Processed += sum.Processed
		total.HasHeader += sum.HasHeader
		total.Skipped += sum.Skipped
	}

	fmt.Println(strings.Repeat("=", 40))
	if *dryRun {
		fmt.Printf("Files that would be processed: %d\n", total.Processed)
	} else {
		fmt.Printf("Files processed (headers added): %d\n", total.Processed)
	}
	fmt.Printf("Files already with headers: %d\n", total.HasHeader)
	fmt.Printf("Files skipped: %d\n", total.Skipped)
	fmt.Printf("Total files examined: %d\n", total.Processed+total.HasHeader+total.Skipped)
}
