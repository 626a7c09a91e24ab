package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hellflame/argparse"

	"techart-tools/internal/batch"
	"techart-tools/internal/config"
	"techart-tools/internal/logger"
)

func main() {
	parser := argparse.NewParser(
		"normalfix",
		"Detects faces whose normals point inward and repairs them by reversing the face winding",
		nil,
	)
	input := parser.String("p", "path", &argparse.Option{
		Positional: true,
		Required:   true,
		Help:       "OBJ file, or a directory to scan for OBJ files",
	})
	configFile := parser.String("c", "config", &argparse.Option{
		Help: "Path to a YAML config file",
	})
	outputDir := parser.String("o", "output", &argparse.Option{
		Help: "Write repaired files here instead of repairing in place",
	})
	workers := parser.Int("w", "workers", &argparse.Option{
		Help: "Worker goroutines for directory mode (default: NumCPU)",
	})
	dryRun := parser.Flag("n", "dry-run", &argparse.Option{
		Help: "Classify and report without writing any file",
	})
	reportPath := parser.String("r", "report", &argparse.Option{
		Help: "Write a JSON report of all results to this path",
	})
	logLevel := parser.String("l", "log-level", &argparse.Option{
		Help: "Log level: debug, info, warn, error",
	})

	if err := parser.Parse(nil); err != nil {
		if err == argparse.BreakAfterHelpError {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Workers:   *workers,
		LogLevel:  *logLevel,
	})

	logger.Init(cfg.Logging.Level, cfg.Logging.File)
	defer logger.Sync()

	paths, err := collectOBJs(*input)
	if err != nil {
		logger.Sugar.Fatalf("%v", err)
	}
	if len(paths) == 0 {
		logger.Sugar.Info("Nothing to process")
		return
	}

	batchCfg := batch.Config{
		Workers: cfg.Workers,
		DryRun:  *dryRun,
	}
	if *outputDir != "" {
		batchCfg.OutputDir = cfg.Output.Dir
	}

	start := time.Now()
	results := batch.Run(batchCfg, paths)
	summary := batch.Summarize(results)

	logger.Sugar.Infof("Done in %.1fs: %d files, %d flipped faces, %d failed",
		time.Since(start).Seconds(), summary.Files, summary.Flipped, summary.Failed)

	for _, r := range results {
		if !r.Success {
			logger.Sugar.Errorf("%s: %s", r.Path, r.Error)
		}
	}

	if *reportPath != "" {
		if err := batch.WriteReport(*reportPath, results); err != nil {
			logger.Sugar.Errorf("report write failed: %v", err)
		} else {
			logger.Sugar.Infof("Report: %s", *reportPath)
		}
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// collectOBJs returns the input itself for a file, or every .obj under it
// for a directory, sorted for stable processing order.
func collectOBJs(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", input, err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	var paths []string
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if strings.EqualFold(filepath.Ext(path), ".obj") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", input, err)
	}
	sort.Strings(paths)
	return paths, nil
}
