package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zakriah-ibrahim/edgar-parser/internal/app"
	"github.com/zakriah-ibrahim/edgar-parser/internal/eps"
)

func main() {
	var (
		inputDir   string
		outputPath string
		logPath    string
		configPath string
		reportPDF  string
		workers    int
		verbose    bool
	)

	flag.StringVar(&inputDir, "input", "", "Directory containing HTML filings")
	flag.StringVar(&outputPath, "output", "output.csv", "Path to write the results CSV")
	flag.StringVar(&logPath, "log", "parser.log", "Path for the log file (empty disables the file)")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.StringVar(&reportPDF, "report.pdf", "", "Optional path for a PDF run summary")
	flag.IntVar(&workers, "workers", 1, "Number of filings processed concurrently")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputDir:      inputDir,
		OutputPath:    outputPath,
		ReportPDFPath: reportPDF,
		Workers:       workers,
		Verbose:       verbose,
	}

	// Config file fills in anything the command line left at its default;
	// explicitly set flags always win.
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["input"] && fc.Input != "" {
			cfg.InputDir = fc.Input
		}
		if !set["output"] && fc.Output != "" {
			cfg.OutputPath = fc.Output
		}
		if !set["log"] && fc.Log != "" {
			logPath = fc.Log
		}
		if !set["report.pdf"] && fc.ReportPDF != "" {
			cfg.ReportPDFPath = fc.ReportPDF
		}
		if !set["workers"] && fc.Workers > 0 {
			cfg.Workers = fc.Workers
		}
		if !set["v"] && fc.Verbose {
			cfg.Verbose = true
		}
		if len(fc.Keywords.Basic)+len(fc.Keywords.Diluted)+len(fc.Keywords.Generic) > 0 {
			cfg.Keywords = eps.NewKeywords(fc.Keywords.Basic, fc.Keywords.Diluted, fc.Keywords.Generic)
		}
	}

	closeLog, err := setupLogging(logPath, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if cfg.InputDir == "" {
		log.Error().Msg("no input directory given; use -input DIR")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// setupLogging routes the operational log to stderr and, when logPath is
// set, to a fresh log file as well.
func setupLogging(logPath string, verbose bool) (func(), error) {
	zerolog.TimeFieldFormat = time.RFC3339
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if logPath == "" {
		log.Logger = log.Output(console)
		return func() {}, nil
	}
	if dir := filepath.Dir(logPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(logPath)
	if err != nil {
		return nil, err
	}
	log.Logger = log.Output(zerolog.MultiLevelWriter(console, zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true}))
	return func() { _ = f.Close() }, nil
}

func run(ctx context.Context, cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
