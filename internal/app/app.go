// Package app wires the extraction core into a batch run: walk a directory
// of HTML filings, extract one EPS value per file, and write the CSV plus
// the operational log and end-of-run summary.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zakriah-ibrahim/edgar-parser/internal/eps"
	"github.com/zakriah-ibrahim/edgar-parser/internal/filing"
)

type App struct {
	cfg Config
	kw  *eps.Keywords
}

func New(cfg Config) (*App, error) {
	info, err := os.Stat(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %q is not a directory", cfg.InputDir)
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return nil, fmt.Errorf("output path is empty")
	}
	kw := cfg.Keywords
	if kw == nil {
		kw = eps.DefaultKeywords()
	}
	return &App{cfg: cfg, kw: kw}, nil
}

// FileResult is the outcome for one filing. Err is set only for file-level
// failures (unreadable or unparseable input); an extraction miss is a
// normal result with Result.Found false.
type FileResult struct {
	Filename string
	Result   eps.Result
	Err      error
	Elapsed  time.Duration
}

func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	files, err := listFilings(a.cfg.InputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn().Str("dir", a.cfg.InputDir).Msg("no HTML filings found")
		return nil
	}
	log.Info().Int("count", len(files)).Str("dir", a.cfg.InputDir).Msg("processing filings")

	results := a.processAll(ctx, files)
	if err := ctx.Err(); err != nil {
		return err
	}

	// Deterministic output regardless of worker interleaving.
	sort.Slice(results, func(i, j int) bool {
		return results[i].Filename < results[j].Filename
	})

	if err := writeCSV(a.cfg.OutputPath, results); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Int("rows", len(results)).Msg("wrote results")

	summary := summarize(results, time.Since(start))
	summary.log()
	if a.cfg.ReportPDFPath != "" {
		if err := writeSummaryPDF(summary, a.cfg.ReportPDFPath); err != nil {
			return fmt.Errorf("write pdf report: %w", err)
		}
		log.Info().Str("out", a.cfg.ReportPDFPath).Msg("wrote summary report")
	}
	return nil
}

// processAll fans the filings out over a bounded worker pool. Extraction
// shares only the immutable keyword table, so workers need no coordination
// beyond collecting results.
func (a *App) processAll(ctx context.Context, files []string) []FileResult {
	workers := a.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan string)
	results := make([]FileResult, 0, len(files))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res := a.processOne(path)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

func (a *App) processOne(path string) FileResult {
	start := time.Now()
	name := filepath.Base(path)

	doc, err := filing.Open(path)
	if err != nil {
		elapsed := time.Since(start)
		log.Error().Err(err).Str("file", name).Dur("elapsed", elapsed).Msg("filing unreadable")
		return FileResult{Filename: name, Err: err, Elapsed: elapsed}
	}

	res := eps.Extract(doc, a.kw)
	elapsed := time.Since(start)
	if res.Found {
		log.Info().
			Str("file", name).
			Str("eps", res.Value.String()).
			Str("method", res.Provenance.Method.String()).
			Str("keyword", res.Provenance.Keyword).
			Str("tier", res.Provenance.Tier.String()).
			Dur("elapsed", elapsed).
			Msg("found EPS")
	} else {
		log.Warn().Str("file", name).Dur("elapsed", elapsed).Msg("no EPS found")
	}
	return FileResult{Filename: name, Result: res, Elapsed: elapsed}
}

// listFilings returns the HTML files directly inside dir, sorted by name.
func listFilings(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".html", ".htm":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
