package app

import (
	"github.com/zakriah-ibrahim/edgar-parser/internal/eps"
)

// Config carries everything a run needs. It is assembled by the CLI from
// flags and an optional config file before New is called.
type Config struct {
	// InputDir holds the HTML filings to process.
	InputDir string
	// OutputPath is where the two-column CSV (filename, EPS) is written.
	OutputPath string
	// ReportPDFPath, when set, receives an end-of-run summary as PDF.
	ReportPDFPath string
	// Workers bounds concurrent filings in flight. Zero or one means
	// sequential.
	Workers int
	// Verbose enables debug logging.
	Verbose bool
	// Keywords overrides the built-in tier table; nil uses the defaults.
	Keywords *eps.Keywords
}
