package app

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// writeSummaryPDF renders the run summary as a one-page PDF: headline run
// stats followed by the keyword frequency table. Layout is intentionally
// simple; the CSV remains the machine-readable artifact.
func writeSummaryPDF(s runSummary, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "EDGAR EPS extraction summary", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Files processed: %d", s.Files),
		fmt.Sprintf("EPS values found: %d", s.Found),
		fmt.Sprintf("File-level errors: %d", s.Errors),
		fmt.Sprintf("Total time: %s", s.Elapsed.Round(10*time.Millisecond)),
		fmt.Sprintf("Average per file: %s", s.Average.Round(10*time.Millisecond)),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Keyword frequency", "", 1, "L", false, 0, "")
	if len(s.Keywords) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 6, "No keyword produced a successful match.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(140, 6, "Keyword", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, "Matches", "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, kc := range s.Keywords {
			pdf.CellFormat(140, 6, kc.Keyword, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%d", kc.Count), "1", 1, "R", false, 0, "")
		}
	}

	return pdf.OutputFileAndClose(outPath)
}
