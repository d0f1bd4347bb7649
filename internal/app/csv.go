package app

import (
	"encoding/csv"
	"fmt"
	"os"
)

// notFound is the CSV cell written when a filing yielded no EPS value.
const notFound = "Not Found"

// writeCSV writes the two-column results table. File-level failures and
// extraction misses both render as "Not Found"; the distinction lives in
// the operational log, not the data file.
func writeCSV(path string, results []FileResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"filename", "EPS"}); err != nil {
		f.Close()
		return err
	}
	for _, r := range results {
		value := notFound
		if r.Result.Found {
			value = r.Result.Value.String()
		}
		if err := w.Write([]string{r.Filename, value}); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
