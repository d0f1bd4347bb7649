// Package filing parses one HTML financial filing into the immutable
// document form the extraction core works on: the ordered tables plus the
// full text. Filings pulled from EDGAR are frequently windows-1252 rather
// than UTF-8, so input bytes are charset-sniffed and decoded first.
package filing

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Document is a parsed filing. It is never mutated after Parse returns.
type Document struct {
	Tables []Table
	Text   string
}

// Table is an ordered grid of cell text. Rows may be ragged; column
// position is the index within the row.
type Table struct {
	Rows [][]string
}

// Open reads and parses a filing from disk.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open filing: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and parses a filing from a reader.
func Parse(r io.Reader) (*Document, error) {
	decoded, err := decode(r)
	if err != nil {
		return nil, err
	}
	root, err := goquery.NewDocumentFromReader(decoded)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root.Find("script,style,noscript").Remove()

	doc := &Document{}
	root.Find("table").Each(func(_ int, t *goquery.Selection) {
		var table Table
		t.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var row []string
			tr.Find("td,th").Each(func(_ int, cell *goquery.Selection) {
				row = append(row, collapseSpaces(cell.Text()))
			})
			if len(row) > 0 {
				table.Rows = append(table.Rows, row)
			}
		})
		if len(table.Rows) > 0 {
			doc.Tables = append(doc.Tables, table)
		}
	})

	doc.Text = collapseSpaces(root.Text())
	return doc, nil
}

// decode sniffs the charset from the first KiB and wraps the reader in the
// matching decoder. DetermineEncoding always yields a usable encoding
// (falling back to windows-1252), so this cannot fail on content.
func decode(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(1024)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read filing: %w", err)
	}
	enc, _, _ := charset.DetermineEncoding(peek, "")
	return transform.NewReader(br, enc.NewDecoder()), nil
}

// collapseSpaces trims and squeezes whitespace runs, including
// non-breaking spaces, to single spaces.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ' ' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
