package filing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestParse_TablesAndText(t *testing.T) {
	html := `<!doctype html>
	<html>
	  <head><title>Q2 Results</title></head>
	  <body>
	    <p>Quarterly results follow.</p>
	    <table>
	      <tr><th></th><th>2022</th><th>2023</th></tr>
	      <tr><td>Basic earnings per share</td><td>$1.10</td><td>$1.30</td></tr>
	    </table>
	  </body>
	</html>`

	doc, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("expected one table, got %d", len(doc.Tables))
	}
	rows := doc.Tables[0].Rows
	if len(rows) != 2 {
		t.Fatalf("expected two rows, got %d", len(rows))
	}
	if rows[0][1] != "2022" || rows[0][2] != "2023" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Basic earnings per share" || rows[1][2] != "$1.30" {
		t.Fatalf("unexpected data row: %v", rows[1])
	}
	if !strings.Contains(doc.Text, "Quarterly results follow.") {
		t.Fatalf("expected body text in full text, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "Basic earnings per share") {
		t.Fatalf("expected table text in full text")
	}
}

func TestParse_CollapsesWhitespaceInsideCells(t *testing.T) {
	html := `<table><tr><td>Basic
	earnings   per&nbsp;share</td><td>0.85</td></tr></table>`

	doc, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Tables[0].Rows[0][0]; got != "Basic earnings per share" {
		t.Fatalf("expected normalized cell text, got %q", got)
	}
}

func TestParse_NestedMarkupInCells(t *testing.T) {
	html := `<table><tr><td><b>Diluted</b> <i>EPS</i></td><td><span>0.52</span></td></tr></table>`

	doc, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := doc.Tables[0].Rows[0]
	if row[0] != "Diluted EPS" || row[1] != "0.52" {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestParse_SkipsScriptAndStyleText(t *testing.T) {
	html := `<html><head><style>.x{color:red}</style></head>
	<body><script>var eps = 9.99;</script><p>Earnings follow.</p></body></html>`

	doc, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(doc.Text, "9.99") || strings.Contains(doc.Text, "color:red") {
		t.Fatalf("expected script/style content to be dropped, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "Earnings follow.") {
		t.Fatalf("expected body text, got %q", doc.Text)
	}
}

func TestParse_EmptyTablesIgnored(t *testing.T) {
	html := `<table></table><table><tr><td>0.85</td></tr></table>`
	doc, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("expected the empty table to be dropped, got %d tables", len(doc.Tables))
	}
}

func TestParse_Windows1252Decoded(t *testing.T) {
	// 0x97 is an em dash in windows-1252 and invalid UTF-8 on its own.
	src := `<html><head><meta charset="windows-1252"></head>
	<body><table><tr><td>Earnings per share ` + "\x97" + ` basic</td><td>0.85</td></tr></table></body></html>`

	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Tables[0].Rows[0][0]; got != "Earnings per share — basic" {
		t.Fatalf("expected a decoded em dash, got %q", got)
	}

	// Sanity-check the fixture really is the windows-1252 byte for em dash.
	b, _ := charmap.Windows1252.NewEncoder().Bytes([]byte("—"))
	if string(b) != "\x97" {
		t.Fatalf("fixture encoding drifted: %x", b)
	}
}

func TestOpen_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "filing.html")
	html := `<table><tr><td>Basic EPS</td><td>0.73</td></tr></table>`
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("expected one table")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.html")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
