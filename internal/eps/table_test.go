package eps

import (
	"testing"

	"github.com/zakriah-ibrahim/edgar-parser/internal/filing"
)

func docWithTables(tables ...filing.Table) *filing.Document {
	return &filing.Document{Tables: tables}
}

func TestScanTables_MostRecentRightPicksRightmost(t *testing.T) {
	doc := docWithTables(filing.Table{Rows: [][]string{
		{"", "2022", "2023"},
		{"Basic earnings per share", "1.10", "1.30"},
	}})
	m, ok := scanTables(doc, DefaultKeywords())
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.token != "1.30" {
		t.Fatalf("expected the most recent (rightmost) value 1.30, got %q", m.token)
	}
	if m.method != MethodTable || m.tier != TierBasic {
		t.Fatalf("unexpected provenance: %+v", m)
	}
}

func TestScanTables_MostRecentLeftPicksLeftmost(t *testing.T) {
	doc := docWithTables(filing.Table{Rows: [][]string{
		{"", "2023", "2022"},
		{"Basic earnings per share", "1.30", "1.10"},
	}})
	m, ok := scanTables(doc, DefaultKeywords())
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.token != "1.30" {
		t.Fatalf("expected the most recent (leftmost) value 1.30, got %q", m.token)
	}
}

func TestScanTables_UnknownDirectionChecksRightNeighborFirst(t *testing.T) {
	doc := docWithTables(filing.Table{Rows: [][]string{
		{"0.99", "Basic earnings per share", "1.30"},
	}})
	m, ok := scanTables(doc, DefaultKeywords())
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.token != "1.30" {
		t.Fatalf("expected the right neighbor first, got %q", m.token)
	}
}

func TestScanTables_NextRowFallback(t *testing.T) {
	doc := docWithTables(filing.Table{Rows: [][]string{
		{"", "2022", "2023"},
		{"Basic earnings per share"},
		{"", "1.10", "1.30"},
	}})
	m, ok := scanTables(doc, DefaultKeywords())
	if !ok {
		t.Fatalf("expected a match via the following row")
	}
	if m.token != "1.30" {
		t.Fatalf("expected 1.30 from the next row, got %q", m.token)
	}
	if m.method != MethodTable {
		t.Fatalf("next-row hits are still table matches, got %s", m.method)
	}
}

func TestScanTables_TierPriorityAcrossTables(t *testing.T) {
	// The diluted row sits in an earlier table, but basic anywhere beats
	// diluted anywhere.
	diluted := filing.Table{Rows: [][]string{
		{"Diluted earnings per share", "0.50"},
	}}
	basic := filing.Table{Rows: [][]string{
		{"Basic earnings per share", "0.55"},
	}}
	m, ok := scanTables(docWithTables(diluted, basic), DefaultKeywords())
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.tier != TierBasic || m.token != "0.55" {
		t.Fatalf("expected the basic match to win, got tier=%s token=%q", m.tier, m.token)
	}
}

func TestScanTables_SkipsNonDecimalCells(t *testing.T) {
	// Years and share counts are not candidate values; the scan keeps
	// going until a decimal-bearing cell appears.
	doc := docWithTables(filing.Table{Rows: [][]string{
		{"Basic earnings per share", "2023", "1,234,567", "0.85"},
	}})
	m, ok := scanTables(doc, DefaultKeywords())
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.token != "0.85" {
		t.Fatalf("expected 0.85, got %q", m.token)
	}
}

func TestScanTables_ParenthesizedAndCurrencyCells(t *testing.T) {
	doc := docWithTables(filing.Table{Rows: [][]string{
		{"", "2022", "2023"},
		{"Net loss per share - basic", "($0.12)", "($0.41)"},
	}})
	m, ok := scanTables(doc, DefaultKeywords())
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.token != "($0.41)" {
		t.Fatalf("expected the raw token ($0.41), got %q", m.token)
	}
}

func TestScanTables_WhitespaceNormalizedPhraseMatch(t *testing.T) {
	doc := docWithTables(filing.Table{Rows: [][]string{
		{"Basic  earnings\nper share", "0.73"},
	}})
	if _, ok := scanTables(doc, DefaultKeywords()); !ok {
		t.Fatalf("expected a line-wrapped label to match")
	}
}

func TestScanTables_NoKeyword(t *testing.T) {
	doc := docWithTables(filing.Table{Rows: [][]string{
		{"Revenue", "10,000.00"},
	}})
	if _, ok := scanTables(doc, DefaultKeywords()); ok {
		t.Fatalf("expected no match without an EPS keyword")
	}
}

func TestScanTables_KeywordWithoutValueAnywhere(t *testing.T) {
	doc := docWithTables(filing.Table{Rows: [][]string{
		{"Basic earnings per share", "see note 4"},
		{"Footnote text"},
	}})
	if _, ok := scanTables(doc, DefaultKeywords()); ok {
		t.Fatalf("expected no match when no row holds a numeric value")
	}
}
