package eps

import (
	"regexp"
	"strconv"

	"github.com/zakriah-ibrahim/edgar-parser/internal/filing"
)

// Direction says where a table keeps its most recent reporting period.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionMostRecentLeft
	DirectionMostRecentRight
)

func (d Direction) String() string {
	switch d {
	case DirectionMostRecentLeft:
		return "most-recent-left"
	case DirectionMostRecentRight:
		return "most-recent-right"
	}
	return "unknown"
}

// headerRowLimit bounds how deep into a table we look for a header row.
const headerRowLimit = 5

var (
	yearPattern    = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	monthPattern   = regexp.MustCompile(`\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`)
	quarterPattern = regexp.MustCompile(`\bq([1-4])\b|\b(first|second|third|fourth)\s+quarter\b`)
)

var monthOrdinals = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var quarterOrdinals = map[string]int{"first": 1, "second": 2, "third": 3, "fourth": 4}

// detectDirection inspects the first rows of a table for period indicators
// (years, quarter labels, month-name dates) and compares their chronology
// against their column positions. Fewer than two orderable indicators in
// any candidate header row yields DirectionUnknown, never an error.
func detectDirection(t filing.Table) Direction {
	limit := len(t.Rows)
	if limit > headerRowLimit {
		limit = headerRowLimit
	}
	for _, row := range t.Rows[:limit] {
		type period struct{ ordinal, col int }
		var periods []period
		for col, cell := range row {
			if ord, ok := parsePeriod(cell); ok {
				periods = append(periods, period{ordinal: ord, col: col})
			}
		}
		if len(periods) < 2 {
			continue
		}
		recent, oldest := periods[0], periods[0]
		for _, p := range periods[1:] {
			if p.ordinal > recent.ordinal {
				recent = p
			}
			if p.ordinal < oldest.ordinal {
				oldest = p
			}
		}
		if recent.ordinal == oldest.ordinal {
			// Same period repeated across columns says nothing about
			// ordering; a later row may still carry the years.
			continue
		}
		if recent.col > oldest.col {
			return DirectionMostRecentRight
		}
		if recent.col < oldest.col {
			return DirectionMostRecentLeft
		}
	}
	return DirectionUnknown
}

// parsePeriod maps a header cell to a comparable ordinal on a month scale.
// Month-name dates beat quarter labels beat bare years when a cell holds
// several; a bare year counts as its final month so "2023" sorts after
// "March 31, 2023".
func parsePeriod(cell string) (int, bool) {
	s := normalizeText(cell)

	year := 0
	if m := yearPattern.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
	}
	if m := monthPattern.FindStringSubmatch(s); m != nil && year > 0 {
		return year*12 + monthOrdinals[m[1][:3]], true
	}
	if m := quarterPattern.FindStringSubmatch(s); m != nil {
		q := 0
		if m[1] != "" {
			q, _ = strconv.Atoi(m[1])
		} else {
			q = quarterOrdinals[m[2]]
		}
		if year > 0 {
			return year*12 + q*3, true
		}
		return q * 3, true
	}
	if year > 0 {
		return year*12 + 12, true
	}
	return 0, false
}
