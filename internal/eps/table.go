package eps

import (
	"strings"

	"github.com/zakriah-ibrahim/edgar-parser/internal/filing"
)

// scanTables searches every table for the highest-priority keyword match
// that has a usable numeric neighbor. Tiers order the outer loop, so the
// first hit is already the best one and the scan short-circuits.
func scanTables(doc *filing.Document, kw *Keywords) (rawMatch, bool) {
	directions := make([]Direction, len(doc.Tables))
	for i, t := range doc.Tables {
		directions[i] = detectDirection(t)
	}

	for _, tier := range TierOrder() {
		tp := kw.tiers[tier]
		for pi, phrase := range tp.normalized {
			for ti, table := range doc.Tables {
				dir := directions[ti]
				for ri, row := range table.Rows {
					for ci, cell := range row {
						if !strings.Contains(normalizeText(cell), phrase) {
							continue
						}
						tok, ok := valueInRow(row, ci, dir)
						if !ok && ri+1 < len(table.Rows) {
							// Some layouts split the label and its value
							// across two rows.
							tok, ok = valueInNextRow(table.Rows[ri+1], ci, dir)
						}
						if ok {
							return rawMatch{
								token:   tok,
								keyword: tp.phrases[pi],
								tier:    tier,
								method:  MethodTable,
							}, true
						}
					}
				}
			}
		}
	}
	return rawMatch{}, false
}

// valueInRow picks the candidate cell for a keyword found at column ci.
// MostRecentRight takes the right-most candidate in the row,
// MostRecentLeft the left-most, skipping the keyword cell itself. Unknown
// direction checks neighbors outward from the keyword, right side first at
// each distance.
func valueInRow(row []string, ci int, dir Direction) (string, bool) {
	switch dir {
	case DirectionMostRecentRight:
		for j := len(row) - 1; j >= 0; j-- {
			if j == ci {
				continue
			}
			if tok, ok := candidateAt(row, j); ok {
				return tok, true
			}
		}
	case DirectionMostRecentLeft:
		for j := 0; j < len(row); j++ {
			if j == ci {
				continue
			}
			if tok, ok := candidateAt(row, j); ok {
				return tok, true
			}
		}
	default:
		for d := 1; d < len(row); d++ {
			if tok, ok := candidateAt(row, ci+d); ok {
				return tok, true
			}
			if tok, ok := candidateAt(row, ci-d); ok {
				return tok, true
			}
		}
	}
	return "", false
}

// valueInNextRow applies the same directional preference to the row below
// the keyword row. The whole row is in play since the label sat above it;
// with unknown direction the search fans out from the keyword's column.
func valueInNextRow(row []string, ci int, dir Direction) (string, bool) {
	if len(row) == 0 {
		return "", false
	}
	switch dir {
	case DirectionMostRecentRight:
		for j := len(row) - 1; j >= 0; j-- {
			if tok, ok := candidateAt(row, j); ok {
				return tok, true
			}
		}
	case DirectionMostRecentLeft:
		for j := 0; j < len(row); j++ {
			if tok, ok := candidateAt(row, j); ok {
				return tok, true
			}
		}
	default:
		anchor := ci
		if anchor >= len(row) {
			anchor = len(row) - 1
		}
		if tok, ok := candidateAt(row, anchor); ok {
			return tok, true
		}
		for d := 1; d < len(row); d++ {
			if tok, ok := candidateAt(row, anchor+d); ok {
				return tok, true
			}
			if tok, ok := candidateAt(row, anchor-d); ok {
				return tok, true
			}
		}
	}
	return "", false
}

// candidateAt accepts a cell only when it both looks numeric and survives
// normalization, so a token that merely resembles a number keeps the scan
// going instead of producing a false positive.
func candidateAt(row []string, j int) (string, bool) {
	if j < 0 || j >= len(row) {
		return "", false
	}
	s := strings.TrimSpace(row[j])
	if !looksNumeric(s) {
		return "", false
	}
	if _, err := normalizeValue(s); err != nil {
		return "", false
	}
	return s, true
}
