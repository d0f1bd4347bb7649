// Package eps locates a quarterly earnings-per-share figure inside a parsed
// HTML filing. Extraction is layered: a direction-aware scan of the
// document's tables runs first, and only when it yields nothing does a
// bounded-window regex search over the full text take over. Keyword tiers
// (basic > diluted > generic) order the search inside each layer.
package eps

import (
	"github.com/shopspring/decimal"

	"github.com/zakriah-ibrahim/edgar-parser/internal/filing"
)

// Method identifies which extraction layer produced a value.
type Method int

const (
	MethodTable Method = iota
	MethodRegex
)

func (m Method) String() string {
	if m == MethodRegex {
		return "Regex"
	}
	return "Table"
}

// Provenance records how a value was found: the layer, the literal keyword
// phrase that matched, and the phrase's tier.
type Provenance struct {
	Method  Method
	Keyword string
	Tier    Tier
}

// Result is the sole output of an extraction. Found is false when the
// document simply does not yield an EPS value; that is a normal outcome,
// not an error.
type Result struct {
	Found      bool
	Value      decimal.Decimal
	Provenance Provenance
}

// rawMatch is a located token plus its provenance, before normalization.
type rawMatch struct {
	token   string
	keyword string
	tier    Tier
	method  Method
}

type scanner func(*filing.Document, *Keywords) (rawMatch, bool)

// Extract runs the extraction layers in order and returns the first
// normalized value. It is a total function: any document, however
// malformed its content, produces exactly one Result and never a panic or
// an error. Safe for concurrent use; the document is only read and the
// keyword table is immutable.
func Extract(doc *filing.Document, kw *Keywords) Result {
	if kw == nil {
		kw = DefaultKeywords()
	}
	for _, scan := range []scanner{scanTables, scanText} {
		m, ok := scan(doc, kw)
		if !ok {
			continue
		}
		value, err := normalizeValue(m.token)
		if err != nil {
			// Scanners only hand back tokens that already normalized once.
			continue
		}
		return Result{
			Found: true,
			Value: value,
			Provenance: Provenance{
				Method:  m.method,
				Keyword: m.keyword,
				Tier:    m.tier,
			},
		}
	}
	return Result{}
}
