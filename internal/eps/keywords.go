package eps

import (
	"regexp"
	"strings"
	"unicode"
)

// Tier is the priority rank of a keyword group. Lower values are searched
// first: a Basic match anywhere wins over any Diluted or Generic match.
type Tier int

const (
	TierBasic Tier = iota
	TierDiluted
	TierGeneric
)

func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierDiluted:
		return "diluted"
	case TierGeneric:
		return "generic"
	}
	return "unknown"
}

// TierOrder lists tiers in strict priority order.
func TierOrder() []Tier {
	return []Tier{TierBasic, TierDiluted, TierGeneric}
}

// Keywords is the process-wide keyword tier table. It is immutable after
// construction, so one instance may be shared across concurrent extractions.
type Keywords struct {
	tiers [3]tierPhrases
}

type tierPhrases struct {
	phrases    []string
	normalized []string
	patterns   []*regexp.Regexp
}

// NewKeywords builds a tier table from literal phrase lists. An empty list
// for a tier falls back to that tier's defaults. Phrases are matched
// case-insensitively with whitespace runs collapsed and en/em dashes folded
// to "-", so line-wrapped or typographically dashed labels still match.
func NewKeywords(basic, diluted, generic []string) *Keywords {
	k := &Keywords{}
	for tier, phrases := range map[Tier][]string{
		TierBasic:   orDefault(basic, defaultBasic),
		TierDiluted: orDefault(diluted, defaultDiluted),
		TierGeneric: orDefault(generic, defaultGeneric),
	} {
		tp := tierPhrases{
			phrases:    phrases,
			normalized: make([]string, len(phrases)),
			patterns:   make([]*regexp.Regexp, len(phrases)),
		}
		for i, p := range phrases {
			tp.normalized[i] = normalizeText(p)
			tp.patterns[i] = phrasePattern(tp.normalized[i])
		}
		k.tiers[tier] = tp
	}
	return k
}

// DefaultKeywords returns the built-in tier table.
func DefaultKeywords() *Keywords {
	return NewKeywords(nil, nil, nil)
}

// PhrasesFor returns the ordered phrase list for a tier.
func (k *Keywords) PhrasesFor(tier Tier) []string {
	if tier < TierBasic || tier > TierGeneric {
		return nil
	}
	return k.tiers[tier].phrases
}

func orDefault(phrases, fallback []string) []string {
	if len(phrases) == 0 {
		return fallback
	}
	return phrases
}

var defaultBasic = []string{
	"basic earnings per common share",
	"basic earnings per share",
	"basic net income per share",
	"net income per share - basic",
	"net earnings per share - basic",
	"earnings per share - basic",
	"income per share - basic",
	"loss per share - basic",
	"basic eps",
	"basic",
}

var defaultDiluted = []string{
	"diluted earnings per common share",
	"diluted earnings per share",
	"diluted net income per share",
	"net income per share - diluted",
	"net earnings per share - diluted",
	"earnings per share - diluted",
	"income per share - diluted",
	"loss per share - diluted",
	"per diluted common share",
	"per diluted share",
	"diluted eps",
	"diluted",
}

var defaultGeneric = []string{
	"earnings per common share",
	"earnings per share",
	"net income per common share",
	"net income per share",
	"net loss per share",
	"income per share",
	"loss per share",
	"eps",
	"per common share",
	"per share",
}

// normalizeText lowercases, folds dash variants to "-", and collapses
// whitespace runs (including non-breaking spaces) to single spaces.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case r == '–' || r == '—' || r == '―':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteByte('-')
		default:
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
