package eps

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zakriah-ibrahim/edgar-parser/internal/filing"
)

// fallbackWindow bounds how many characters may separate a keyword from its
// value in free text.
const fallbackWindow = 50

// scanText is the fallback when no table produced a match: tier-ordered
// phrase search over the document's full normalized text, accepting the
// first phrase occurrence that is trailed by a parseable numeric token
// within the window.
func scanText(doc *filing.Document, kw *Keywords) (rawMatch, bool) {
	text := normalizeText(doc.Text)
	for _, tier := range TierOrder() {
		tp := kw.tiers[tier]
		for pi, pattern := range tp.patterns {
			for _, m := range pattern.FindAllStringSubmatch(text, -1) {
				tok := strings.TrimSpace(m[1])
				if _, err := normalizeValue(tok); err != nil {
					continue
				}
				return rawMatch{
					token:   tok,
					keyword: tp.phrases[pi],
					tier:    tier,
					method:  MethodRegex,
				}, true
			}
		}
	}
	return rawMatch{}, false
}

// The scanned text is already lowercased by normalizeText.
var fallbackValue = `(\(?\s*(?:us\$|\$|€|£)?\s*-?\d+(?:,\d{3})*\.\d+\s*\)?)`

// phrasePattern compiles a normalized phrase into its fallback pattern:
// the phrase as literal words separated by flexible whitespace, then up to
// fallbackWindow intervening characters, then a numeric token.
func phrasePattern(normalized string) *regexp.Regexp {
	words := strings.Fields(normalized)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	expr := `\b` + strings.Join(words, `\s+`) + `\b.{0,` + strconv.Itoa(fallbackWindow) + `}?` + fallbackValue
	return regexp.MustCompile(expr)
}
