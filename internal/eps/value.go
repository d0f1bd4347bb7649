package eps

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// valueToken matches a cell or token that plausibly holds an EPS figure:
// optional parentheses, currency symbol and sign, digits with optional
// thousands separators, and a mandatory decimal fraction. Requiring the
// fraction keeps years, page numbers and share counts from qualifying.
var valueToken = regexp.MustCompile(`(?i)^\(?\s*(?:US\$|\$|€|£)?\s*-?\d+(?:,\d{3})*\.\d+\s*\)?$`)

// looksNumeric reports whether s qualifies as a candidate EPS value.
func looksNumeric(s string) bool {
	return valueToken.MatchString(strings.TrimSpace(s))
}

var valueCleaner = strings.NewReplacer(
	"US$", "", "us$", "", "$", "", "€", "", "£", "",
	"(", "", ")", "", ",", "", " ", "", " ", "",
)

// normalizeValue converts a raw matched token into a signed decimal.
// Parenthesized values are negative, in the accounting convention; a token
// carrying both parentheses and an explicit minus sign stays negative.
func normalizeValue(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	negative := strings.Contains(s, "(")
	s = valueCleaner.Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse value %q: %w", raw, err)
	}
	if negative && d.Sign() > 0 {
		d = d.Neg()
	}
	return d, nil
}
