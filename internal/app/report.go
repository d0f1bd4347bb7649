package app

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// runSummary aggregates a whole run for the closing log lines and the
// optional PDF report.
type runSummary struct {
	Files    int
	Found    int
	Errors   int
	Elapsed  time.Duration
	Average  time.Duration
	Keywords []keywordCount
}

// keywordCount is how many successful matches a keyword phrase produced.
type keywordCount struct {
	Keyword string
	Count   int
}

func summarize(results []FileResult, elapsed time.Duration) runSummary {
	s := runSummary{Files: len(results), Elapsed: elapsed}
	freq := make(map[string]int)
	for _, r := range results {
		if r.Err != nil {
			s.Errors++
		}
		if r.Result.Found {
			s.Found++
			freq[r.Result.Provenance.Keyword]++
		}
	}
	if s.Files > 0 {
		s.Average = elapsed / time.Duration(s.Files)
	}
	for kw, n := range freq {
		s.Keywords = append(s.Keywords, keywordCount{Keyword: kw, Count: n})
	}
	sort.Slice(s.Keywords, func(i, j int) bool {
		if s.Keywords[i].Count != s.Keywords[j].Count {
			return s.Keywords[i].Count > s.Keywords[j].Count
		}
		return s.Keywords[i].Keyword < s.Keywords[j].Keyword
	})
	return s
}

func (s runSummary) log() {
	log.Info().
		Int("files", s.Files).
		Int("found", s.Found).
		Int("errors", s.Errors).
		Dur("elapsed", s.Elapsed).
		Dur("avgPerFile", s.Average).
		Msg("run complete")
	if len(s.Keywords) == 0 {
		log.Warn().Msg("no keyword produced a successful match")
		return
	}
	for _, kc := range s.Keywords {
		log.Info().Str("keyword", kc.Keyword).Int("matches", kc.Count).Msg("keyword frequency")
	}
}
