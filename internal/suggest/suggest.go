// Package suggest produces "did you mean" hints for an unrecognized
// identifier, fuzzy-matched against the fixed keyword vocabulary. It exists
// purely to populate diag.Diagnostic.Suggest; it never changes what parses
// or what diagnostic Kind is reported.
package suggest

import (
	"sort"

	"github.com/avian-lovelace/compiler/core/token"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Keyword returns the keyword text closest to got, or "" if no keyword
// matches (RankFindFold only matches a keyword that contains every letter
// of got, in order, ignoring case).
func Keyword(got string) string {
	return closest(got, keywordCandidates())
}

func keywordCandidates() []string {
	names := make([]string, 0, len(token.Keywords))
	for name := range token.Keywords {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic candidate order for a deterministic winner on ties
	return names
}

func closest(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i].Distance < ranks[j].Distance })
	return ranks[0].Target
}
