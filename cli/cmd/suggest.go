package cmd

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/spritelab/pkg"
)

// maxSuggestions bounds the candidates offered in a "did you mean" hint.
const maxSuggestions = 3

// suggest returns the candidates most similar to term, best first.
func suggest(term string, candidates []string) []string {
	matches := fuzzy.Find(term, candidates)

	// Fuzzy matching needs every rune of term in order. Fall back to
	// matching the other way around so "home-outline" still suggests "home".
	if len(matches) == 0 {
		for _, c := range candidates {
			if c != "" && fuzzy.Find(c, []string{term}).Len() > 0 {
				matches = append(matches, fuzzy.Match{Str: c})
			}
		}
	}

	out := make([]string, 0, min(len(matches), maxSuggestions))

	for _, m := range matches {
		if m.Str == term {
			continue
		}

		if out = append(out, m.Str); len(out) == maxSuggestions {
			break
		}
	}

	return out
}

// didYouMean appends a hint naming the candidates most similar to term to
// the message of err.
func didYouMean(err *pkg.Error, term string, candidates []string) *pkg.Error {
	names := suggest(term, candidates)
	if len(names) == 0 {
		return err
	}

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}

	return err.Withf("%s Did you mean %s?", err.Message(), joinOr(quoted))
}

func joinOr(s []string) string {
	switch len(s) {
	case 0:
		return ""
	case 1:
		return s[0]
	default:
		return strings.Join(s[:len(s)-1], ", ") + " or " + s[len(s)-1]
	}
}
