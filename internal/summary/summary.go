// Package summary turns raw document text into a frequency-ranked keyword
// summary. All functions are pure and deterministic.
package summary

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoContentSentinel is returned when no token survives filtering.
const NoContentSentinel = "No significant content found"

// Summarize ranks the tokens of text by occurrence count and renders the top
// Options.Length of them as "token (count)" entries joined by ", ".
//
// Tokens are split on whitespace, lowercased and stripped of leading and
// trailing non-alphanumeric runes. Tokens shorter than Options.MinWordLength
// are dropped, as are stopwords when Options.ExcludeCommon is set. Ties in
// count are broken by lexicographic token order so the output is reproducible
// for a fixed input.
func Summarize(text string, opts Options) string {
	counts := make(map[string]int)
	for _, raw := range strings.Fields(text) {
		tok := normalize(raw)
		if tok == "" || utf8.RuneCountInString(tok) < opts.MinWordLength {
			continue
		}
		if opts.ExcludeCommon {
			if _, common := stopwords[tok]; common {
				continue
			}
		}
		counts[tok]++
	}

	type keyword struct {
		token string
		count int
	}
	ranked := make([]keyword, 0, len(counts))
	for tok, n := range counts {
		ranked = append(ranked, keyword{token: tok, count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].token < ranked[j].token
	})

	if opts.Length < len(ranked) {
		if opts.Length < 0 {
			ranked = ranked[:0]
		} else {
			ranked = ranked[:opts.Length]
		}
	}
	if len(ranked) == 0 {
		return NoContentSentinel
	}

	entries := make([]string, len(ranked))
	for i, kw := range ranked {
		entries[i] = fmt.Sprintf("%s (%d)", kw.token, kw.count)
	}
	return strings.Join(entries, ", ")
}

// WordCount counts whitespace-delimited tokens of raw text, with no
// normalization or filtering.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Paragraphs yields the non-blank fragments of text delimited by blank lines.
// The sequence is lazy and can be ranged over more than once.
func Paragraphs(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for p := range strings.SplitSeq(text, "\n\n") {
			if strings.TrimSpace(p) == "" {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func normalize(raw string) string {
	lowered := strings.ToLower(raw)
	return strings.TrimFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
