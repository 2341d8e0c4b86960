package library

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

// DefaultMinScore is the similarity below which Find drops a title.
const DefaultMinScore = 0.70

// Match is one fuzzy search hit.
type Match struct {
	Entity media.Entity
	Score  float64 // Jaro-Winkler similarity (0.0-1.0)
}

// minPartialLen is the shortest normalized query that may match part of a title.
const minPartialLen = 3

// Find returns entities whose title is similar to query, best first.
// Ties keep insertion order. A query of at least minPartialLen characters
// that starts a word of the normalized title counts as a perfect score, so
// partial queries like "stranger" still match.
func (l *Library) Find(query string, minScore float64) []Match {
	q := CleanTitle(query)
	if q == "" {
		return nil
	}

	var matches []Match
	for _, e := range l.all {
		title := CleanTitle(e.Common().Title)
		score := float64(edlib.JaroWinklerSimilarity(q, title))
		if partialMatch(title, q) {
			score = 1.0
		}
		if score >= minScore {
			matches = append(matches, Match{Entity: e, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// partialMatch reports whether q occurs in title starting at a word boundary.
func partialMatch(title, q string) bool {
	if utf8.RuneCountInString(q) < minPartialLen {
		return false
	}
	return strings.HasPrefix(title, q) || strings.Contains(title, " "+q)
}

// CleanTitle normalizes a title for matching: lowercase, accents removed,
// leading article stripped, punctuation dropped, whitespace collapsed.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
