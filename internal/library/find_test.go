package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"The Matrix", "matrix"},
		{"Léon: The Professional", "leon professional"},
		{"Spider-Man", "spider man"},
		{"Tom & Jerry", "tom and jerry"},
		{"  Mr.   Robot ", "mr robot"},
		{"Frieren: Beyond Journey's End", "frieren beyond journeys end"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.in))
		})
	}
}

func TestLibrary_Find(t *testing.T) {
	ids := media.NewIssuer()
	lib := New()
	tv := strangerThings(t, ids)
	movie := wakeUpDeadMan(t, ids)
	anime := newAnime(t, ids, "Frieren: Beyond Journey's End", 28, 0)
	lib.Insert(tv)
	lib.Insert(movie)
	lib.Insert(anime)

	matches := lib.Find("stranger things", DefaultMinScore)
	require.NotEmpty(t, matches)
	assert.Same(t, tv, matches[0].Entity)
	assert.InDelta(t, 1.0, matches[0].Score, 0.0001)

	matches = lib.Find("frieren", DefaultMinScore)
	require.NotEmpty(t, matches)
	assert.Same(t, anime, matches[0].Entity)

	matches = lib.Find("Strnger Thngs", DefaultMinScore)
	require.NotEmpty(t, matches)
	assert.Same(t, tv, matches[0].Entity)

	assert.Empty(t, lib.Find("zzzz qqqq", DefaultMinScore))
	assert.Empty(t, lib.Find("   ", DefaultMinScore))
}

func TestLibrary_FindPartialMatch(t *testing.T) {
	ids := media.NewIssuer()
	lib := New()
	tv := strangerThings(t, ids)
	movie := wakeUpDeadMan(t, ids)
	anime := newAnime(t, ids, "Attack on Titan", 25, 0)
	lib.Insert(tv)
	lib.Insert(movie)
	lib.Insert(anime)

	for _, m := range lib.Find("a", DefaultMinScore) {
		assert.Less(t, m.Score, 1.0, "single letter promoted for %q", m.Entity.Common().Title)
	}

	matches := lib.Find("tit", DefaultMinScore)
	require.NotEmpty(t, matches)
	assert.Same(t, anime, matches[0].Entity)
	assert.InDelta(t, 1.0, matches[0].Score, 0.0001)

	// "ang" only occurs inside "stranger", never at the start of a word.
	for _, m := range lib.Find("ang", 0) {
		assert.Less(t, m.Score, 1.0, "mid-word hit promoted for %q", m.Entity.Common().Title)
	}
}

func TestPartialMatch(t *testing.T) {
	assert.True(t, partialMatch("stranger things", "stranger"))
	assert.True(t, partialMatch("stranger things", "thing"))
	assert.False(t, partialMatch("stranger things", "ranger"))
	assert.False(t, partialMatch("stranger things", "st"))
}
