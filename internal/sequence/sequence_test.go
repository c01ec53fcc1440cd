package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/taxsitegen/internal/corpus"
)

func TestOrderArticles(t *testing.T) {
	items := []Item{
		{Slug: "a-2", Number: "2", OrderIndex: 2},
		{Slug: "a-1", Number: "1", OrderIndex: 1},
	}

	ordered := Order(corpus.KindArticle, items)

	require.Len(t, ordered, 2)
	assert.Equal(t, "1", ordered[0].Number)
	assert.Equal(t, "2", ordered[1].Number)
	// Input untouched
	assert.Equal(t, "2", items[0].Number)
}

func TestOrderArticles_NumberBreaksTies(t *testing.T) {
	items := []Item{
		{Slug: "a-1ter", Number: "1-ter", OrderIndex: 1},
		{Slug: "a-1bis", Number: "1-bis", OrderIndex: 1},
	}

	ordered := Order(corpus.KindArticle, items)
	assert.Equal(t, "1-bis", ordered[0].Number)
}

func TestOrderDecisions_NewestFirst(t *testing.T) {
	items := []Item{
		{Slug: "d-old", Number: "3", Year: "2022"},
		{Slug: "d-new", Number: "1", Year: "2025"},
		{Slug: "d-new-2", Number: "2", Year: "2025"},
	}

	ordered := Order(corpus.KindDecision, items)

	assert.Equal(t, "d-new-2", ordered[0].Slug)
	assert.Equal(t, "d-new", ordered[1].Slug)
	assert.Equal(t, "d-old", ordered[2].Slug)
}

func TestOrderGuidances(t *testing.T) {
	items := []Item{
		{Slug: "g-2", LawSlug: "uae-vat", UniqueCode: "B"},
		{Slug: "g-1", LawSlug: "uae-cit", UniqueCode: "Z"},
		{Slug: "g-3", LawSlug: "uae-vat", UniqueCode: "A"},
	}

	ordered := Order(corpus.KindGuidance, items)
	assert.Equal(t, []string{"g-1", "g-3", "g-2"}, slugs(ordered))
}

func TestOrderBlogs_NewestFirst(t *testing.T) {
	items := []Item{
		{Slug: "b-old", PublishedDate: "2023-05-01"},
		{Slug: "b-new", PublishedDate: "2025-01-15"},
	}

	ordered := Order(corpus.KindBlog, items)
	assert.Equal(t, "b-new", ordered[0].Slug)
}

func TestNeighbors(t *testing.T) {
	ordered := Order(corpus.KindArticle, []Item{
		{Slug: "a-2", Number: "2", OrderIndex: 2},
		{Slug: "a-1", Number: "1", OrderIndex: 1},
	})

	prev, next := Neighbors(corpus.KindArticle, "a-2", ordered)
	require.NotNil(t, prev)
	assert.Equal(t, "a-1", prev.Slug)
	assert.Nil(t, next)

	prev, next = Neighbors(corpus.KindArticle, "a-1", ordered)
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "a-2", next.Slug)
}

func TestNeighbors_OnlyArticlesAndBlogs(t *testing.T) {
	ordered := []Item{{Slug: "d-1"}, {Slug: "d-2"}}

	for _, kind := range []corpus.Kind{corpus.KindDecision, corpus.KindGuidance, corpus.KindTreaty} {
		prev, next := Neighbors(kind, "d-1", ordered)
		assert.Nil(t, prev, "kind %s", kind)
		assert.Nil(t, next, "kind %s", kind)
	}

	prev, next := Neighbors(corpus.KindBlog, "d-1", ordered)
	assert.Nil(t, prev)
	assert.NotNil(t, next)
}

func TestNeighbors_UnknownSlugFailsSilent(t *testing.T) {
	ordered := []Item{{Slug: "a-1"}, {Slug: "a-2"}}

	prev, next := Neighbors(corpus.KindArticle, "a-missing", ordered)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestNeighbors_SingleSibling(t *testing.T) {
	prev, next := Neighbors(corpus.KindArticle, "a-1", []Item{{Slug: "a-1"}})
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func slugs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Slug
	}
	return out
}
