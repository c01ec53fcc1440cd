// Package sequence establishes the deterministic order of sibling
// documents and derives prev/next navigation neighbors from it.
package sequence

import (
	"sort"

	"git.home.luguber.info/inful/taxsitegen/internal/corpus"
)

// Item is the slice of a document the sequencer needs: its identity plus
// the fields its kind orders by.
type Item struct {
	Slug          string
	Title         string
	Number        string
	Year          string
	OrderIndex    int
	LawSlug       string
	UniqueCode    string
	Country1Slug  string
	PublishedDate string
}

// Order returns the items sorted into their kind's canonical sequence.
// The input slice is not modified.
func Order(kind corpus.Kind, items []Item) []Item {
	ordered := make([]Item, len(items))
	copy(ordered, items)

	switch kind {
	case corpus.KindArticle:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].OrderIndex != ordered[j].OrderIndex {
				return ordered[i].OrderIndex < ordered[j].OrderIndex
			}
			return ordered[i].Number < ordered[j].Number
		})
	case corpus.KindDecision:
		// Newest first
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Year != ordered[j].Year {
				return ordered[i].Year > ordered[j].Year
			}
			return ordered[i].Number > ordered[j].Number
		})
	case corpus.KindGuidance:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].LawSlug != ordered[j].LawSlug {
				return ordered[i].LawSlug < ordered[j].LawSlug
			}
			return ordered[i].UniqueCode < ordered[j].UniqueCode
		})
	case corpus.KindTreaty:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Country1Slug < ordered[j].Country1Slug
		})
	case corpus.KindBlog:
		// Newest first
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].PublishedDate > ordered[j].PublishedDate
		})
	}

	return ordered
}

// Neighbors returns the previous and next siblings of the document with
// the given slug within an ordered list. Navigation exists only for
// articles and blogs; other kinds, unknown slugs, and lists with fewer
// than two items yield no neighbors.
func Neighbors(kind corpus.Kind, slug string, ordered []Item) (prev, next *Item) {
	if kind != corpus.KindArticle && kind != corpus.KindBlog {
		return nil, nil
	}
	if len(ordered) < 2 {
		return nil, nil
	}

	index := -1
	for i := range ordered {
		if ordered[i].Slug == slug {
			index = i
			break
		}
	}
	if index == -1 {
		// Slug collision or stale reference; fail silent, no navigation.
		return nil, nil
	}

	if index > 0 {
		prev = &ordered[index-1]
	}
	if index < len(ordered)-1 {
		next = &ordered[index+1]
	}
	return prev, next
}
