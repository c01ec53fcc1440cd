package xref

import (
	"git.home.luguber.info/inful/taxsitegen/internal/corpus"
	"git.home.luguber.info/inful/taxsitegen/internal/slug"
)

// Entry is one indexed document: the target of a resolved reference.
type Entry struct {
	Title string
	Slug  string
	Kind  corpus.Kind
}

// Index maps derived slugs to their documents, one namespace per kind.
// It is built once per corpus load by rederiving every eligible document's
// slug, so a document that disappears from the sources automatically
// disappears from everyone's resolved links on the next run.
type Index struct {
	byKind map[corpus.Kind]map[string]Entry
	counts map[corpus.Kind]int
}

// BuildIndex derives slugs for every eligible document in corpus load
// order. The first document to produce a given slug wins; later documents
// with colliding identifying fields are unreachable, matching the
// first-match scan the index replaces.
func BuildIndex(c *corpus.Corpus) *Index {
	idx := &Index{
		byKind: make(map[corpus.Kind]map[string]Entry),
		counts: make(map[corpus.Kind]int),
	}
	for _, k := range corpus.Kinds() {
		idx.byKind[k] = make(map[string]Entry)
	}

	for _, country := range c.Countries {
		for _, law := range country.Laws {
			for _, a := range law.Articles {
				if !a.Eligible() {
					continue
				}
				idx.add(Entry{
					Title: title(a.Title),
					Slug:  slug.ForArticle(law.ShortName, a.Number.String(), country.Name),
					Kind:  corpus.KindArticle,
				})
			}
			for _, d := range law.Decisions {
				if !d.Eligible() {
					continue
				}
				idx.add(Entry{
					Title: title(d.Title),
					Slug:  slug.ForDecision(law.ShortName, d.Number.String(), d.Year.String(), d.Type, country.Name),
					Kind:  corpus.KindDecision,
				})
			}
			for _, g := range law.Guidelines {
				if !g.Eligible() {
					continue
				}
				lawSlug := g.LawSlug
				if lawSlug == "" {
					lawSlug = slug.Normalize(country.Name) + "-" + law.ShortName
				}
				idx.add(Entry{
					Title: title(g.Title),
					Slug:  slug.ForGuidance(lawSlug, g.Type, g.UniqueCode),
					Kind:  corpus.KindGuidance,
				})
			}
			for _, t := range law.Treaties {
				if !t.Eligible() {
					continue
				}
				idx.add(Entry{
					Title: title(t.Title),
					Slug:  slug.ForTreaty(t.Country1Slug, t.Country2Alpha3Code),
					Kind:  corpus.KindTreaty,
				})
			}
		}
	}

	for _, g := range c.Guidances {
		if !g.Eligible() {
			continue
		}
		idx.add(Entry{
			Title: title(g.Title),
			Slug:  slug.ForGuidance(g.LawSlug, g.Type, g.UniqueCode),
			Kind:  corpus.KindGuidance,
		})
	}
	for _, t := range c.Treaties {
		if !t.Eligible() {
			continue
		}
		idx.add(Entry{
			Title: title(t.Title),
			Slug:  slug.ForTreaty(t.Country1Slug, t.Country2Alpha3Code),
			Kind:  corpus.KindTreaty,
		})
	}
	for _, b := range c.Blogs {
		if !b.Eligible() {
			continue
		}
		idx.add(Entry{
			Title: title(b.Title),
			Slug:  slug.ForBlog(b.Title),
			Kind:  corpus.KindBlog,
		})
	}

	return idx
}

func (i *Index) add(e Entry) {
	ns := i.byKind[e.Kind]
	if _, exists := ns[e.Slug]; exists {
		return
	}
	ns[e.Slug] = e
	i.counts[e.Kind]++
}

// Lookup returns the entry for a kind/slug pair.
func (i *Index) Lookup(kind corpus.Kind, s string) (Entry, bool) {
	e, ok := i.byKind[kind][s]
	return e, ok
}

// Count returns the number of indexed documents of a kind.
func (i *Index) Count(kind corpus.Kind) int {
	return i.counts[kind]
}

func title(t string) string {
	if t == "" {
		return "Untitled"
	}
	return t
}
