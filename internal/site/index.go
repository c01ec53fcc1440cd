package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/taxsitegen/internal/logfields"
	"git.home.luguber.info/inful/taxsitegen/internal/render"
)

// docEntry is one generated document as it appears in listings: index
// pages, the sitemap and the noscript block.
type docEntry struct {
	Slug        string
	Title       string
	Description string
	Preview     string
	LawSlug     string // guidances only
	Author      string // blogs only
}

// lawGroup collects one law's generated articles and decisions.
type lawGroup struct {
	LawFullName  string
	LawShortName string
	CountryName  string
	FlagCode     string
	Articles     []docEntry
	Decisions    []docEntry
}

// listing accumulates everything generated during a run, in output order.
type listing struct {
	Laws      []*lawGroup
	Guidances []docEntry
	Treaties  []docEntry
	Blogs     []docEntry
}

func (l *listing) articleSlugs() []string {
	var slugs []string
	for _, group := range l.Laws {
		for _, e := range group.Articles {
			slugs = append(slugs, e.Slug)
		}
	}
	return slugs
}

func (l *listing) decisionSlugs() []string {
	var slugs []string
	for _, group := range l.Laws {
		for _, e := range group.Decisions {
			slugs = append(slugs, e.Slug)
		}
	}
	return slugs
}

func slugsOf(entries []docEntry) []string {
	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		slugs = append(slugs, e.Slug)
	}
	return slugs
}

// writeIndexPages writes <kind>/index.html for every kind that produced
// documents.
func (g *Generator) writeIndexPages(renderer *render.Renderer, l *listing) {
	pages := []struct {
		docType string
		slugs   []string
		list    string
	}{
		{"articles", l.articleSlugs(), g.lawGroupedListHTML(l.Laws, "articles")},
		{"decisions", l.decisionSlugs(), g.lawGroupedListHTML(l.Laws, "decisions")},
		{"guidances", slugsOf(l.Guidances), g.flatListHTML(l.Guidances, "guidances")},
		{"tax-treaties", slugsOf(l.Treaties), g.flatListHTML(l.Treaties, "tax-treaties")},
		{"blogs", slugsOf(l.Blogs), g.flatListHTML(l.Blogs, "blogs")},
	}

	for _, p := range pages {
		if len(p.slugs) == 0 {
			continue
		}
		html := renderer.CollectionPage(p.docType, p.slugs, p.list)
		path := filepath.Join(g.cfg.Output.Dir, p.docType, "index.html")
		if err := os.WriteFile(path, []byte(html), 0644); err != nil {
			slog.Error("Failed to write index page",
				logfields.Kind(p.docType), logfields.Error(err))
			continue
		}
		slog.Debug("Generated index page", logfields.Kind(p.docType), logfields.Count(len(p.slugs)))
	}
}

// lawGroupedListHTML renders article or decision listings grouped by law.
func (g *Generator) lawGroupedListHTML(groups []*lawGroup, docType string) string {
	var b strings.Builder
	for _, group := range groups {
		entries := group.Articles
		if docType == "decisions" {
			entries = group.Decisions
		}
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, `<li class="law-section"><h3>%s</h3><ul>`, render.EscapeHTML(group.LawFullName))
		for _, e := range entries {
			g.writeListItem(&b, docType, e)
		}
		b.WriteString("</ul></li>")
	}
	return b.String()
}

// flatListHTML renders an ungrouped document listing.
func (g *Generator) flatListHTML(entries []docEntry, docType string) string {
	var b strings.Builder
	for _, e := range entries {
		g.writeListItem(&b, docType, e)
	}
	return b.String()
}

func (g *Generator) writeListItem(b *strings.Builder, docType string, e docEntry) {
	fmt.Fprintf(b, `
            <li class="document-item">
                <a href="%s/%s/%s">
                    <strong>%s</strong>
                </a>
                <div class="document-description">%s</div>
                <div class="document-preview">%s</div>
            </li>`,
		g.cfg.Site.PublicPath, docType, e.Slug,
		render.EscapeHTML(valueOr(e.Title, "Untitled")),
		e.Description,
		render.EscapeHTML(e.Preview))
}
