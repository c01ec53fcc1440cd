// Package site assembles the complete static output of a generation run:
// document pages, per-kind index pages, sitemap, robots.txt, web manifest
// and the host page's noscript block.
package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/taxsitegen/internal/config"
	"git.home.luguber.info/inful/taxsitegen/internal/corpus"
	"git.home.luguber.info/inful/taxsitegen/internal/logfields"
	"git.home.luguber.info/inful/taxsitegen/internal/metrics"
	"git.home.luguber.info/inful/taxsitegen/internal/render"
	"git.home.luguber.info/inful/taxsitegen/internal/sequence"
	"git.home.luguber.info/inful/taxsitegen/internal/slug"
	"git.home.luguber.info/inful/taxsitegen/internal/state"
	"git.home.luguber.info/inful/taxsitegen/internal/xref"
)

// Generator runs one complete generation pass over the corpus.
type Generator struct {
	cfg       *config.Config
	recorder  metrics.Recorder
	cache     *state.Cache
	publisher xref.Publisher
	runID     string
}

// NewGenerator wires a generator. cache and publisher may be nil; a nil
// recorder defaults to NoopRecorder.
func NewGenerator(cfg *config.Config, recorder metrics.Recorder, cache *state.Cache, publisher xref.Publisher, runID string) *Generator {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Generator{cfg: cfg, recorder: recorder, cache: cache, publisher: publisher, runID: runID}
}

// Summary reports what one run produced.
type Summary struct {
	Generated map[string]int
	Skipped   int
	Excluded  int
}

// Total returns the number of documents written this run.
func (s *Summary) Total() int {
	total := 0
	for _, n := range s.Generated {
		total += n
	}
	return total
}

// Run loads the corpus, generates every document and site artifact, and
// returns the run summary. Per-document failures are logged and skipped;
// only output-level failures abort the run.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	slog.Info("Starting site generation",
		logfields.RunID(g.runID), logfields.File(g.cfg.Output.Dir))

	loader := corpus.NewLoader(&g.cfg.Data)
	c := loader.Load()

	index := xref.BuildIndex(c)
	resolver := xref.NewResolver(index, g.publisher, g.recorder, g.runID)
	renderer := render.New(&g.cfg.Site)

	if err := g.prepareOutput(); err != nil {
		return nil, err
	}

	summary := &Summary{Generated: make(map[string]int)}
	listing := &listing{}

	g.generateLaws(ctx, c, resolver, renderer, summary, listing)
	g.generateGuidances(ctx, c, resolver, renderer, summary, listing)
	g.generateTreaties(ctx, c, resolver, renderer, summary, listing)
	g.generateBlogs(ctx, c, resolver, renderer, summary, listing)

	g.writeIndexPages(renderer, listing)
	if err := g.writeSitemap(listing); err != nil {
		return nil, err
	}
	if err := g.writeRobots(); err != nil {
		return nil, err
	}
	if err := g.writeManifest(); err != nil {
		return nil, err
	}

	if g.cfg.Output.IndexHTMLPath != "" {
		if err := g.patchNoscript(listing); err != nil {
			slog.Warn("Failed to patch host index.html",
				logfields.File(g.cfg.Output.IndexHTMLPath), logfields.Error(err))
		}
	}

	g.recorder.RunCompleted(time.Since(start))
	for _, kind := range corpus.Kinds() {
		slog.Info("Generated documents",
			logfields.Kind(kind.Segment()), logfields.Count(summary.Generated[kind.Segment()]))
	}
	slog.Info("Site generation completed",
		logfields.RunID(g.runID),
		logfields.Count(summary.Total()),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	if summary.Total() == 0 && summary.Skipped == 0 {
		slog.Warn("Run produced no documents; check data configuration")
	}

	return summary, nil
}

func (g *Generator) prepareOutput() error {
	if g.cfg.Output.Clean {
		if err := os.RemoveAll(g.cfg.Output.Dir); err != nil {
			return fmt.Errorf("clean output directory: %w", err)
		}
	}
	for _, kind := range corpus.Kinds() {
		dir := filepath.Join(g.cfg.Output.Dir, kind.Segment())
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return nil
}

func (g *Generator) generateLaws(ctx context.Context, c *corpus.Corpus, resolver *xref.Resolver, renderer *render.Renderer, summary *Summary, l *listing) {
	for _, country := range c.Countries {
		for _, law := range country.Laws {
			group := &lawGroup{
				LawFullName:  law.FullName,
				LawShortName: law.ShortName,
				CountryName:  country.Name,
				FlagCode:     country.FlagCode,
			}

			articles := make(map[string]corpus.Article)
			var articleItems []sequence.Item
			for _, a := range law.Articles {
				if !a.Eligible() {
					g.recorder.DocumentExcluded("articles")
					summary.Excluded++
					slog.Debug("Excluding ineligible article",
						logfields.Law(law.ShortName), logfields.Slug(a.Title))
					continue
				}
				s := slug.ForArticle(law.ShortName, a.Number.String(), country.Name)
				if _, dup := articles[s]; dup {
					continue
				}
				articles[s] = a
				articleItems = append(articleItems, sequence.Item{
					Slug:       s,
					Title:      a.Title,
					Number:     a.Number.String(),
					OrderIndex: a.OrderIndex,
				})
			}
			orderedArticles := sequence.Order(corpus.KindArticle, articleItems)

			for _, item := range orderedArticles {
				a := articles[item.Slug]
				prev, next := sequence.Neighbors(corpus.KindArticle, item.Slug, orderedArticles)
				related := resolver.Resolve(ctx, a.RelatedDocs, xref.Source{Slug: item.Slug, Kind: "articles"})
				g.writeDocument(ctx, corpus.KindArticle, item.Slug, fingerprint(a), summary, func() string {
					return renderer.Article(a, law, country.Country, item.Slug, related, prev, next)
				})
				group.Articles = append(group.Articles, docEntry{
					Slug:        item.Slug,
					Title:       a.Title,
					Description: fmt.Sprintf("Article %s • Order: %d", a.Number, a.OrderIndex),
					Preview:     render.Truncate(a.TextOnly, 200),
				})
			}

			decisions := make(map[string]corpus.Decision)
			var decisionItems []sequence.Item
			for _, d := range law.Decisions {
				if !d.Eligible() {
					g.recorder.DocumentExcluded("decisions")
					summary.Excluded++
					slog.Debug("Excluding ineligible decision",
						logfields.Law(law.ShortName), logfields.Slug(d.Title))
					continue
				}
				if d.Number == "" && d.Year == "" {
					g.recorder.AmbiguousDecisionSlug()
					slog.Warn("Decision slug derived without number and year",
						logfields.Law(law.ShortName), logfields.Slug(d.Title))
				}
				s := slug.ForDecision(law.ShortName, d.Number.String(), d.Year.String(), d.Type, country.Name)
				if _, dup := decisions[s]; dup {
					continue
				}
				decisions[s] = d
				decisionItems = append(decisionItems, sequence.Item{
					Slug:   s,
					Title:  d.Title,
					Number: d.Number.String(),
					Year:   d.Year.String(),
				})
			}
			orderedDecisions := sequence.Order(corpus.KindDecision, decisionItems)

			for _, item := range orderedDecisions {
				d := decisions[item.Slug]
				related := resolver.Resolve(ctx, d.RelatedDocs, xref.Source{Slug: item.Slug, Kind: "decisions"})
				g.writeDocument(ctx, corpus.KindDecision, item.Slug, fingerprint(d), summary, func() string {
					return renderer.Decision(d, law, country.Country, item.Slug, related)
				})
				group.Decisions = append(group.Decisions, docEntry{
					Slug:        item.Slug,
					Title:       d.Title,
					Description: fmt.Sprintf("%s • Number: %s • Year: %s", valueOr(d.Type, "Decision"), d.Number, d.Year),
					Preview:     render.Truncate(d.TextOnly, 200),
				})
			}

			if len(group.Articles) > 0 || len(group.Decisions) > 0 {
				l.Laws = append(l.Laws, group)
			}
		}
	}
}

func (g *Generator) generateGuidances(ctx context.Context, c *corpus.Corpus, resolver *xref.Resolver, renderer *render.Renderer, summary *Summary, l *listing) {
	var all []corpus.Guidance

	// Embedded guidelines come first; standalone files after, matching
	// corpus load order.
	for _, country := range c.Countries {
		for _, law := range country.Laws {
			for _, gd := range law.Guidelines {
				if gd.LawSlug == "" {
					gd.LawSlug = slug.Normalize(country.Name) + "-" + law.ShortName
				}
				all = append(all, gd)
			}
		}
	}
	all = append(all, c.Guidances...)

	guidances := make(map[string]corpus.Guidance)
	var items []sequence.Item
	for _, gd := range all {
		if !gd.Eligible() {
			g.recorder.DocumentExcluded("guidances")
			summary.Excluded++
			slog.Debug("Excluding ineligible guidance", logfields.Slug(gd.Title))
			continue
		}
		s := slug.ForGuidance(gd.LawSlug, gd.Type, gd.UniqueCode)
		if _, dup := guidances[s]; dup {
			continue
		}
		guidances[s] = gd
		items = append(items, sequence.Item{Slug: s, LawSlug: gd.LawSlug, UniqueCode: gd.UniqueCode})
	}

	for _, item := range sequence.Order(corpus.KindGuidance, items) {
		gd := guidances[item.Slug]
		related := resolver.Resolve(ctx, gd.RelatedDocs, xref.Source{Slug: item.Slug, Kind: "guidances"})
		g.writeDocument(ctx, corpus.KindGuidance, item.Slug, fingerprint(gd), summary, func() string {
			return renderer.Guidance(gd, item.Slug, related)
		})
		l.Guidances = append(l.Guidances, docEntry{
			Slug:        item.Slug,
			Title:       gd.Title,
			LawSlug:     gd.LawSlug,
			Description: fmt.Sprintf("%s • Code: %s", valueOr(gd.Type, "Guidance"), gd.UniqueCode),
			Preview:     render.Truncate(gd.TextOnly, 200),
		})
	}
}

func (g *Generator) generateTreaties(ctx context.Context, c *corpus.Corpus, resolver *xref.Resolver, renderer *render.Renderer, summary *Summary, l *listing) {
	var all []corpus.Treaty
	for _, country := range c.Countries {
		for _, law := range country.Laws {
			all = append(all, law.Treaties...)
		}
	}
	all = append(all, c.Treaties...)

	treaties := make(map[string]corpus.Treaty)
	var items []sequence.Item
	for _, t := range all {
		if !t.Eligible() {
			g.recorder.DocumentExcluded("tax-treaties")
			summary.Excluded++
			slog.Debug("Excluding ineligible treaty", logfields.Slug(t.Title))
			continue
		}
		s := slug.ForTreaty(t.Country1Slug, t.Country2Alpha3Code)
		if _, dup := treaties[s]; dup {
			continue
		}
		treaties[s] = t
		items = append(items, sequence.Item{Slug: s, Country1Slug: t.Country1Slug})
	}

	for _, item := range sequence.Order(corpus.KindTreaty, items) {
		t := treaties[item.Slug]
		related := resolver.Resolve(ctx, t.RelatedDocs, xref.Source{Slug: item.Slug, Kind: "tax-treaties"})
		g.writeDocument(ctx, corpus.KindTreaty, item.Slug, fingerprint(t), summary, func() string {
			return renderer.Treaty(t, item.Slug, related)
		})

		translation := "Translation: Unofficial"
		if t.Official() {
			translation = "Translation: Official"
		}
		l.Treaties = append(l.Treaties, docEntry{
			Slug:  item.Slug,
			Title: valueOr(t.Title, "Tax Treaty"),
			Description: fmt.Sprintf("%s - %s %s | %s",
				valueOr(t.Country1Slug, "Unknown"), render.CountryFlag(t.FlagCode),
				valueOr(t.Country2Name, "Unknown"), translation),
			Preview: render.Truncate(t.TextOnly, 200),
		})
	}
}

func (g *Generator) generateBlogs(ctx context.Context, c *corpus.Corpus, resolver *xref.Resolver, renderer *render.Renderer, summary *Summary, l *listing) {
	blogs := make(map[string]corpus.Blog)
	var items []sequence.Item
	for _, b := range c.Blogs {
		if !b.Eligible() {
			g.recorder.DocumentExcluded("blogs")
			summary.Excluded++
			slog.Debug("Excluding ineligible blog post", logfields.Slug(b.Title))
			continue
		}
		s := slug.ForBlog(b.Title)
		if _, dup := blogs[s]; dup {
			continue
		}
		blogs[s] = b
		items = append(items, sequence.Item{Slug: s, Title: b.Title, PublishedDate: b.PublishedDate})
	}
	ordered := sequence.Order(corpus.KindBlog, items)

	for _, item := range ordered {
		b := blogs[item.Slug]
		prev, next := sequence.Neighbors(corpus.KindBlog, item.Slug, ordered)
		related := resolver.Resolve(ctx, b.RelatedDocs, xref.Source{Slug: item.Slug, Kind: "blogs"})
		g.writeDocument(ctx, corpus.KindBlog, item.Slug, fingerprint(b), summary, func() string {
			return renderer.Blog(b, item.Slug, related, prev, next)
		})

		published := b.PublishedDate
		if len(published) > 10 {
			published = published[:10]
		}
		l.Blogs = append(l.Blogs, docEntry{
			Slug:        item.Slug,
			Title:       b.Title,
			Author:      b.Author,
			Description: fmt.Sprintf("Published: %s • Category: %s", valueOr(published, "N/A"), b.Category),
			Preview:     render.Truncate(b.Description, 200),
		})
	}
}

// writeDocument writes one rendered page, consulting the state cache when
// configured. The render callback only runs when the page will be written.
func (g *Generator) writeDocument(ctx context.Context, kind corpus.Kind, slugStr, hash string, summary *Summary, renderFn func() string) {
	path := filepath.Join(g.cfg.Output.Dir, kind.Segment(), slugStr+".html")

	if g.cache != nil {
		if _, err := os.Stat(path); err == nil {
			unchanged, err := g.cache.Unchanged(ctx, slugStr, hash)
			if err != nil {
				slog.Warn("State cache lookup failed",
					logfields.Slug(slugStr), logfields.Error(err))
			} else if unchanged {
				g.recorder.DocumentSkipped(kind.Segment())
				summary.Skipped++
				return
			}
		}
	}

	if err := os.WriteFile(path, []byte(renderFn()), 0644); err != nil {
		slog.Error("Failed to write document",
			logfields.Kind(kind.Segment()), logfields.Slug(slugStr), logfields.Error(err))
		return
	}

	if g.cache != nil {
		if err := g.cache.Record(ctx, slugStr, kind.Segment(), hash, g.runID); err != nil {
			slog.Warn("Failed to record generation state",
				logfields.Slug(slugStr), logfields.Error(err))
		}
	}

	g.recorder.DocumentGenerated(kind.Segment())
	summary.Generated[kind.Segment()]++
}

// fingerprint hashes a document's source record so unchanged inputs can be
// detected across runs regardless of render timestamps.
func fingerprint(doc any) string {
	data, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return state.Hash(string(data))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
