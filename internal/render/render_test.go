package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/taxsitegen/internal/config"
	"git.home.luguber.info/inful/taxsitegen/internal/corpus"
	"git.home.luguber.info/inful/taxsitegen/internal/sequence"
	"git.home.luguber.info/inful/taxsitegen/internal/xref"
)

func testRenderer() *Renderer {
	r := New(&config.SiteConfig{
		URL:            "https://gcctaxlaws.com",
		Name:           "GCC Tax Laws",
		ShortName:      "GTL",
		TwitterHandle:  "@gcctaxlaws",
		DefaultOGImage: "/web-app-manifest-512x512.png",
		PublicPath:     "/seo",
		Author:         "Team GTL",
	})
	r.now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }
	return r
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Hello World", StripTags("<p>Hello <b>World</b></p>"))
	assert.Equal(t, "", StripTags(""))
	assert.Equal(t, "plain", StripTags("plain"))
}

func TestRenderTitle(t *testing.T) {
	assert.Equal(t, "A &amp; B", RenderTitle("A & B"))
	assert.Equal(t, `Tax <span class="hl">Law</span>`, RenderTitle(`Tax <span class="hl">Law</span>`))
	assert.Equal(t, "", RenderTitle(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde...", Truncate("abcdefghij", 5))
}

func TestExtractBody(t *testing.T) {
	got := ExtractBody("<html><head><title>x</title></head><body><p>kept</p></body></html>")
	assert.Equal(t, "<p>kept</p>", got)

	// Fragments without an explicit body come back intact after parsing.
	assert.Contains(t, ExtractBody("<p>fragment</p>"), "fragment")
	assert.Equal(t, "<p>Content not available</p>", ExtractBody(""))
}

func TestCleanContentRewritesInternalLinks(t *testing.T) {
	in := `<a href="/articles/uae-cit-article-1">one</a> <a href='/blogs/some-post'>two</a> <a href="https://example.com/articles/x">ext</a>`
	out := CleanContent(in, "/seo")
	assert.Contains(t, out, `href="/seo/articles/uae-cit-article-1"`)
	assert.Contains(t, out, `href='/seo/blogs/some-post'`)
	assert.Contains(t, out, `https://example.com/articles/x`)
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 1, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("<p>just a few words here</p>"))
	long := strings.Repeat("word ", 460)
	assert.Equal(t, 2, ReadingTime(long))
}

func TestCountryFlag(t *testing.T) {
	assert.Equal(t, "🇦🇪", CountryFlag("ae"))
	assert.Equal(t, "🏳️", CountryFlag("zz"))
}

func TestAuthorityName(t *testing.T) {
	assert.Equal(t, "Federal Tax Authority", AuthorityName("uae-cit-fdl-47-of-2022"))
	assert.Equal(t, "Zakat, Tax and Customs Authority", AuthorityName("KSA-vat"))
	assert.Equal(t, "GCC Secretariat General", AuthorityName("france-vat"))
	assert.Equal(t, "Tax Authority", AuthorityName(""))
}

func TestKeywords(t *testing.T) {
	got := Keywords(corpus.KindDecision, map[string]string{"number": "35", "year": "2025", "type": "CD - Cabinet Decision"})
	assert.Contains(t, got, "decision 35")
	assert.Contains(t, got, "2025 decision")
	assert.Contains(t, got, "cd - cabinet decision")

	got = Keywords(corpus.KindTreaty, map[string]string{"country2Name": "Albania"})
	assert.Contains(t, got, "albania treaty")
}

func TestRelatedDocsHTML(t *testing.T) {
	r := testRenderer()
	assert.Empty(t, r.RelatedDocsHTML(nil))

	html := r.RelatedDocsHTML([]xref.Link{
		{Title: "Article 1 - Scope", URL: "/articles/uae-cit-article-1"},
	})
	assert.Contains(t, html, "Related Documents")
	assert.Contains(t, html, `href="/articles/uae-cit-article-1"`)
	assert.Contains(t, html, "Article 1 - Scope")
}

func TestArticleRendering(t *testing.T) {
	r := testRenderer()
	law := corpus.Law{FullName: "Federal Decree-Law No. 47 of 2022", ShortName: "cit-fdl-47-of-2022"}
	country := corpus.Country{Name: "UAE", FlagCode: "AE"}
	article := corpus.Article{
		Number:     "1",
		Title:      "Definitions",
		OrderIndex: 1,
		Content:    "<html><body><p>In this Decree-Law, the following terms shall apply.</p></body></html>",
		TextOnly:   "In this Decree-Law, the following terms shall apply.",
	}

	prev := &sequence.Item{Slug: "uae-cit-fdl-47-of-2022-article-0", Title: "Preamble"}
	next := &sequence.Item{Slug: "uae-cit-fdl-47-of-2022-article-2", Title: "Imposition"}

	html := r.Article(article, law, country, "uae-cit-fdl-47-of-2022-article-1", nil, prev, next)

	require.NotEmpty(t, html)
	assert.Contains(t, html, "<title>Article 1 - Definitions | Federal Decree-Law No. 47 of 2022 | GCC Tax Laws</title>")
	assert.Contains(t, html, `href="https://gcctaxlaws.com/articles/uae-cit-fdl-47-of-2022-article-1"`)
	assert.Contains(t, html, `"legislationIdentifier": "Article 1"`)
	assert.Contains(t, html, "🇦🇪 UAE")
	assert.Contains(t, html, "/seo/articles/uae-cit-fdl-47-of-2022-article-0")
	assert.Contains(t, html, "/seo/articles/uae-cit-fdl-47-of-2022-article-2")
	assert.Contains(t, html, "2026-03-14 09:30:00 UTC")
	assert.NotContains(t, html, "<body><p>In this Decree-Law")
}

func TestArticleTitleAlreadyPrefixed(t *testing.T) {
	r := testRenderer()
	article := corpus.Article{Number: "5", Title: "Article 5 - Exempt Persons"}
	html := r.Article(article, corpus.Law{FullName: "CIT Law"}, corpus.Country{Name: "UAE"}, "s", nil, nil, nil)
	assert.Contains(t, html, "<title>Article 5 - Exempt Persons | CIT Law | GCC Tax Laws</title>")
	assert.NotContains(t, html, "Article 5 - Article 5")
}

func TestDecisionRendering(t *testing.T) {
	r := testRenderer()
	d := corpus.Decision{
		Number: "35", Year: "2025", Type: "CD - Cabinet Decision",
		Title: "Executive Regulation", Name: "Cabinet Decision No. 35 of 2025",
		Content: "<p>body</p>",
	}
	html := r.Decision(d, corpus.Law{FullName: "CIT Law", ShortName: "cit"}, corpus.Country{Name: "UAE", FlagCode: "AE"}, "uae-cit-cd-35-of-2025", nil)

	assert.Contains(t, html, "https://gcctaxlaws.com/decisions/uae-cit-cd-35-of-2025")
	assert.Contains(t, html, "CD 35 of 2025")
	assert.Contains(t, html, "Cabinet Decision No. 35 of 2025")
}

func TestGuidanceRendering(t *testing.T) {
	r := testRenderer()
	g := corpus.Guidance{
		UniqueCode: "CTGFF1", Type: "GUIDE - Federal Tax Authority Guide",
		LawSlug: "uae-cit-fdl-47-of-2022", Title: "Free Zone Persons Guide",
	}
	html := r.Guidance(g, "uae-cit-fdl-47-of-2022-guide-CTGFF1", nil)

	assert.Contains(t, html, "https://gcctaxlaws.com/guidances/uae-cit-fdl-47-of-2022-guide-CTGFF1")
	assert.Contains(t, html, "Federal Tax Authority")
	assert.Contains(t, html, "United Arab Emirates")
	assert.Contains(t, html, "CTGFF1")
}

func TestTreatyRendering(t *testing.T) {
	r := testRenderer()
	unofficial := false
	tr := corpus.Treaty{
		Country1Slug: "uae", Country2Alpha3Code: "ALB", Country2Name: "Albania",
		Title: "UAE-Albania DTAA", OfficialTranslation: &unofficial, Year: "2014",
	}
	html := r.Treaty(tr, "uae-alb-dtaa", nil)

	assert.Contains(t, html, "https://gcctaxlaws.com/tax-treaties/uae-alb-dtaa")
	assert.Contains(t, html, "UAE - Albania")
	assert.Contains(t, html, "Unofficial")
	assert.Contains(t, html, "translationOfWork")
	assert.Contains(t, html, "About This Tax Treaty")
}

func TestBlogRendering(t *testing.T) {
	r := testRenderer()
	b := corpus.Blog{
		Title: "Corporate Tax Basics", Published: true,
		PublishedDate: "2025-06-01T08:00:00Z",
		Description:   "An introduction.",
		Author:        "Jane Doe", Category: "Corporate Tax",
		Content: "<p>Some useful content about corporate tax.</p>",
	}
	html := r.Blog(b, "corporate-tax-basics", nil, nil, nil)

	assert.Contains(t, html, "https://gcctaxlaws.com/blogs/corporate-tax-basics")
	assert.Contains(t, html, "June 1, 2025")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, `"BlogPosting"`)
	assert.Contains(t, html, "blog-content")
}

func TestBlogMarkdownConversion(t *testing.T) {
	r := testRenderer()
	b := corpus.Blog{
		Title: "MD Post", Published: true,
		Content: "# Heading\n\nSome **bold** text.", ContentFormat: "markdown",
	}
	html := r.Blog(b, "md-post", nil, nil, nil)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.NotContains(t, html, "**bold**")
}
