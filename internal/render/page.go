// Package render turns resolved corpus documents into self-contained,
// SEO-optimized HTML pages: metadata, Open Graph and Twitter tags, JSON-LD
// structured data, prev/next navigation and related-document links.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/taxsitegen/internal/config"
	"git.home.luguber.info/inful/taxsitegen/internal/sequence"
	"git.home.luguber.info/inful/taxsitegen/internal/xref"
)

// Renderer produces HTML documents for one configured site.
type Renderer struct {
	site *config.SiteConfig
	now  func() time.Time
}

// New creates a renderer stamped with the site's identity values.
func New(site *config.SiteConfig) *Renderer {
	return &Renderer{site: site, now: time.Now}
}

// page collects everything the unified shell needs for one document.
type page struct {
	MetaTitle      string
	Meta           MetaTags
	DocMeta        string
	Breadcrumb     string
	Content        string
	StructuredData map[string]any
	DocType        string
	InternalNav    string
	RelatedContent string
}

// renderPage assembles the unified page shell shared by all document kinds.
func (r *Renderer) renderPage(p page) string {
	structured, err := json.MarshalIndent(p.StructuredData, "    ", "  ")
	if err != nil {
		structured = []byte("{}")
	}

	contentClass := "static-content"
	if p.DocType == "blogs" {
		contentClass = "blog-content"
	}

	publicPath := r.site.PublicPath

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <meta name="robots" content="index, follow" />
    <meta name="theme-color" content="#232536" />

    <title>%s</title>

    <meta name="description" content="%s" />
    <meta name="keywords" content="%s" />
    <link rel="canonical" href="%s" />
    <link rel="sitemap" type="application/xml" title="Sitemap" href="%s/sitemap.xml" />

    %s
%s
%s

    <meta name="author" content="%s" />
    <meta name="geo.region" content="AE" />
    <meta name="geo.placename" content="UAE" />

    <script type="application/ld+json">
    %s
    </script>

    <style>%s
%s
%s
    </style>
</head>
<body>
    <div class="header">
        <div class="container">
            <p><strong>%s</strong></p>
            <nav>
                <a href="/">Home</a>
                <a href="%s/articles">Articles</a>
                <a href="%s/decisions">Decisions</a>
                <a href="%s/guidances">Guidance</a>
                <a href="%s/tax-treaties">Treaties</a>
                <a href="%s/blogs">Blogs</a>
            </nav>
        </div>
    </div>
%s
    <div class="main-content">
        <div class="container">
            %s

            <div class="%s">
                %s
            </div>

            %s
            %s

            <div class="bot-notice">
                🤖 This page is optimized for search engines and web crawlers.
                <a href="/">Visit our main site</a> for the full interactive experience.
            </div>
        </div>
    </div>

    <div class="footer">
        <div class="container">
            <p>&copy; %d %s. All rights reserved.</p>
            <p>
                <a href="/">Home</a> |
                <a href="%s/articles">Articles</a> |
                <a href="%s/decisions">Decisions</a> |
                <a href="%s/guidances">Guidance</a> |
                <a href="%s/tax-treaties">Treaties</a> |
                <a href="%s/blogs">Blogs</a>
            </p>
        </div>
    </div>
</body>
</html>`,
		p.MetaTitle,
		p.Meta.Description,
		p.Meta.Keywords,
		p.Meta.Canonical,
		r.site.URL,
		docCSSLink(p.DocType),
		p.Meta.ogTags(r.site.Name),
		p.Meta.twitterTags(r.site.TwitterHandle),
		r.site.Author,
		structured,
		baseStyles,
		documentStyles,
		navigationStyles,
		r.site.Name,
		publicPath, publicPath, publicPath, publicPath, publicPath,
		p.Breadcrumb,
		p.DocMeta,
		contentClass,
		p.Content,
		p.InternalNav,
		p.RelatedContent,
		r.now().UTC().Year(),
		r.site.Name,
		publicPath, publicPath, publicPath, publicPath, publicPath,
	)
}

// RelatedDocsHTML renders the related-documents section from resolved links.
// No links means no section.
func (r *Renderer) RelatedDocsHTML(links []xref.Link) string {
	if len(links) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`
    <div class="related-content">
        <h3 style="margin-top: 0; color: #232536; font-size: 18px;">Related Documents</h3>
        <ul style="list-style: none; padding: 0; margin: 0;">`)

	for _, link := range links {
		fmt.Fprintf(&b, `
            <li style="margin-bottom: 10px;">
                <a href="%s" class="related-link">
                    &rarr; %s
                </a>
            </li>`, link.URL, RenderTitle(link.Title))
	}

	b.WriteString("</ul></div>")
	return b.String()
}

// internalNav renders the prev/next navigation block.
func (r *Renderer) internalNav(docType string, prev, next *sequence.Item) string {
	if prev == nil && next == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="internal-navigation">`)

	if prev != nil {
		fmt.Fprintf(&b, `
        <a href="%s/%s/%s" class="nav-link prev-link">
            <span style="margin-right: 12px; font-size: 20px; flex-shrink: 0;">&larr;</span>
            <div class="nav-link-content">
                <div class="nav-link-label">Previous</div>
                <div class="nav-link-title">%s</div>
            </div>
        </a>`, r.site.PublicPath, docType, prev.Slug, RenderTitle(prev.Title))
	} else {
		b.WriteString("<div></div>")
	}

	if next != nil {
		fmt.Fprintf(&b, `
        <a href="%s/%s/%s" class="nav-link next-link">
            <div class="nav-link-content">
                <div class="nav-link-label">Next</div>
                <div class="nav-link-title">%s</div>
            </div>
            <span style="margin-left: 12px; font-size: 20px; flex-shrink: 0;">&rarr;</span>
        </a>`, r.site.PublicPath, docType, next.Slug, RenderTitle(next.Title))
	} else {
		b.WriteString("<div></div>")
	}

	b.WriteString("</div>")
	return b.String()
}

func (r *Renderer) canonical(docType, slug string) string {
	return fmt.Sprintf("%s/%s/%s", r.site.URL, docType, slug)
}

func (r *Renderer) defaultOGImage() string {
	return r.site.URL + r.site.DefaultOGImage
}

func (r *Renderer) timestampUTC() string {
	return r.now().UTC().Format("2006-01-02 15:04:05 UTC")
}

func (r *Renderer) isoTimestamp() string {
	return r.now().UTC().Format("2006-01-02T15:04:05Z")
}
