package render

import (
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/taxsitegen/internal/corpus"
	"git.home.luguber.info/inful/taxsitegen/internal/sequence"
	"git.home.luguber.info/inful/taxsitegen/internal/xref"
)

// Blog renders the page for an editorial post. Markdown bodies are
// converted to HTML first; conversion failure falls back to the raw body.
func (r *Renderer) Blog(b corpus.Blog, slug string, related []xref.Link, prev, next *sequence.Item) string {
	canonical := r.canonical("blogs", slug)

	title := fmt.Sprintf("%s | %s", EscapeHTML(b.Title), r.site.Name)
	description := valueOr(b.MetaDescription, EscapeHTML(b.Description))

	content := b.Content
	if strings.EqualFold(b.ContentFormat, "markdown") {
		if converted, err := markdownToHTML(content); err == nil {
			content = converted
		}
	}

	formattedDate := "Recently"
	isoDate := r.isoTimestamp()
	if b.PublishedDate != "" {
		if parsed, err := time.Parse(time.RFC3339, b.PublishedDate); err == nil {
			formattedDate = parsed.Format("January 2, 2006")
			isoDate = parsed.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	author := valueOr(b.Author, r.site.Author)
	category := valueOr(b.Category, "Tax Insights")

	status := "Draft"
	if b.Published {
		status = "Published"
	}
	var readingLine string
	if b.Content != "" {
		readingLine = fmt.Sprintf("<strong>Reading Time:</strong> %d min read<br>\n        ", ReadingTime(b.Content))
	}
	docMeta := fmt.Sprintf(`
    <div class="document-meta">
        <strong>Document Type:</strong> Blog Post<br>
        <strong>Author:</strong> %s<br>
        <strong>Published:</strong> %s<br>
        <strong>Category:</strong> %s<br>
        %s<strong>Status:</strong> %s
        <br><strong>Last updated at:</strong> %s
    </div>`,
		EscapeHTML(author), formattedDate, EscapeHTML(category),
		readingLine, status, r.timestampUTC())

	breadcrumb := r.breadcrumb(
		fmt.Sprintf(`<a href="%s/blogs">Blog</a>`, r.site.PublicPath),
		fmt.Sprintf("<strong>%s</strong>", EscapeHTML(b.Title)),
	)

	image := valueOr(b.ImageURL, r.defaultOGImage())
	words := len(strings.Fields(b.Content))
	readMinutes := words / 225
	if readMinutes < 1 {
		readMinutes = 1
	}

	structured := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"@id":         canonical,
		"headline":    b.Title,
		"description": description,
		"articleBody": b.Content,
		"url":         canonical,
		"image": map[string]any{
			"@type":  "ImageObject",
			"url":    image,
			"width":  1200,
			"height": 630,
		},
		"datePublished": isoDate,
		"dateModified":  isoDate,
		"author": map[string]any{
			"@type": "Person",
			"name":  author,
		},
		"publisher":        r.organizationSchema(r.site.Name),
		"mainEntityOfPage": webpageSchema(canonical),
		"about": map[string]any{
			"@type":       "Thing",
			"name":        category,
			"description": description,
		},
		"articleSection": category,
		"keywords":       BlogKeywords(b),
		"inLanguage":     "en",
		"wordCount":      words,
		"timeRequired":   fmt.Sprintf("PT%dM", readMinutes),
	}

	return r.renderPage(page{
		MetaTitle: title,
		Meta: MetaTags{
			Title:       title,
			Description: description,
			Keywords:    BlogKeywords(b),
			Canonical:   canonical,
			OGImage:     image,
			OGImageAlt:  title + " - " + r.site.Name,
		},
		DocMeta:        docMeta,
		Breadcrumb:     breadcrumb,
		Content:        ExtractBody(CleanContent(content, r.site.PublicPath)),
		StructuredData: structured,
		DocType:        "blogs",
		InternalNav:    r.internalNav("blogs", prev, next),
		RelatedContent: r.RelatedDocsHTML(related),
	})
}
