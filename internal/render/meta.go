package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/taxsitegen/internal/corpus"
)

// MetaTags carries the per-page metadata shared by head, Open Graph and
// Twitter card blocks.
type MetaTags struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	OGImage     string
	OGImageAlt  string
}

func (m MetaTags) ogTags(siteName string) string {
	return fmt.Sprintf(`
    <meta property="og:type" content="article" />
    <meta property="og:url" content="%s" />
    <meta property="og:title" content="%s" />
    <meta property="og:description" content="%s" />
    <meta property="og:image" content="%s" />
    <meta property="og:image:alt" content="%s" />
    <meta property="og:site_name" content="%s" />`,
		m.Canonical, EscapeHTML(m.Title), m.Description, m.OGImage, m.OGImageAlt, siteName)
}

func (m MetaTags) twitterTags(handle string) string {
	return fmt.Sprintf(`
    <meta name="twitter:card" content="summary_large_image" />
    <meta name="twitter:url" content="%s" />
    <meta name="twitter:title" content="%s" />
    <meta name="twitter:description" content="%s" />
    <meta name="twitter:image" content="%s" />
    <meta name="twitter:image:alt" content="%s" />
    <meta name="twitter:site" content="%s" />`,
		m.Canonical, EscapeHTML(m.Title), m.Description, m.OGImage, m.OGImageAlt, handle)
}

// organizationSchema builds the schema.org Organization object.
func (r *Renderer) organizationSchema(name string) map[string]any {
	return map[string]any{
		"@type": "Organization",
		"name":  name,
		"url":   r.site.URL,
		"logo": map[string]any{
			"@type":  "ImageObject",
			"url":    r.site.URL + r.site.DefaultOGImage,
			"width":  180,
			"height": 60,
		},
		"alternateName": r.site.ShortName,
	}
}

func languageSchema() map[string]any {
	return map[string]any{"@type": "Language", "name": "English", "alternateName": "en"}
}

func webpageSchema(canonical string) map[string]any {
	return map[string]any{"@type": "WebPage", "@id": canonical}
}

func countrySchema(name string) map[string]any {
	return map[string]any{"@type": "Country", "name": name}
}

// Keywords derives SEO keywords for non-blog documents from their fields.
func Keywords(kind corpus.Kind, fields map[string]string) string {
	keywords := []string{"UAE tax laws", "tax compliance", "legal document"}

	switch kind {
	case corpus.KindArticle:
		keywords = append(keywords, "tax legislation", "UAE tax law", "tax article")
		if n := fields["number"]; n != "" {
			keywords = append(keywords, "article "+n)
		}
	case corpus.KindDecision:
		keywords = append(keywords, "FTA decision", "tax decision", "regulatory decision", "cabinet decision")
		if n := fields["number"]; n != "" {
			keywords = append(keywords, "decision "+n)
		}
		if y := fields["year"]; y != "" {
			keywords = append(keywords, y+" decision")
		}
		if t := fields["type"]; t != "" {
			keywords = append(keywords, strings.ToLower(t))
		}
	case corpus.KindGuidance:
		keywords = append(keywords, "tax guidance", "FTA guide", "compliance guide")
		if c := fields["uniqueCode"]; c != "" {
			keywords = append(keywords, c)
		}
		if t := fields["type"]; t != "" {
			keywords = append(keywords, strings.ToLower(t))
		}
	case corpus.KindTreaty:
		keywords = append(keywords, "tax treaty", "DTAA", "double taxation")
		if n := fields["country2Name"]; n != "" {
			keywords = append(keywords, strings.ToLower(n)+" treaty")
		}
	}

	return strings.Join(keywords, ", ")
}

// BlogKeywords passes through editorial metaKeywords; blogs carry their own.
func BlogKeywords(b corpus.Blog) string {
	return strings.TrimSpace(b.MetaKeywords)
}
