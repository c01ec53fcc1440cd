package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CollectionPage renders the index page of one document kind: a browsable
// listing plus an ItemList schema over every published slug.
func (r *Renderer) CollectionPage(docType string, slugs []string, listContent string) string {
	phrase := strings.ReplaceAll(docType, "-", " ")
	display := titleCaser.String(phrase)

	title := fmt.Sprintf("All %s | %s", display, r.site.Name)
	description := fmt.Sprintf("Browse comprehensive collection of %s for the GCC region "+
		"(UAE, Saudi Arabia, Bahrain, Kuwait, Qatar and Oman) covering Corporate Income Tax, "+
		"VAT, Excise, Customs, Zakat, FATCA, CRS and Double Taxation Avoidance Agreements.", phrase)
	canonical := r.site.URL + "/" + docType

	items := make([]any, 0, len(slugs))
	for i, s := range slugs {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     titleCaser.String(strings.ReplaceAll(s, "-", " ")),
			"url":      fmt.Sprintf("%s%s/%s/%s", r.site.URL, r.site.PublicPath, docType, s),
		})
	}
	structured := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "CollectionPage",
		"name":        title,
		"description": description,
		"url":         canonical,
		"mainEntity": map[string]any{
			"@type":           "ItemList",
			"numberOfItems":   len(slugs),
			"itemListElement": items,
		},
	}

	docMeta := fmt.Sprintf(`
    <div class="document-meta">
        <strong>Total Documents:</strong> %d<br>
        <strong>Category:</strong> %s<br>
        <strong>Last Updated:</strong> %s
    </div>`, len(slugs), display, r.now().UTC().Format("January 2, 2006"))

	content := fmt.Sprintf(`
    <div class="index-page">
        <h1>%s</h1>
        <p>Browse all %s in our database:</p>
        <ul class="document-list" style="list-style-type: none; padding: 0;">
            %s
        </ul>
    </div>`, display, phrase, listContent)

	return r.renderPage(page{
		MetaTitle: title,
		Meta: MetaTags{
			Title:       title,
			Description: description,
			Keywords:    strings.Join([]string{"UAE tax laws", "tax compliance", phrase}, ", "),
			Canonical:   canonical,
			OGImage:     r.defaultOGImage(),
			OGImageAlt:  title + " - " + r.site.Name,
		},
		DocMeta:        docMeta,
		Breadcrumb:     r.breadcrumb(fmt.Sprintf("<strong>%s</strong>", display)),
		Content:        content,
		StructuredData: structured,
		DocType:        docType,
	})
}
