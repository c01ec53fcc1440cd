package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/taxsitegen/internal/corpus"
	"git.home.luguber.info/inful/taxsitegen/internal/sequence"
	"git.home.luguber.info/inful/taxsitegen/internal/xref"
)

// Article renders the page for a single law article. The slug is derived by
// the caller so the same value feeds the page, the sitemap and the state
// cache.
func (r *Renderer) Article(a corpus.Article, law corpus.Law, country corpus.Country, slug string, related []xref.Link, prev, next *sequence.Item) string {
	canonical := r.canonical("articles", slug)

	var pathParts []string
	for _, seg := range a.Path {
		if seg.Name != "" {
			pathParts = append(pathParts, seg.Name)
		}
	}
	pathString := strings.Join(pathParts, " &rsaquo; ")

	var title string
	if strings.HasPrefix(strings.ToLower(a.Title), "article") {
		title = fmt.Sprintf("%s | %s | %s", EscapeHTML(a.Title), law.FullName, r.site.Name)
	} else {
		title = fmt.Sprintf("Article %s - %s | %s | %s", a.Number, EscapeHTML(a.Title), law.FullName, r.site.Name)
	}

	description := a.MetaDescription
	if description == "" {
		description = fmt.Sprintf("Article %s: %s", a.Number, EscapeHTML(Truncate(a.TextOnly, 140)))
	}

	breadcrumbTitle := fmt.Sprintf("Article %s - %s", a.Number, a.Title)
	if strings.HasPrefix(strings.ToLower(a.Title), strings.ToLower("article "+a.Number.String())) {
		breadcrumbTitle = a.Title
	}
	breadcrumb := r.breadcrumb(
		fmt.Sprintf(`<a href="%s/articles">Articles</a>`, r.site.PublicPath),
		fmt.Sprintf(`<a href="%s/laws/%s/%s">%s</a>`, r.site.PublicPath, country.Name, EscapeHTML(law.ShortName), EscapeHTML(law.ShortName)),
		fmt.Sprintf("<strong>%s</strong>", EscapeHTML(Truncate(breadcrumbTitle, 60))),
	)

	var location string
	if pathString != "" {
		location = fmt.Sprintf("<strong>Location:</strong> %s<br>\n        ", pathString)
	}
	docMeta := fmt.Sprintf(`
    <div class="document-meta">
        <strong>Document Type:</strong> Tax Law Article<br>
        <strong>Law:</strong> %s<br>
        <strong>Article Number:</strong> %s<br>
        <strong>Country:</strong> %s %s<br>
        %s<strong>Order:</strong> %d<br>
        <strong>Last updated at:</strong> %s
    </div>`,
		EscapeHTML(law.FullName), valueOr(a.Number.String(), "N/A"),
		CountryFlag(country.FlagCode), EscapeHTML(country.Name),
		location, a.OrderIndex, r.timestampUTC())

	lawSlug := strings.ToLower(country.Name + "-" + law.ShortName)
	structured := map[string]any{
		"@context":                "https://schema.org",
		"@type":                   "Legislation",
		"@id":                     canonical,
		"name":                    a.Title,
		"legislationIdentifier":   "Article " + a.Number.String(),
		"legislationType":         "Tax Law Article",
		"description":             valueOr(a.MetaDescription, Truncate(a.TextOnly, 155)),
		"url":                     canonical,
		"datePublished":           r.isoTimestamp(),
		"dateModified":            r.isoTimestamp(),
		"legislationJurisdiction": countrySchema(country.Name),
		"author":                  r.organizationSchema(r.site.Name),
		"publisher":               r.organizationSchema(r.site.Name),
		"mainEntityOfPage":        webpageSchema(canonical),
		"inLanguage":              languageSchema(),
		"about": map[string]any{
			"@type":       "Thing",
			"name":        "Tax Law",
			"description": country.Name + " tax legislation and regulations",
		},
		"mentions": []any{
			map[string]any{"@type": "Organization", "name": AuthorityName(lawSlug)},
			countrySchema(country.Name),
		},
		"isPartOf": map[string]any{
			"@type":                   "Legislation",
			"name":                    law.FullName,
			"legislationIdentifier":   law.ShortName,
			"legislationJurisdiction": country.Name,
		},
		"keywords": valueOr(a.MetaKeywords, Keywords(corpus.KindArticle, map[string]string{"number": a.Number.String()})),
	}
	if a.Number != "" {
		structured["identifier"] = map[string]any{
			"@type": "PropertyValue",
			"name":  "Article Number",
			"value": a.Number.String(),
		}
	}
	if a.Content != "" {
		structured["wordCount"] = len(strings.Fields(a.Content))
	}

	return r.renderPage(page{
		MetaTitle: title,
		Meta: MetaTags{
			Title:       title,
			Description: description,
			Keywords:    valueOr(a.MetaKeywords, Keywords(corpus.KindArticle, map[string]string{"number": a.Number.String()})),
			Canonical:   canonical,
			OGImage:     r.defaultOGImage(),
			OGImageAlt:  title + " - " + r.site.Name,
		},
		DocMeta:        docMeta,
		Breadcrumb:     breadcrumb,
		Content:        ExtractBody(CleanContent(a.Content, r.site.PublicPath)),
		StructuredData: structured,
		DocType:        "articles",
		InternalNav:    r.internalNav("articles", prev, next),
		RelatedContent: r.RelatedDocsHTML(related),
	})
}

// Decision renders the page for an executive or regulatory decision.
func (r *Renderer) Decision(d corpus.Decision, law corpus.Law, country corpus.Country, slug string, related []xref.Link) string {
	canonical := r.canonical("decisions", slug)

	decisionType := valueOr(d.Type, "Decision")
	title := fmt.Sprintf("%s %s %s/%s | %s | %s",
		RenderTitle(d.Title), decisionType, d.Number, d.Year, law.FullName, r.site.Name)

	description := d.MetaDescription
	if description == "" {
		description = fmt.Sprintf("%s %s of %s: %s",
			decisionType, d.Number, d.Year, EscapeHTML(Truncate(d.TextOnly, 120)))
	}

	breadcrumb := r.breadcrumb(
		fmt.Sprintf(`<a href="%s/decisions">Decisions</a>`, r.site.PublicPath),
		fmt.Sprintf("<strong>%s</strong>", RenderTitle(d.Title)),
	)

	docMeta := fmt.Sprintf(`
    <div class="document-meta">
        <strong>Document Type:</strong> %s<br>
        <strong>Law:</strong> %s<br>
        <strong>Decision Number:</strong> %s<br>
        <strong>Year:</strong> %s<br>
        <strong>Country:</strong> %s %s<br>
        <strong>Official Name:</strong> %s
        <br><strong>Last updated at:</strong> %s
    </div>`,
		EscapeHTML(decisionType), EscapeHTML(law.FullName),
		valueOr(d.Number.String(), "N/A"), valueOr(d.Year.String(), "N/A"),
		CountryFlag(country.FlagCode), EscapeHTML(country.Name),
		EscapeHTML(d.Name), r.timestampUTC())

	lawSlug := strings.ToLower(country.Name + "-" + law.ShortName)
	structured := map[string]any{
		"@context":              "https://schema.org",
		"@type":                 "Legislation",
		"@id":                   canonical,
		"name":                  d.Title,
		"headline":              d.Name,
		"legislationIdentifier": d.Number.String(),
		"legislationType":       decisionType,
		"legislationDate":       d.Year.String(),
		"description":           valueOr(d.MetaDescription, Truncate(d.TextOnly, 155)),
		"url":                   canonical,
		"datePublished":         valueOr(d.Year.String(), r.isoTimestamp()),
		"dateModified":          r.isoTimestamp(),
		"dateCreated":           r.isoTimestamp(),
		"legislationJurisdiction": map[string]any{
			"@type": "Country",
			"name":  country.Name,
		},
		"author":           r.organizationSchema(r.site.Name),
		"publisher":        r.organizationSchema(r.site.Name),
		"mainEntityOfPage": webpageSchema(canonical),
		"temporalCoverage": d.Year.String(),
		"inLanguage":       languageSchema(),
		"about": map[string]any{
			"@type":       "Thing",
			"name":        "Tax Decision",
			"description": country.Name + " official tax authority ruling and decision",
		},
		"mentions": []any{
			map[string]any{"@type": "Organization", "name": AuthorityName(lawSlug)},
			countrySchema(country.Name),
		},
		"isBasedOn": map[string]any{
			"@type": "Legislation",
			"name":  law.FullName,
		},
		"keywords": valueOr(d.MetaKeywords, Keywords(corpus.KindDecision, map[string]string{
			"number": d.Number.String(), "year": d.Year.String(), "type": d.Type,
		})),
	}
	if d.Number != "" {
		abbrev, _, _ := strings.Cut(d.Type, "-")
		structured["identifier"] = map[string]any{
			"@type": "PropertyValue",
			"name":  "Decision Number",
			"value": strings.TrimSpace(fmt.Sprintf("%s %s of %s", strings.TrimSpace(abbrev), d.Number, d.Year)),
		}
	}
	if d.Content != "" {
		structured["wordCount"] = len(strings.Fields(d.Content))
	}

	return r.renderPage(page{
		MetaTitle: title,
		Meta: MetaTags{
			Title:       title,
			Description: description,
			Keywords: valueOr(d.MetaKeywords, Keywords(corpus.KindDecision, map[string]string{
				"number": d.Number.String(), "year": d.Year.String(), "type": d.Type,
			})),
			Canonical:  canonical,
			OGImage:    r.defaultOGImage(),
			OGImageAlt: title + " - " + r.site.Name,
		},
		DocMeta:        docMeta,
		Breadcrumb:     breadcrumb,
		Content:        ExtractBody(CleanContent(d.Content, r.site.PublicPath)),
		StructuredData: structured,
		DocType:        "decisions",
		RelatedContent: r.RelatedDocsHTML(related),
	})
}

// guidanceCountries resolves the jurisdiction from a law slug prefix.
var guidanceCountries = map[string]string{
	"uae":     "United Arab Emirates",
	"ksa":     "Saudi Arabia",
	"kwt":     "Kuwait",
	"qatar":   "Qatar",
	"bahrain": "Bahrain",
	"oman":    "Oman",
}

// Guidance renders the page for an authority guide or clarification. The
// guidance must carry its law slug; embedded records get it filled during
// assembly.
func (r *Renderer) Guidance(g corpus.Guidance, slug string, related []xref.Link) string {
	canonical := r.canonical("guidances", slug)

	guidanceType := valueOr(g.Type, "Guidance")
	title := fmt.Sprintf("%s | %s | %s", EscapeHTML(g.Title), guidanceType, r.site.Name)

	description := g.MetaDescription
	if description == "" {
		description = fmt.Sprintf("Official FTA guidance %s: %s",
			g.UniqueCode, EscapeHTML(Truncate(g.TextOnly, 130)))
	}

	countryName := "United Arab Emirates"
	if g.LawSlug != "" {
		prefix, _, _ := strings.Cut(strings.ToLower(g.LawSlug), "-")
		if name, ok := guidanceCountries[prefix]; ok {
			countryName = name
		}
	}
	authority := AuthorityName(g.LawSlug)

	breadcrumb := r.breadcrumb(
		fmt.Sprintf(`<a href="%s/guidances">Guidance</a>`, r.site.PublicPath),
		fmt.Sprintf("<strong>%s</strong>", EscapeHTML(g.Title)),
	)

	docMeta := fmt.Sprintf(`
    <div class="document-meta">
        <strong>Document Type:</strong> %s<br>
        <strong>Guidance Code:</strong> %s<br>
        <strong>Year:</strong> %s<br>
        <strong>Related Law:</strong> %s<br>
        <strong>Authority:</strong> %s
        <br><strong>Last updated at:</strong> %s
    </div>`,
		EscapeHTML(guidanceType), valueOr(g.UniqueCode, "N/A"),
		valueOr(g.Year.String(), "N/A"), EscapeHTML(valueOr(g.LawSlug, "N/A")),
		EscapeHTML(authority), r.timestampUTC())

	structured := map[string]any{
		"@context":        "https://schema.org",
		"@type":           "Legislation",
		"@id":             canonical,
		"name":            g.Title,
		"headline":        valueOr(g.MetaTitle, g.Title),
		"description":     valueOr(g.MetaDescription, Truncate(g.TextOnly, 155)),
		"url":             canonical,
		"datePublished":   valueOr(g.Year.String(), r.isoTimestamp()),
		"dateModified":    r.isoTimestamp(),
		"legislationType": valueOr(g.Type, "Tax Guidance"),
		"legislationJurisdiction": map[string]any{
			"@type": "Country",
			"name":  countryName,
		},
		"provider":         r.organizationSchema(r.site.Name),
		"publisher":        r.organizationSchema(r.site.Name),
		"mainEntityOfPage": webpageSchema(canonical),
		"inLanguage":       languageSchema(),
		"about": map[string]any{
			"@type":       "Thing",
			"name":        "Tax Guidance",
			"description": countryName + " tax guidance and procedures",
		},
		"mentions": []any{
			map[string]any{"@type": "Organization", "name": authority},
			countrySchema(countryName),
		},
	}

	return r.renderPage(page{
		MetaTitle: title,
		Meta: MetaTags{
			Title:       title,
			Description: description,
			Keywords: valueOr(g.MetaKeywords, Keywords(corpus.KindGuidance, map[string]string{
				"uniqueCode": g.UniqueCode, "type": g.Type,
			})),
			Canonical:  canonical,
			OGImage:    r.defaultOGImage(),
			OGImageAlt: title + " - " + r.site.Name,
		},
		DocMeta:        docMeta,
		Breadcrumb:     breadcrumb,
		Content:        ExtractBody(CleanContent(g.Content, r.site.PublicPath)),
		StructuredData: structured,
		DocType:        "guidances",
		RelatedContent: r.RelatedDocsHTML(related),
	})
}

// Treaty renders the page for a double taxation avoidance agreement.
func (r *Renderer) Treaty(t corpus.Treaty, slug string, related []xref.Link) string {
	canonical := r.canonical("tax-treaties", slug)

	country1 := strings.ToUpper(valueOr(t.Country1Slug, "uae"))
	country2 := valueOr(t.Country2Name, "Unknown")

	title := fmt.Sprintf("%s | %s", valueOr(t.MetaTitle, t.Title), r.site.Name)

	translation := "Unofficial"
	if t.Official() {
		translation = "Official"
	}
	description := t.MetaDescription
	if description == "" {
		description = fmt.Sprintf("Double Taxation Avoidance Agreement between %s and %s. %s translation.",
			country1, country2, translation)
	}

	var yearLine, issueLine string
	if t.Year != "" {
		yearLine = fmt.Sprintf("<strong>Year:</strong> %s<br>\n        ", t.Year)
	}
	if t.IssueDate != "" {
		issueLine = fmt.Sprintf("<strong>Issue Date:</strong> %s<br>\n        ", t.IssueDate)
	}
	docMeta := fmt.Sprintf(`
    <div class="document-meta">
        <strong>Document Type:</strong> Double Taxation Agreement<br>
        <strong>Countries:</strong> %s - %s<br>
        <strong>Translation:</strong> %s<br>
        %s%s<br><strong>Last updated at:</strong> %s
    </div>`,
		country1, EscapeHTML(country2), translation, yearLine, issueLine, r.timestampUTC())

	breadcrumb := r.breadcrumb(
		fmt.Sprintf(`<a href="%s/tax-treaties">Tax Treaties</a>`, r.site.PublicPath),
		fmt.Sprintf("<strong>%s-%s Treaty</strong>", country1, EscapeHTML(country2)),
	)

	structured := map[string]any{
		"@context":              "https://schema.org",
		"@type":                 "Legislation",
		"@id":                   canonical,
		"name":                  t.Title,
		"alternateName":         fmt.Sprintf("DTAA between %s and %s", country1, country2),
		"legislationIdentifier": slug,
		"legislationType":       "International Tax Treaty",
		"legislationDate":       t.IssueDate,
		"description": valueOr(t.MetaDescription,
			fmt.Sprintf("Double Taxation Avoidance Agreement between %s and %s", country1, country2)),
		"url":           canonical,
		"datePublished": r.isoTimestamp(),
		"dateModified":  r.isoTimestamp(),
		"legislationJurisdiction": []any{
			map[string]any{"@type": "Country", "name": country1, "identifier": t.Country1Slug},
			map[string]any{"@type": "Country", "name": country2, "identifier": t.Country2Alpha3Code},
		},
		"temporalCoverage": valueOr(t.Year.String(), fmt.Sprint(r.now().UTC().Year())),
		"inLanguage":       languageSchema(),
		"about": map[string]any{
			"@type":       "Thing",
			"name":        "Double Taxation Avoidance",
			"description": "International tax treaty to prevent double taxation",
		},
		"publisher":        r.organizationSchema(r.site.Name),
		"mainEntityOfPage": webpageSchema(canonical),
		"mentions": []any{
			countrySchema(country1),
			countrySchema(country2),
		},
		"keywords": valueOr(t.MetaKeywords,
			fmt.Sprintf("%s, %s, DTAA, tax treaty, double taxation", country1, country2)),
		"identifier": map[string]any{
			"@type": "PropertyValue",
			"name":  "Tax Treaty Code",
			"value": slug,
		},
		"isPartOf": map[string]any{
			"@type": "Collection",
			"name":  fmt.Sprintf("%s - %s Double Taxation Agreements", country1, country2),
			"description": fmt.Sprintf(
				"Collection of bilateral tax treaties signed by %s and %s", country1, country2),
		},
	}
	if !t.Official() {
		structured["translationOfWork"] = map[string]any{
			"@type":      "CreativeWork",
			"name":       fmt.Sprintf("Original %s - %s Tax Treaty", country1, country2),
			"inLanguage": "Original Language",
		}
	}

	benefits := fmt.Sprintf(`
    <div class="treaty-benefits">
        <h3>About This Tax Treaty</h3>
        <p>This Double Taxation Avoidance Agreement between <strong>%s</strong> and <strong>%s</strong> provides:</p>
        <ul>
            <li>Elimination of double taxation on income and capital</li>
            <li>Prevention of tax evasion and avoidance</li>
            <li>Clear residence rules for tax purposes</li>
            <li>Reduced withholding taxes on cross-border payments</li>
        </ul>
    </div>`, country1, EscapeHTML(country2))

	return r.renderPage(page{
		MetaTitle: title,
		Meta: MetaTags{
			Title:       title,
			Description: description,
			Keywords: valueOr(t.MetaKeywords, Keywords(corpus.KindTreaty, map[string]string{
				"country2Name": t.Country2Name,
			})),
			Canonical:  canonical,
			OGImage:    r.defaultOGImage(),
			OGImageAlt: title + " - " + r.site.Name,
		},
		DocMeta:        docMeta,
		Breadcrumb:     breadcrumb,
		Content:        ExtractBody(CleanContent(t.Content, r.site.PublicPath) + benefits),
		StructuredData: structured,
		DocType:        "tax-treaties",
		RelatedContent: r.RelatedDocsHTML(related),
	})
}

// breadcrumb wraps crumbs in the shared breadcrumb nav, always rooted at Home.
func (r *Renderer) breadcrumb(crumbs ...string) string {
	all := append([]string{`<a href="/">Home</a>`}, crumbs...)
	return fmt.Sprintf(`
    <nav class="breadcrumb-nav" aria-label="Breadcrumb">
        <div class="container">
            %s
        </div>
    </nav>`, strings.Join(all, " &rsaquo; "))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
