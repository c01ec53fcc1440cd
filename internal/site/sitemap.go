package site

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// staticPages are the host application routes always present in the sitemap.
var staticPages = []string{
	"/search-across-law",
	"/cookie-policy",
	"/privacy-policy",
	"/terms-and-conditions",
	"/about-us",
	"/contact-us",
	"/features",
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	Changefreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
	Lastmod    string `xml:"lastmod"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// writeSitemap emits sitemap.xml covering the root, static host pages,
// kind index pages and every generated document.
func (g *Generator) writeSitemap(l *listing) error {
	today := time.Now().UTC().Format("2006-01-02")
	siteURL := g.cfg.Site.URL

	add := func(set *urlset, loc, changefreq, priority string) {
		set.URLs = append(set.URLs, sitemapURL{
			Loc: loc, Changefreq: changefreq, Priority: priority, Lastmod: today,
		})
	}

	set := &urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	add(set, siteURL+"/", "daily", "1.0")
	for _, page := range staticPages {
		add(set, siteURL+page, "weekly", "0.8")
	}

	categories := []struct {
		docType string
		slugs   []string
	}{
		{"articles", l.articleSlugs()},
		{"decisions", l.decisionSlugs()},
		{"guidances", slugsOf(l.Guidances)},
		{"tax-treaties", slugsOf(l.Treaties)},
		{"blogs", slugsOf(l.Blogs)},
	}
	for _, cat := range categories {
		add(set, fmt.Sprintf("%s/%s", siteURL, cat.docType), "weekly", "0.8")
		for _, s := range cat.slugs {
			add(set, fmt.Sprintf("%s/%s/%s", siteURL, cat.docType, s), "monthly", "0.6")
		}
	}

	data, err := xml.MarshalIndent(set, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal sitemap: %w", err)
	}

	path := filepath.Join(g.cfg.Output.Dir, "sitemap.xml")
	content := append([]byte(xml.Header), data...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	return nil
}
