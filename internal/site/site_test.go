package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/taxsitegen/internal/config"
	"git.home.luguber.info/inful/taxsitegen/internal/state"
)

const lawFileJSON = `[
  {
    "countryName": "UAE",
    "alpha3Code": "ARE",
    "flagCode": "AE",
    "laws": [
      {
        "lawFullName": "Federal Decree-Law No. 47 of 2022",
        "lawShortName": "cit-fdl-47-of-2022",
        "articles": [
          {"number": "2", "title": "Imposition", "orderIndex": 2, "textOnly": "Corporate tax shall be imposed."},
          {"number": "1", "title": "Definitions", "orderIndex": 1, "textOnly": "In this Decree-Law.",
           "relatedDocs": ["/articles/uae-cit-fdl-47-of-2022-article-2", "/articles/missing-article"]},
          {"number": "", "title": "No number"}
        ],
        "decisions": [
          {"number": "35", "year": "2025", "type": "CD - Cabinet Decision", "title": "Executive Regulation", "name": "Cabinet Decision No. 35 of 2025"}
        ],
        "guidelines": [
          {"uniqueCode": "CTGFF1", "type": "GUIDE - FTA Guide", "title": "Free Zone Guide"}
        ]
      }
    ]
  }
]`

const treatyFileJSON = `[
  {"country1Slug": "uae", "country2Alpha3Code": "ALB", "country2Name": "Albania", "title": "UAE-Albania DTAA", "year": "2014"}
]`

const blogFileJSON = `[
  {"title": "Corporate Tax Basics", "published": true, "publishedDate": "2025-06-01T08:00:00Z", "description": "Intro.", "content": "<p>Body.</p>"},
  {"title": "Older Post", "published": true, "publishedDate": "2024-01-01T08:00:00Z", "content": "<p>Old.</p>"},
  {"title": "Unpublished", "published": false}
]`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dataDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "seo")

	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "laws.json"), []byte(lawFileJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "treaties.json"), []byte(treatyFileJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "blogs.json"), []byte(blogFileJSON), 0644))

	return &config.Config{
		Site: config.SiteConfig{
			URL:            "https://gcctaxlaws.com",
			Name:           "GCC Tax Laws",
			ShortName:      "GTL",
			DefaultOGImage: "/web-app-manifest-512x512.png",
			PublicPath:     "/seo",
			Author:         "Team GTL",
		},
		Data: config.DataConfig{
			Dir:         dataDir,
			LawFiles:    []string{"laws.json"},
			TreatyFiles: []string{"treaties.json"},
			BlogFiles:   []string{"blogs.json"},
		},
		Output: config.OutputConfig{Dir: outDir, Clean: true},
	}
}

func TestRunGeneratesAllKinds(t *testing.T) {
	cfg := testConfig(t)
	gen := NewGenerator(cfg, nil, nil, nil, "run-1")

	summary, err := gen.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Generated["articles"])
	assert.Equal(t, 1, summary.Generated["decisions"])
	assert.Equal(t, 1, summary.Generated["guidances"])
	assert.Equal(t, 1, summary.Generated["tax-treaties"])
	assert.Equal(t, 2, summary.Generated["blogs"])
	assert.Equal(t, 2, summary.Excluded, "numberless article and unpublished blog")

	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "articles", "uae-cit-fdl-47-of-2022-article-1.html"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "decisions", "uae-cit-fdl-47-of-2022-cd-35-of-2025.html"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "guidances", "uae-cit-fdl-47-of-2022-guide-CTGFF1.html"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "tax-treaties", "uae-alb-dtaa.html"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "blogs", "corporate-tax-basics.html"))
}

func TestRunResolvesRelatedDocs(t *testing.T) {
	cfg := testConfig(t)
	gen := NewGenerator(cfg, nil, nil, nil, "run-1")

	_, err := gen.Run(context.Background())
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "articles", "uae-cit-fdl-47-of-2022-article-1.html"))
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Related Documents")
	assert.Contains(t, html, "/articles/uae-cit-fdl-47-of-2022-article-2")
	assert.NotContains(t, html, "missing-article", "unresolved references are dropped")
	// prev/next navigation within the law
	assert.Contains(t, html, "/seo/articles/uae-cit-fdl-47-of-2022-article-2")
}

func TestRunWritesSiteArtifacts(t *testing.T) {
	cfg := testConfig(t)
	gen := NewGenerator(cfg, nil, nil, nil, "run-1")

	_, err := gen.Run(context.Background())
	require.NoError(t, err)

	sitemap, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://gcctaxlaws.com/</loc>")
	assert.Contains(t, string(sitemap), "https://gcctaxlaws.com/articles/uae-cit-fdl-47-of-2022-article-1")
	assert.Contains(t, string(sitemap), "https://gcctaxlaws.com/blogs/corporate-tax-basics")
	assert.Contains(t, string(sitemap), "<changefreq>daily</changefreq>")

	robots, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Sitemap: https://gcctaxlaws.com/sitemap.xml")

	manifest, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "site.webmanifest"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"short_name": "GTL"`)
	assert.Contains(t, string(manifest), `"minimal-ui"`)

	index, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "articles", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "All Articles | GCC Tax Laws")
	assert.Contains(t, string(index), "Federal Decree-Law No. 47 of 2022")
}

func TestRunPatchesHostNoscript(t *testing.T) {
	cfg := testConfig(t)
	hostIndex := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(hostIndex, []byte(
		`<!DOCTYPE html><html><head><title>App</title></head><body><noscript>enable js</noscript><div id="root"></div></body></html>`,
	), 0644))
	cfg.Output.IndexHTMLPath = hostIndex

	gen := NewGenerator(cfg, nil, nil, nil, "run-1")
	_, err := gen.Run(context.Background())
	require.NoError(t, err)

	patched, err := os.ReadFile(hostIndex)
	require.NoError(t, err)
	html := string(patched)
	assert.NotContains(t, html, "enable js")
	assert.Contains(t, html, "2 Articles")
	assert.Contains(t, html, "Federal Decree-Law No. 47 of 2022")
	assert.Contains(t, html, `<div id="root">`, "application markup survives the patch")
	assert.Equal(t, 1, strings.Count(html, "<noscript>"))
}

func TestRunSkipsUnchangedWithStateCache(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Clean = false

	cache, err := state.Open(":memory:")
	require.NoError(t, err)
	defer cache.Close()

	gen := NewGenerator(cfg, nil, cache, nil, "run-1")
	first, err := gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, first.Total())
	assert.Equal(t, 0, first.Skipped)

	second, err := NewGenerator(cfg, nil, cache, nil, "run-2").Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Total())
	assert.Equal(t, 7, second.Skipped)
}
