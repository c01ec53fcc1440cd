package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// writeRobots emits robots.txt pointing crawlers at the sitemap.
func (g *Generator) writeRobots() error {
	content := fmt.Sprintf(`User-agent: *
Allow: /

# Sitemaps
Sitemap: %s/sitemap.xml

# Block access to SEO directory for humans
User-agent: *
Disallow: /register
Disallow: /login
Disallow: /seo/

# Allow bots to access all content
User-agent: Googlebot
Allow: /

User-agent: Bingbot
Allow: /

User-agent: Slurp
Allow: /

# Block development paths
Disallow: /internal-seo/
`, g.cfg.Site.URL)

	path := filepath.Join(g.cfg.Output.Dir, "robots.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write robots.txt: %w", err)
	}
	return nil
}

// writeManifest emits the web app manifest for the generated pages.
func (g *Generator) writeManifest() error {
	manifest := map[string]any{
		"name":       g.cfg.Site.Name,
		"short_name": g.cfg.Site.ShortName,
		"description": "Explore up-to-date GCC tax insights including VAT updates, corporate tax " +
			"regulations, Zakat rules, Double Taxation Avoidance Agreements, and compliance " +
			"guidance across UAE, Saudi Arabia, Bahrain, Kuwait, Qatar and Oman",
		"start_url":        "/",
		"display":          "minimal-ui",
		"theme_color":      "#ffffff",
		"background_color": "#29497e",
		"icons": []any{
			map[string]any{
				"src":   "/web-app-manifest-192x192.png",
				"sizes": "192x192",
				"type":  "image/png",
			},
			map[string]any{
				"src":   "/web-app-manifest-512x512.png",
				"sizes": "512x512",
				"type":  "image/png",
			},
		},
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	path := filepath.Join(g.cfg.Output.Dir, "site.webmanifest")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
