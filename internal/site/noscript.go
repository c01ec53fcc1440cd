package site

import (
	"fmt"
	"os"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/taxsitegen/internal/render"
)

// lawStyle picks the accent color, emoji and display type for a law section.
func lawStyle(lawShortName string) (color, emoji, lawType string) {
	short := strings.ToLower(lawShortName)
	switch {
	case strings.Contains(short, "cit"):
		return "#007bff", "📊", "Corporate Income Tax"
	case strings.Contains(short, "vat"):
		return "#28a745", "💰", "Value Added Tax"
	case strings.Contains(short, "excise"):
		return "#dc3545", "🚬", "Excise Tax"
	case strings.Contains(short, "tp"):
		return "#6f42c1", "🔄", "Transfer Pricing"
	default:
		return "#6c757d", "📜", "Tax Law"
	}
}

// buildNoscript renders the crawler-facing summary of the entire corpus
// placed inside the host page's noscript block.
func (g *Generator) buildNoscript(l *listing) string {
	totalArticles, totalDecisions := 0, 0
	for _, group := range l.Laws {
		totalArticles += len(group.Articles)
		totalDecisions += len(group.Decisions)
	}

	publicPath := g.cfg.Site.PublicPath
	var b strings.Builder

	fmt.Fprintf(&b, `
  <style>
    .index-container { max-width: 1200px; margin: 0 auto; padding: 20px; font-family: Arial, sans-serif; line-height: 1.6; }
    .index-header { text-align: center; margin-bottom: 40px; padding: 20px; background: #e2eaf2; border-radius: 8px; }
    .index-header h1 { color: #232536; margin-bottom: 10px; }
    .section-title { color: #232536; border-bottom: 3px solid; padding-bottom: 10px; }
    .section-count { font-size: 14px; margin-left: 15px; color: #666; font-weight: normal; }
    .section-box { background: #e2eaf2; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
    .subsection-title { color: #232536; border-left: 4px solid; padding-left: 15px; margin-bottom: 15px; }
    .document-item { border-left: 4px solid; padding: 15px; background: white; border-radius: 0 8px 8px 0; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
    .document-description { margin: 0; color: #666; font-size: 14px; line-height: 1.4; }
  </style>
  <div class="index-container">
    <header class="index-header">
      <h1>📋 %s</h1>
      <p style="font-size: 18px;">Searchable GCC tax database: UAE VAT &amp; Corporate Tax (CIT) Saudi/KSA VAT customs duty excise transfer pricing and tax treaties (DTAA). Kuwait Oman Qatar Bahrain.</p>
      <p style="font-size: 16px;">
        <strong>%d Articles</strong> •
        <strong>%d Decisions</strong> •
        <strong>%d Guidelines</strong> •
        <strong>%d Tax Treaties</strong> •
        <strong>%d Blog Posts</strong>
      </p>
    </header>

    <main>`,
		render.EscapeHTML(g.cfg.Site.Name),
		totalArticles, totalDecisions, len(l.Guidances), len(l.Treaties), len(l.Blogs))

	for _, group := range l.Laws {
		color, emoji, lawType := lawStyle(group.LawShortName)
		flag := render.CountryFlag(group.FlagCode)

		fmt.Fprintf(&b, `
      <section style="margin-bottom: 50px;">
        <h2 class="section-title" style="border-bottom-color: %s;">
          %s %s %s
          <span class="section-count">(%d Articles • %d Decisions)</span>
        </h2>
        <div class="section-box">
          <p style="margin: 0; color: #666;">
            <strong>Country:</strong> %s %s •
            <strong>Type:</strong> %s •
            <strong>Short Name:</strong> %s
          </p>
        </div>`,
			color, emoji, flag, render.EscapeHTML(group.LawFullName),
			len(group.Articles), len(group.Decisions),
			flag, render.EscapeHTML(group.CountryName), lawType, render.EscapeHTML(group.LawShortName))

		g.writeNoscriptSection(&b, "📄 Articles", "articles", group.Articles, color)
		g.writeNoscriptSection(&b, "⚖️ Decisions", "decisions", group.Decisions, color)
		b.WriteString("\n      </section>")
	}

	if len(l.Guidances) > 0 {
		fmt.Fprintf(&b, `
      <section style="margin-bottom: 50px;">
        <h2 class="section-title" style="border-bottom-color: #e74c3c;">
          📋 FTA Guidelines &amp; Public Clarifications (%d)
        </h2>`, len(l.Guidances))
		g.writeNoscriptSection(&b, "Guidelines", "guidances", l.Guidances, "#e74c3c")
		b.WriteString("\n      </section>")
	}

	if len(l.Treaties) > 0 {
		fmt.Fprintf(&b, `
      <section style="margin-bottom: 50px;">
        <h2 class="section-title" style="border-bottom-color: #9b59b6;">
          🤝 UAE Tax Treaties &amp; DTAs (%d)
        </h2>
        <div class="section-box">
          <p style="margin: 0; color: #666;">Double Taxation Avoidance Agreements between UAE and treaty partner countries</p>
        </div>`, len(l.Treaties))
		g.writeNoscriptSection(&b, "Tax Treaties", "tax-treaties", l.Treaties, "#9b59b6")
		b.WriteString("\n      </section>")
	}

	if len(l.Blogs) > 0 {
		fmt.Fprintf(&b, `
      <section style="margin-bottom: 50px;">
        <h2 class="section-title" style="border-bottom-color: #17a2b8;">
          📝 Latest Blog Posts &amp; Tax Insights (%d)
        </h2>
        <div class="section-box">
          <p style="margin: 0; color: #666;">Expert insights, analysis, and updates on GCC tax matters, regulations, and compliance</p>
        </div>`, len(l.Blogs))

		// The full blog archive lives on its index page; the noscript block
		// shows the ten newest.
		shown := l.Blogs
		if len(shown) > 10 {
			shown = shown[:10]
		}
		g.writeNoscriptSection(&b, "Blog Posts", "blogs", shown, "#17a2b8")
		if remaining := len(l.Blogs) - len(shown); remaining > 0 {
			fmt.Fprintf(&b, `
          <div style="text-align: center; padding: 20px; background: #e9ecef; border-radius: 8px;">
            <p style="margin: 0; color: #666;">
              <strong>And %d more blog posts...</strong><br>
              <a href="%s/blogs" style="color: #17a2b8;">View all blog posts →</a>
            </p>
          </div>`, remaining, publicPath)
		}
		b.WriteString("\n      </section>")
	}

	fmt.Fprintf(&b, `
      <section style="margin-bottom: 30px;">
        <h2 style="color: #232536;">📚 Browse All Documents</h2>
        <div style="display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px;">
          <a href="%[1]s/articles" style="padding: 15px; background: #e2eaf2; text-decoration: none; border-radius: 5px; text-align: center; display: block;">📄 All Articles (%[2]d)</a>
          <a href="%[1]s/decisions" style="padding: 15px; background: #28a745; color: white; text-decoration: none; border-radius: 5px; text-align: center; display: block;">⚖️ All Decisions (%[3]d)</a>
          <a href="%[1]s/guidances" style="padding: 15px; background: #ffc107; color: white; text-decoration: none; border-radius: 5px; text-align: center; display: block;">📋 All Guidelines (%[4]d)</a>
          <a href="%[1]s/tax-treaties" style="padding: 15px; background: #e74c3c; color: white; text-decoration: none; border-radius: 5px; text-align: center; display: block;">🤝 Tax Treaties (%[5]d)</a>
          <a href="%[1]s/blogs" style="padding: 15px; background: #17a2b8; color: white; text-decoration: none; border-radius: 5px; text-align: center; display: block;">📝 Blog Posts (%[6]d)</a>
        </div>
      </section>

      <div style="background: #fffbf0; border: 1px solid #ffc107; padding: 15px; border-radius: 8px; text-align: center;">
        <p style="margin: 0; color: #856404;">
          <strong>⚠️ JavaScript Required:</strong> This site uses JavaScript for enhanced functionality and search capabilities.
          <br>Please enable JavaScript in your browser for the full interactive experience.
        </p>
        <p style="margin: 10px 0 0 0;">
          <a href="/sitemap.xml" style="color: #007bff;">View Complete Sitemap</a> |
          <a href="/search-across-law" style="color: #007bff;">Advanced Search</a>
        </p>
      </div>
    </main>
  </div>`,
		publicPath, totalArticles, totalDecisions, len(l.Guidances), len(l.Treaties), len(l.Blogs))

	return b.String()
}

func (g *Generator) writeNoscriptSection(b *strings.Builder, heading, docType string, entries []docEntry, color string) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(b, `
        <div style="margin-bottom: 30px;">
          <h3 class="subsection-title" style="border-left-color: %s;">%s (%d)</h3>
          <div style="display: grid; gap: 12px;">`, color, heading, len(entries))

	for _, e := range entries {
		fmt.Fprintf(b, `
            <div class="document-item" style="border-left-color: %s;">
              <h4 style="margin: 0 0 8px 0; font-size: 16px;">
                <a href="%s/%s/%s" style="color: %s; text-decoration: none;">%s</a>
              </h4>
              <p style="margin: 0 0 8px 0; color: #666; font-size: 13px;"><strong>%s</strong></p>`,
			color, g.cfg.Site.PublicPath, docType, e.Slug, color,
			render.EscapeHTML(valueOr(e.Title, "Untitled")), e.Description)
		if e.Preview != "" {
			fmt.Fprintf(b, `
              <p class="document-description">%s</p>`, render.EscapeHTML(e.Preview))
		}
		b.WriteString("\n            </div>")
	}

	b.WriteString(`
          </div>
        </div>`)
}

// patchNoscript replaces the noscript block of the host application's
// index.html with the generated corpus summary, inserting one after the
// body open tag when none exists.
func (g *Generator) patchNoscript(l *listing) error {
	path := g.cfg.Output.IndexHTMLPath

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read host index.html: %w", err)
	}

	doc, err := xhtml.Parse(strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("parse host index.html: %w", err)
	}

	content := &xhtml.Node{Type: xhtml.RawNode, Data: g.buildNoscript(l)}

	if noscript := findNode(doc, atom.Noscript); noscript != nil {
		for child := noscript.FirstChild; child != nil; {
			next := child.NextSibling
			noscript.RemoveChild(child)
			child = next
		}
		noscript.AppendChild(content)
	} else {
		body := findNode(doc, atom.Body)
		if body == nil {
			return fmt.Errorf("host index.html has no body element")
		}
		noscript = &xhtml.Node{
			Type:     xhtml.ElementNode,
			Data:     "noscript",
			DataAtom: atom.Noscript,
		}
		noscript.AppendChild(content)
		if body.FirstChild != nil {
			body.InsertBefore(noscript, body.FirstChild)
		} else {
			body.AppendChild(noscript)
		}
	}

	var out strings.Builder
	if err := xhtml.Render(&out, doc); err != nil {
		return fmt.Errorf("render host index.html: %w", err)
	}

	if err := os.WriteFile(path, []byte(out.String()), 0644); err != nil {
		return fmt.Errorf("write host index.html: %w", err)
	}
	return nil
}

func findNode(n *xhtml.Node, a atom.Atom) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.DataAtom == a {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findNode(child, a); found != nil {
			return found
		}
	}
	return nil
}
