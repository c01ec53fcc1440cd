package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
)

var internalHrefKinds = []string{"articles", "decisions", "guidances", "blogs", "tax-treaties"}

// EscapeHTML escapes HTML special characters, tolerating empty input.
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	return html.EscapeString(text)
}

// RenderTitle prepares a title for markup output. Titles carrying
// intentional span tags (editorial styling) pass through; everything else
// is escaped.
func RenderTitle(text string) string {
	if text == "" {
		return ""
	}
	if strings.Contains(text, "<span") || strings.Contains(text, "</span>") {
		return text
	}
	return html.EscapeString(text)
}

// Truncate shortens text to maxLength runes, appending an ellipsis.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

// StripTags removes all markup from a fragment, keeping only text content.
func StripTags(fragment string) string {
	if fragment == "" {
		return ""
	}
	tokenizer := xhtml.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == xhtml.ErrorToken {
			return b.String()
		}
		if tt == xhtml.TextToken {
			b.Write(tokenizer.Text())
		}
	}
}

// ExtractBody returns the content between <body> tags of a full HTML
// document, or the input unchanged when no body element exists. Empty
// content yields a placeholder paragraph.
func ExtractBody(content string) string {
	if content == "" {
		return "<p>Content not available</p>"
	}

	doc, err := xhtml.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}

	body := findElement(doc, "body")
	if body == nil {
		return content
	}

	var b strings.Builder
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if err := xhtml.Render(&b, child); err != nil {
			return content
		}
	}
	rendered := strings.TrimSpace(b.String())
	if rendered == "" {
		return content
	}
	return rendered
}

func findElement(n *xhtml.Node, tag string) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// CleanContent prepares stored HTML content for display, rewriting
// internal document links with the configured public path prefix.
func CleanContent(content, publicPath string) string {
	if content == "" {
		return "<p>Content not available</p>"
	}
	if publicPath == "" {
		return content
	}

	for _, kind := range internalHrefKinds {
		doubleQuoted := regexp.MustCompile(`(?i)href="/` + kind + `/([^"]+?)"`)
		content = doubleQuoted.ReplaceAllString(content, fmt.Sprintf(`href="%s/%s/$1"`, publicPath, kind))

		singleQuoted := regexp.MustCompile(`(?i)href='/` + kind + `/([^']+?)'`)
		content = singleQuoted.ReplaceAllString(content, fmt.Sprintf(`href='%s/%s/$1'`, publicPath, kind))
	}
	return content
}

// ReadingTime estimates reading minutes at 225 words per minute, minimum 1.
func ReadingTime(content string) int {
	if content == "" {
		return 1
	}
	words := len(strings.Fields(StripTags(content)))
	minutes := (words + 112) / 225 // round to nearest
	if minutes < 1 {
		return 1
	}
	return minutes
}
