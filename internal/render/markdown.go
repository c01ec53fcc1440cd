package render

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownToHTML converts a markdown blog body to HTML. Raw HTML passes
// through unchanged since editorial content mixes both freely.
func markdownToHTML(source string) (string, error) {
	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	var b strings.Builder
	if err := md.Convert([]byte(source), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
