package xref

import (
	"strings"

	"git.home.luguber.info/inful/taxsitegen/internal/corpus"
)

// Ref is a parsed related-document reference of the form /<kind>/<slug>.
type Ref struct {
	Kind corpus.Kind
	Slug string
	URL  string
}

// lawsPrefix marks legacy free-text references that pass through unresolved.
const lawsPrefix = "/laws/"

// Parse splits a related-document URL into its kind and slug. URLs that do
// not carry exactly two path segments, or whose first segment is not a
// known document kind, report ok=false and are excluded from resolution.
func Parse(url string) (Ref, bool) {
	url = strings.TrimSpace(url)
	if url == "" || !strings.HasPrefix(url, "/") {
		return Ref{}, false
	}

	segment, slug, found := strings.Cut(url[1:], "/")
	if !found || slug == "" {
		return Ref{}, false
	}

	kind, err := corpus.ParseKind(segment)
	if err != nil {
		return Ref{}, false
	}

	return Ref{Kind: kind, Slug: slug, URL: url}, true
}

// isLawsRef reports whether the URL is a legacy /laws/ passthrough.
func isLawsRef(url string) bool {
	return strings.HasPrefix(strings.TrimSpace(url), lawsPrefix)
}
