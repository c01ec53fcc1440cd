package corpus

import "fmt"

// Kind identifies one of the five publishable document kinds.
type Kind int

const (
	KindArticle Kind = iota
	KindDecision
	KindGuidance
	KindTreaty
	KindBlog
)

// kindSegments maps each kind to its URL path segment and output directory name.
var kindSegments = map[Kind]string{
	KindArticle:  "articles",
	KindDecision: "decisions",
	KindGuidance: "guidances",
	KindTreaty:   "tax-treaties",
	KindBlog:     "blogs",
}

// Kinds returns all document kinds in their canonical processing order.
func Kinds() []Kind {
	return []Kind{KindArticle, KindDecision, KindGuidance, KindTreaty, KindBlog}
}

// Segment returns the URL path segment for the kind (e.g. "tax-treaties").
func (k Kind) Segment() string {
	if s, ok := kindSegments[k]; ok {
		return s
	}
	return "unknown"
}

// String implements fmt.Stringer using the URL segment.
func (k Kind) String() string {
	return k.Segment()
}

// ParseKind resolves a URL path segment to a Kind.
func ParseKind(segment string) (Kind, error) {
	for k, s := range kindSegments {
		if s == segment {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown document kind %q", segment)
}
