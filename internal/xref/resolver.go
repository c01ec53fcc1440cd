package xref

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"git.home.luguber.info/inful/taxsitegen/internal/logfields"
	"git.home.luguber.info/inful/taxsitegen/internal/metrics"
)

// Link is a related-document reference resolved against the live corpus.
type Link struct {
	Title   string
	Slug    string
	DocType string // kind segment, or "laws" for passthrough references
	URL     string
}

// Source identifies the document whose relatedDocs list is being resolved,
// for event reporting.
type Source struct {
	Slug string
	Kind string
}

// Resolver matches related-document URLs against an Index.
type Resolver struct {
	index     *Index
	publisher Publisher
	recorder  metrics.Recorder
	runID     string
}

// NewResolver creates a resolver over a built index. publisher may be nil.
func NewResolver(index *Index, publisher Publisher, recorder metrics.Recorder, runID string) *Resolver {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Resolver{index: index, publisher: publisher, recorder: recorder, runID: runID}
}

// Resolve turns a document's raw relatedDocs list into resolved links.
// Input order is preserved; /laws/ references pass through unresolved;
// malformed and unmatched references are dropped in place. The result is
// always a non-nil slice and resolution never fails.
func (r *Resolver) Resolve(ctx context.Context, relatedURLs []string, source Source) []Link {
	links := make([]Link, 0, len(relatedURLs))

	for _, url := range relatedURLs {
		if isLawsRef(url) {
			trimmed := strings.TrimSpace(url)
			links = append(links, Link{Title: trimmed, Slug: "", DocType: "laws", URL: trimmed})
			continue
		}

		ref, ok := Parse(url)
		if !ok {
			slog.Debug("Dropping malformed related-document URL",
				logfields.URL(url), logfields.Slug(source.Slug))
			continue
		}

		entry, found := r.index.Lookup(ref.Kind, ref.Slug)
		if !found {
			r.recorder.UnresolvedReference()
			slog.Debug("Dropping unresolved related-document URL",
				logfields.URL(url),
				logfields.Kind(ref.Kind.String()),
				logfields.Slug(source.Slug))
			r.publishBrokenRef(ctx, ref, source)
			continue
		}

		links = append(links, Link{
			Title:   entry.Title,
			Slug:    entry.Slug,
			DocType: entry.Kind.Segment(),
			URL:     ref.URL,
		})
	}

	return links
}

func (r *Resolver) publishBrokenRef(ctx context.Context, ref Ref, source Source) {
	if r.publisher == nil {
		return
	}
	event := &BrokenRefEvent{
		URL:        ref.URL,
		Kind:       ref.Kind.Segment(),
		SourceSlug: source.Slug,
		SourceKind: source.Kind,
		RunID:      r.runID,
		Timestamp:  time.Now().UTC(),
	}
	if err := r.publisher.PublishBrokenRef(ctx, event); err != nil {
		slog.Warn("Failed to publish broken reference event",
			logfields.URL(ref.URL), logfields.Error(err))
	}
}
