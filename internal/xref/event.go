package xref

import (
	"context"
	"time"
)

// BrokenRefEvent reports a related-document reference that did not resolve
// against the current corpus. Published for downstream processing, e.g.
// opening a content issue against the data repository.
type BrokenRefEvent struct {
	URL        string    `json:"url"`         // the unresolved reference
	Kind       string    `json:"kind"`        // requested document kind segment
	SourceSlug string    `json:"source_slug"` // document whose relatedDocs contained the reference
	SourceKind string    `json:"source_kind"`
	RunID      string    `json:"run_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher delivers broken reference events to an external sink.
type Publisher interface {
	PublishBrokenRef(ctx context.Context, event *BrokenRefEvent) error
	Close() error
}
