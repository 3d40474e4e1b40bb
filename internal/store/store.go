package store

import "context"

// Store is the document-store handle built at bootstrap. The page flow never
// reads from or writes to it: documents come from the static knowledge base.
// It is only probed for readiness and closed on shutdown.
type Store interface {
	Ping(ctx context.Context) error
	Close() error
}
