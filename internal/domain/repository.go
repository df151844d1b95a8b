package domain

import "context"

// ProductSource defines the interface for loading the current catalog
// snapshot. The multi-source loader is the production implementation; tests
// substitute fixed catalogs.
type ProductSource interface {
	Load(ctx context.Context) (*Catalog, error)
}

// ClickStore defines the interface for tracking outbound affiliate clicks.
// Counts are keyed by product ID and survive catalog reloads.
type ClickStore interface {
	Increment(id string) (int, error)
	ReadAll() map[string]int
}

// ContactSink receives contact-form submissions. Implementations may decline
// (false, nil) when no write target is configured.
type ContactSink interface {
	Append(ctx context.Context, email, message, ip string) (bool, error)
}
