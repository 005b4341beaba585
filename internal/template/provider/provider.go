package provider

import "context"

// Provider enumerates candidate source files under a root directory.
type Provider interface {
	// List returns the absolute paths of candidate files under root,
	// depth-first in lexical order.
	List(ctx context.Context, root string) ([]string, error)

	// Name returns the provider name (e.g., "local").
	Name() string
}
