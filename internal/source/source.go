// Package source picks a store back-end for a path.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mailcorpus/internal/dirstore"
	"mailcorpus/internal/mailstore"
	"mailcorpus/internal/storage"
)

// Backend is an Opener that can tell from a path whether it applies.
type Backend interface {
	mailstore.Opener
	Handles(path string) bool
}

// Registry tries its back-ends in order and opens a path with the first one
// that handles it. It implements mailstore.Opener.
type Registry struct {
	backends []Backend
}

// New creates a Registry over backends.
func New(backends ...Backend) *Registry {
	return &Registry{backends: backends}
}

// Default returns the registry of every built-in back-end.
func Default() *Registry {
	return New(storage.Opener{}, dirstore.Opener{})
}

// Open implements mailstore.Opener.
func (r *Registry) Open(ctx context.Context, path string) (mailstore.Store, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("open %s: %w", path, mailstore.ErrNotFound)
	}
	for _, b := range r.backends {
		if b.Handles(path) {
			return b.Open(ctx, path)
		}
	}
	return nil, fmt.Errorf("open %s: %w", path, mailstore.ErrUnsupported)
}

// Handles reports whether any back-end handles path.
func (r *Registry) Handles(path string) bool {
	for _, b := range r.backends {
		if b.Handles(path) {
			return true
		}
	}
	return false
}
