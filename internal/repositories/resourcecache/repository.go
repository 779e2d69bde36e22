// Package resourcecache stores raw PokeAPI responses for the lifetime of a session
package resourcecache

//go:generate mockgen -destination=mock/mock_repository.go -package=resourcecachemock github.com/KirkDiggler/dex-api/internal/repositories/resourcecache Repository

import (
	"context"
	"time"
)

// Repository defines the interface for cached resource bodies.
// Entries are grouped by namespace so a session can drop its own in one call.
type Repository interface {
	// Get returns the cached body for a key
	// Returns errors.InvalidArgument for an empty namespace or key
	// Returns errors.NotFound if nothing is cached
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a body, replacing any existing entry
	// Returns errors.InvalidArgument for an empty namespace or key
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Clear removes every entry in a namespace
	// Returns errors.InvalidArgument for an empty namespace
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// GetInput defines the input for reading a cached body
type GetInput struct {
	Namespace string
	Key       string
}

// GetOutput defines the output for reading a cached body
type GetOutput struct {
	Body []byte
}

// PutInput defines the input for caching a body.
// A zero TTL keeps the entry until its namespace is cleared.
type PutInput struct {
	Namespace string
	Key       string
	Body      []byte
	TTL       time.Duration
}

// PutOutput defines the output for caching a body
type PutOutput struct{}

// ClearInput defines the input for clearing a namespace
type ClearInput struct {
	Namespace string
}

// ClearOutput defines the output for clearing a namespace
type ClearOutput struct {
	Deleted int
}

const (
	errNamespaceEmpty = "namespace cannot be empty"
	errKeyEmpty       = "key cannot be empty"
)
