// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"encoding/json"

	"walkroute/internal/domain/entity"
)

// CachedResponse is the raw provider payload stored for a request key. It is never mutated.
type CachedResponse = json.RawMessage

// ResponseMap is the complete persisted mapping of request keys to provider responses.
type ResponseMap map[entity.RequestKey]CachedResponse

// Get looks up an exact key. A miss is reported through ok, not as an error.
func (m ResponseMap) Get(key entity.RequestKey) (resp CachedResponse, ok bool) {
	resp, ok = m[key]

	return resp, ok
}

// ResponseCache persists the whole response map as a single unit.
//
// Writers do a read-modify-write of the full map, so concurrent writers can
// clobber each other's entries.
type ResponseCache interface {
	// Load returns the persisted map. A store that does not exist yet yields an
	// empty map and no error.
	Load(ctx context.Context) (ResponseMap, error)

	// Save overwrites the persisted map. Failures are *errors.StorageError.
	Save(ctx context.Context, responses ResponseMap) error
}
