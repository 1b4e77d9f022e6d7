// Package users implements the demo collection API's user store.
package users

import "context"

// Repository stores user records in insertion order. Implementations return
// common.ErrorNotFound for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	// Create assigns the next id and stores rec.
	Create(ctx context.Context, rec Record) (Record, error)
	// Update replaces the record with id, keeping its position.
	Update(ctx context.Context, id string, rec Record) (Record, error)
	Delete(ctx context.Context, id string) error
	// NextID reports the id Create would assign next without using it.
	NextID(ctx context.Context) int64
}
