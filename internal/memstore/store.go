// Package memstore is the in-memory storage backend. It preserves the exact
// semantics of the original mock data layer: slice-backed collections in
// insertion order, ids assigned as max(existing)+1 (1 for an empty
// collection), filter-style deletes that are idempotent, and a floored
// best-effort inventory decrement on sale creation. Foreign keys are not
// validated and deletes do not cascade.
//
// All state is process-lifetime only. A single mutex guards the whole store:
// the logical model is one writer at a time, the lock only protects against
// the HTTP layer's goroutines.
package memstore

import (
	"sync"
	"time"

	"storehub/internal/model"
)

// Store holds every collection. Obtain per-entity repositories via the
// accessor methods; all of them satisfy the interfaces in the repository
// package.
type Store struct {
	mu sync.Mutex

	branches    []model.Branch
	users       []model.User
	products    []model.Product
	inventories []model.Inventory
	customers   []model.Customer
	sales       []model.Sale
}

func New() *Store { return &Store{} }

func now() time.Time { return time.Now().UTC() }
