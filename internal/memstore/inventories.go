package memstore

import (
	"context"

	"storehub/internal/apierror"
	"storehub/internal/model"
	"storehub/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type inventoryStore struct{ s *Store }

func (s *Store) Inventories() repository.InventoryRepository { return inventoryStore{s} }

func (st inventoryStore) List(_ context.Context) ([]model.Inventory, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	out := make([]model.Inventory, len(st.s.inventories))
	copy(out, st.s.inventories)
	return out, nil
}

func (st inventoryStore) FindByID(_ context.Context, id int) (*model.Inventory, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.inventories {
		if st.s.inventories[i].ID == id {
			inv := st.s.inventories[i]
			return &inv, nil
		}
	}
	return nil, apierror.ErrNotFound
}

func (st inventoryStore) FindByBranchAndProduct(_ context.Context, branchID, productID int) (*model.Inventory, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.inventories {
		if st.s.inventories[i].BranchID == branchID && st.s.inventories[i].ProductID == productID {
			inv := st.s.inventories[i]
			return &inv, nil
		}
	}
	return nil, apierror.ErrNotFound
}

func (st inventoryStore) Create(_ context.Context, inv *model.Inventory) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	id := 0
	for i := range st.s.inventories {
		if st.s.inventories[i].ID > id {
			id = st.s.inventories[i].ID
		}
	}
	inv.ID = id + 1
	inv.UpdatedAt = now()
	st.s.inventories = append(st.s.inventories, *inv)
	return nil
}

func (st inventoryStore) Update(_ context.Context, inv *model.Inventory) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.inventories {
		if st.s.inventories[i].ID == inv.ID {
			inv.UpdatedAt = now()
			st.s.inventories[i] = *inv
			return nil
		}
	}
	return apierror.ErrNotFound
}

func (st inventoryStore) Delete(_ context.Context, id int) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.inventories[:0]
	for _, inv := range st.s.inventories {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	st.s.inventories = kept
	return nil
}

// DecrementQuantityTx ignores tx — the store mutex is the whole transaction.
// A missing (branch, product) row leaves the store untouched.
func (st inventoryStore) DecrementQuantityTx(_ *gorm.DB, branchID, productID int, qty decimal.Decimal) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.inventories {
		inv := &st.s.inventories[i]
		if inv.BranchID == branchID && inv.ProductID == productID {
			inv.Quantity = inv.Quantity.Sub(qty)
			if inv.Quantity.IsNegative() {
				inv.Quantity = decimal.Zero
			}
			inv.UpdatedAt = now()
			return nil
		}
	}
	return nil
}
