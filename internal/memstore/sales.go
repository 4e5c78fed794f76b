package memstore

import (
	"context"

	"storehub/internal/model"
	"storehub/internal/repository"

	"gorm.io/gorm"
)

type saleStore struct{ s *Store }

func (s *Store) Sales() repository.SaleRepository { return saleStore{s} }

// List returns sales in creation order; the dashboard trend relies on it.
func (st saleStore) List(_ context.Context) ([]model.Sale, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	out := make([]model.Sale, len(st.s.sales))
	copy(out, st.s.sales)
	return out, nil
}

func (st saleStore) Create(_ context.Context, _ *gorm.DB, sale *model.Sale) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	id := 0
	for i := range st.s.sales {
		if st.s.sales[i].ID > id {
			id = st.s.sales[i].ID
		}
	}
	sale.ID = id + 1
	sale.CreatedAt = now()
	st.s.sales = append(st.s.sales, *sale)
	return nil
}

func (st saleStore) DB() *gorm.DB { return nil }
