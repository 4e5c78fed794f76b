package memstore

import (
	"context"

	"storehub/internal/apierror"
	"storehub/internal/model"
	"storehub/internal/repository"
)

type productStore struct{ s *Store }

func (s *Store) Products() repository.ProductRepository { return productStore{s} }

func (st productStore) List(_ context.Context) ([]model.Product, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	out := make([]model.Product, len(st.s.products))
	copy(out, st.s.products)
	return out, nil
}

func (st productStore) FindByID(_ context.Context, id int) (*model.Product, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.products {
		if st.s.products[i].ID == id {
			p := st.s.products[i]
			return &p, nil
		}
	}
	return nil, apierror.ErrNotFound
}

func (st productStore) Create(_ context.Context, p *model.Product) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	id := 0
	for i := range st.s.products {
		if st.s.products[i].ID > id {
			id = st.s.products[i].ID
		}
	}
	p.ID = id + 1
	p.CreatedAt = now()
	p.UpdatedAt = p.CreatedAt
	st.s.products = append(st.s.products, *p)
	return nil
}

func (st productStore) Update(_ context.Context, p *model.Product) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.products {
		if st.s.products[i].ID == p.ID {
			p.UpdatedAt = now()
			st.s.products[i] = *p
			return nil
		}
	}
	return apierror.ErrNotFound
}

func (st productStore) Delete(_ context.Context, id int) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.products[:0]
	for _, p := range st.s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	st.s.products = kept
	return nil
}
