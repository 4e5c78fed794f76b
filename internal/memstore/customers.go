package memstore

import (
	"context"

	"storehub/internal/apierror"
	"storehub/internal/model"
	"storehub/internal/repository"
)

type customerStore struct{ s *Store }

func (s *Store) Customers() repository.CustomerRepository { return customerStore{s} }

func (st customerStore) List(_ context.Context) ([]model.Customer, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	out := make([]model.Customer, len(st.s.customers))
	copy(out, st.s.customers)
	return out, nil
}

func (st customerStore) FindByID(_ context.Context, id int) (*model.Customer, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.customers {
		if st.s.customers[i].ID == id {
			c := st.s.customers[i]
			return &c, nil
		}
	}
	return nil, apierror.ErrNotFound
}

func (st customerStore) Create(_ context.Context, c *model.Customer) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	id := 0
	for i := range st.s.customers {
		if st.s.customers[i].ID > id {
			id = st.s.customers[i].ID
		}
	}
	c.ID = id + 1
	c.CreatedAt = now()
	st.s.customers = append(st.s.customers, *c)
	return nil
}

func (st customerStore) Update(_ context.Context, c *model.Customer) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.customers {
		if st.s.customers[i].ID == c.ID {
			st.s.customers[i] = *c
			return nil
		}
	}
	return apierror.ErrNotFound
}

func (st customerStore) Delete(_ context.Context, id int) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.customers[:0]
	for _, c := range st.s.customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	st.s.customers = kept
	return nil
}
