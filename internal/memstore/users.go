package memstore

import (
	"context"

	"storehub/internal/apierror"
	"storehub/internal/model"
	"storehub/internal/repository"
)

type userStore struct{ s *Store }

func (s *Store) Users() repository.UserRepository { return userStore{s} }

func (st userStore) List(_ context.Context) ([]model.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	out := make([]model.User, len(st.s.users))
	copy(out, st.s.users)
	return out, nil
}

func (st userStore) ListByRole(_ context.Context, role string) ([]model.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	var out []model.User
	for _, u := range st.s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (st userStore) FindByID(_ context.Context, id int) (*model.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.users {
		if st.s.users[i].ID == id {
			u := st.s.users[i]
			return &u, nil
		}
	}
	return nil, apierror.ErrNotFound
}

func (st userStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.users {
		if st.s.users[i].Email == email {
			u := st.s.users[i]
			return &u, nil
		}
	}
	return nil, apierror.ErrNotFound
}

func (st userStore) Create(_ context.Context, u *model.User) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	id := 0
	for i := range st.s.users {
		if st.s.users[i].ID > id {
			id = st.s.users[i].ID
		}
	}
	u.ID = id + 1
	u.CreatedAt = now()
	u.UpdatedAt = u.CreatedAt
	st.s.users = append(st.s.users, *u)
	return nil
}

func (st userStore) Update(_ context.Context, u *model.User) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.users {
		if st.s.users[i].ID == u.ID {
			u.UpdatedAt = now()
			st.s.users[i] = *u
			return nil
		}
	}
	return apierror.ErrNotFound
}

func (st userStore) Delete(_ context.Context, id int) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.users[:0]
	for _, u := range st.s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	st.s.users = kept
	return nil
}
