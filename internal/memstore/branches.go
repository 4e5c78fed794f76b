package memstore

import (
	"context"

	"storehub/internal/apierror"
	"storehub/internal/model"
	"storehub/internal/repository"
)

type branchStore struct{ s *Store }

func (s *Store) Branches() repository.BranchRepository { return branchStore{s} }

func (st branchStore) List(_ context.Context) ([]model.Branch, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	out := make([]model.Branch, len(st.s.branches))
	copy(out, st.s.branches)
	return out, nil
}

func (st branchStore) FindByID(_ context.Context, id int) (*model.Branch, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.branches {
		if st.s.branches[i].ID == id {
			b := st.s.branches[i]
			return &b, nil
		}
	}
	return nil, apierror.ErrNotFound
}

func (st branchStore) Create(_ context.Context, b *model.Branch) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	// max(existing)+1; 1 when empty
	id := 0
	for i := range st.s.branches {
		if st.s.branches[i].ID > id {
			id = st.s.branches[i].ID
		}
	}
	b.ID = id + 1
	b.CreatedAt = now()
	st.s.branches = append(st.s.branches, *b)
	return nil
}

func (st branchStore) Update(_ context.Context, b *model.Branch) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	for i := range st.s.branches {
		if st.s.branches[i].ID == b.ID {
			st.s.branches[i] = *b
			return nil
		}
	}
	return apierror.ErrNotFound
}

func (st branchStore) Delete(_ context.Context, id int) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	kept := st.s.branches[:0]
	for _, b := range st.s.branches {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	st.s.branches = kept
	return nil
}
