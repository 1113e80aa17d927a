package user

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, users: map[int64]User{}}
}

func (r *MemoryRepository) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	u.ID = r.nextID
	r.nextID++
	if u.RegisteredAt.IsZero() {
		u.RegisteredAt = time.Now()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) FindByID(_ context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}
