package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Memory is a Repository backed by maps. Email and username lookups are
// case-insensitive.
type Memory struct {
	mu    sync.RWMutex
	users map[string]User
	otps  map[string]OTP
	posts map[string]Post
}

var _ Repository = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users: make(map[string]User),
		otps:  make(map[string]OTP),
		posts: make(map[string]Post),
	}
}

func (m *Memory) AddUser(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[u.ID]; ok {
		return ErrAlreadyExists
	}
	m.users[u.ID] = u
	return nil
}

func (m *Memory) UpdateUser(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

// DeleteUser removes the user and any pending code.
func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	delete(m.otps, id)
	return nil
}

func (m *Memory) UserByID(_ context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (User, error) {
	return m.findUser(func(u User) bool { return strings.EqualFold(u.Email, email) })
}

func (m *Memory) UserByUsername(_ context.Context, username string) (User, error) {
	return m.findUser(func(u User) bool { return strings.EqualFold(u.Username, username) })
}

// findUser prefers a verified match over a pending one.
func (m *Memory) findUser(match func(User) bool) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found *User
	for _, u := range m.users {
		if !match(u) {
			continue
		}
		if u.Verified {
			return u, nil
		}
		if found == nil {
			u := u
			found = &u
		}
	}
	if found == nil {
		return User{}, ErrNotFound
	}
	return *found, nil
}

func (m *Memory) SaveOTP(_ context.Context, userID string, otp OTP) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return ErrNotFound
	}
	m.otps[userID] = otp
	return nil
}

func (m *Memory) OTP(_ context.Context, userID string) (OTP, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	otp, ok := m.otps[userID]
	if !ok {
		return OTP{}, ErrNotFound
	}
	return otp, nil
}

func (m *Memory) DeleteOTP(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.otps, userID)
	return nil
}

func (m *Memory) AddPost(_ context.Context, p Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[p.ID]; ok {
		return ErrAlreadyExists
	}
	m.posts[p.ID] = p
	return nil
}

func (m *Memory) Post(_ context.Context, id string) (Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	return p, nil
}

func (m *Memory) Posts(_ context.Context) ([]Post, error) {
	m.mu.RLock()
	posts := make([]Post, 0, len(m.posts))
	for _, p := range m.posts {
		posts = append(posts, p)
	}
	m.mu.RUnlock()

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].CreatedAt.Before(posts[j].CreatedAt)
	})
	return posts, nil
}

func (m *Memory) DeletePost(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return ErrNotFound
	}
	delete(m.posts, id)
	return nil
}
