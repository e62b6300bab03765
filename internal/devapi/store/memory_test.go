package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Users(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	u := User{ID: "u1", Email: "Jane@Example.com", Username: "jane"}
	require.NoError(t, m.AddUser(ctx, u))
	require.ErrorIs(t, m.AddUser(ctx, u), ErrAlreadyExists)

	got, err := m.UserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = m.UserByUsername(ctx, "JANE")
	require.NoError(t, err)

	u.Twitter = "https://twitter.com/jane"
	require.NoError(t, m.UpdateUser(ctx, u))
	got, err = m.UserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "https://twitter.com/jane", got.Twitter)

	require.ErrorIs(t, m.UpdateUser(ctx, User{ID: "nope"}), ErrNotFound)
	_, err = m.UserByID(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = m.UserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_LookupPrefersVerified(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.AddUser(ctx, User{ID: "pending", Email: "a@b.c", Username: "x"}))
	require.NoError(t, m.AddUser(ctx, User{ID: "verified", Email: "a@b.c", Username: "y", Verified: true}))

	got, err := m.UserByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "verified", got.ID)
}

func TestMemory_OTPLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.ErrorIs(t, m.SaveOTP(ctx, "u1", OTP{Code: 123456}), ErrNotFound)

	require.NoError(t, m.AddUser(ctx, User{ID: "u1"}))
	require.NoError(t, m.SaveOTP(ctx, "u1", OTP{Code: 123456}))

	otp, err := m.OTP(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 123456, otp.Code)

	require.NoError(t, m.DeleteUser(ctx, "u1"))
	_, err = m.OTP(ctx, "u1")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, m.DeleteUser(ctx, "u1"), ErrNotFound)
}

func TestMemory_PostsOrderedOldestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, m.AddPost(ctx, Post{ID: "c", CreatedAt: base.Add(2 * time.Hour)}))
	require.NoError(t, m.AddPost(ctx, Post{ID: "a", CreatedAt: base}))
	require.NoError(t, m.AddPost(ctx, Post{ID: "b", CreatedAt: base.Add(time.Hour)}))
	require.ErrorIs(t, m.AddPost(ctx, Post{ID: "a"}), ErrAlreadyExists)

	posts, err := m.Posts(ctx)
	require.NoError(t, err)
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	require.NoError(t, m.DeletePost(ctx, "b"))
	require.ErrorIs(t, m.DeletePost(ctx, "b"), ErrNotFound)
	_, err = m.Post(ctx, "b")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.AddPost(ctx, Post{ID: fmt.Sprintf("p%d", i), CreatedAt: time.Now()})
			_, _ = m.Posts(ctx)
		}(i)
	}
	wg.Wait()

	posts, err := m.Posts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 20)
}
