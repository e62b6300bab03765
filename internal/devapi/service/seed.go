package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/scribe/internal/devapi/store"
	"github.com/google/uuid"
)

// SeedAuthor is the username that owns seeded posts. The account has no
// password, so nobody can sign in as it.
const SeedAuthor = "scribe"

// Seed creates n demo posts, one minute apart, ending at the current time.
func Seed(ctx context.Context, repo store.Repository, n int) error {
	if n <= 0 {
		return nil
	}

	now := time.Now()
	author := store.User{
		ID:        uuid.NewString(),
		Email:     "scribe@example.com",
		Username:  SeedAuthor,
		Verified:  true,
		CreatedAt: now,
	}
	if err := repo.AddUser(ctx, author); err != nil {
		return fmt.Errorf("seed author: %w", err)
	}

	for i := 1; i <= n; i++ {
		p := store.Post{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("Welcome post #%d", i),
			Description: "A seeded post from the development backend.",
			AuthorID:    author.ID,
			CreatedAt:   now.Add(time.Duration(i-n) * time.Minute),
		}
		if err := repo.AddPost(ctx, p); err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
	}
	return nil
}
