package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/scribe/internal/devapi/store"
	"github.com/dmitrijs2005/scribe/internal/logging"
	"github.com/google/uuid"
)

// MaxPageSize bounds a single listing request.
const MaxPageSize = 50

// PostView is a post joined with its author's public fields.
type PostView struct {
	store.Post
	AuthorUsername string
}

type Posts struct {
	repo   store.Repository
	logger logging.Logger
	now    func() time.Time
}

func NewPosts(repo store.Repository, l logging.Logger) *Posts {
	if l == nil {
		l = logging.Nop{}
	}
	return &Posts{repo: repo, logger: l, now: time.Now}
}

// List returns one page of posts. Pages count back from the newest post;
// within a page posts keep creation order, newest last.
func (s *Posts) List(ctx context.Context, page, pageSize int) ([]PostView, error) {
	fields := map[string]string{}
	if page < 1 {
		fields["page"] = "Page must be at least 1"
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		fields["pageSize"] = fmt.Sprintf("Page size must be between 1 and %d", MaxPageSize)
	}
	if len(fields) > 0 {
		return nil, invalid("Invalid page request", fields)
	}

	all, err := s.repo.Posts(ctx)
	if err != nil {
		return nil, err
	}

	end := len(all) - (page-1)*pageSize
	if end <= 0 {
		return []PostView{}, nil
	}
	start := max(end-pageSize, 0)

	views := make([]PostView, 0, end-start)
	for _, p := range all[start:end] {
		v := PostView{Post: p}
		author, err := s.repo.UserByID(ctx, p.AuthorID)
		switch {
		case err == nil:
			v.AuthorUsername = author.Username
		case !errors.Is(err, store.ErrNotFound):
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// Create adds a post by authorID.
func (s *Posts) Create(ctx context.Context, authorID, title, description string) (store.Post, error) {
	if title == "" {
		return store.Post{}, invalid("Post creation failed", map[string]string{"title": "Title is required"})
	}
	p := store.Post{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		AuthorID:    authorID,
		CreatedAt:   s.now(),
	}
	if err := s.repo.AddPost(ctx, p); err != nil {
		return store.Post{}, err
	}
	return p, nil
}

// Delete removes a post. Only its author may delete it.
func (s *Posts) Delete(ctx context.Context, callerID, postID string) error {
	p, err := s.repo.Post(ctx, postID)
	if err != nil {
		return err
	}
	if p.AuthorID != callerID {
		return ErrForbidden
	}
	if err := s.repo.DeletePost(ctx, postID); err != nil {
		return err
	}
	s.logger.Info(ctx, "post deleted", "post_id", postID, "user_id", callerID)
	return nil
}
