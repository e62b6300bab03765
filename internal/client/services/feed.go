package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scribe/internal/client/api"
	"github.com/dmitrijs2005/scribe/internal/client/session"
	"github.com/dmitrijs2005/scribe/internal/logging"
)

var ErrInvalidPage = errors.New("page must be at least 1")

// Feed is the post listing page. It holds either the posts of the current
// page (newest first) or an error message, never both.
type Feed struct {
	client   api.Client
	notify   Notifier
	logger   logging.Logger
	pageSize int
	page     int
	posts    []api.Post
	loading  bool
	errMsg   string

	onLoading func(loading bool)
}

func NewFeed(c api.Client, pageSize int, n Notifier, l logging.Logger) *Feed {
	if n == nil {
		n = nopNotifier{}
	}
	if l == nil {
		l = logging.Nop{}
	}
	return &Feed{client: c, pageSize: pageSize, page: 1, notify: n, logger: l}
}

// OnLoading registers fn to be called when a fetch starts (true) and ends
// (false), so a view can show a loading indicator.
func (f *Feed) OnLoading(fn func(loading bool)) {
	f.onLoading = fn
}

func (f *Feed) setLoading(v bool) {
	f.loading = v
	if f.onLoading != nil {
		f.onLoading(v)
	}
}

func (f *Feed) Page() int     { return f.page }
func (f *Feed) Loading() bool { return f.loading }
func (f *Feed) Err() string   { return f.errMsg }

// Posts returns a copy of the posts on display.
func (f *Feed) Posts() []api.Post {
	return append([]api.Post(nil), f.posts...)
}

// Load fetches the current page. Posts are kept in reverse of the order the
// server sent them.
func (f *Feed) Load(ctx context.Context) error {
	f.setLoading(true)
	defer f.setLoading(false)

	f.posts, f.errMsg = nil, ""

	page, err := f.client.ListPosts(ctx, f.page, f.pageSize)
	if err != nil {
		f.logger.Warn(ctx, "feed load failed", "page", f.page, "error", err)
		f.errMsg = Notice(err)
		return fmt.Errorf("list posts: %w", err)
	}

	posts := make([]api.Post, len(page.Posts))
	for i, p := range page.Posts {
		posts[len(posts)-1-i] = p
	}
	f.posts = posts
	return nil
}

// SetPage switches to page and re-fetches.
func (f *Feed) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	f.page = page
	return f.Load(ctx)
}

// Delete is the per-card delete action. On success the post disappears from
// the current page without a re-fetch.
func (f *Feed) Delete(ctx context.Context, id string) error {
	msg, err := f.client.DeletePost(ctx, id)
	if err != nil {
		f.logger.Warn(ctx, "post delete failed", "post_id", id, "error", err)
		f.notify.Error(Notice(err))
		return fmt.Errorf("delete post: %w", err)
	}

	kept := f.posts[:0]
	for _, p := range f.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.posts = kept

	if msg == "" {
		msg = "Post deleted"
	}
	f.notify.Success(msg)
	return nil
}

// CanDelete reports whether the signed-in user authored p.
func CanDelete(p api.Post, sess *session.Session) bool {
	if sess == nil {
		return false
	}
	id, ok := sess.Identity()
	return ok && id.UserID != "" && id.UserID == p.Author.ID
}
