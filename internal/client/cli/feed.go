package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/scribe/internal/client/services"
)

// Feed shows a page of posts. Without arguments it reloads the current page;
// "next", "prev" or a page number switch pages.
func (a *App) Feed(ctx context.Context, args []string) error {
	var err error
	switch {
	case len(args) == 0:
		err = a.feed.Load(ctx)
	case args[0] == "next":
		err = a.feed.SetPage(ctx, a.feed.Page()+1)
	case args[0] == "prev":
		err = a.feed.SetPage(ctx, a.feed.Page()-1)
	default:
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			a.println("Usage: feed [next|prev|N]")
			return convErr
		}
		err = a.feed.SetPage(ctx, n)
	}

	if errors.Is(err, services.ErrInvalidPage) {
		a.println("Page must be at least 1.")
		return err
	}
	a.renderFeed()
	return err
}

// Delete removes the post shown as card N, if the signed-in user wrote it.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: delete N")
		return fmt.Errorf("delete: expected one argument")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.cards) {
		a.println("No such card:", args[0])
		return fmt.Errorf("delete: no card %q", args[0])
	}

	card := a.cards[n-1]
	if !card.deletable {
		a.println("You can only delete your own posts.")
		return services.ErrNotAllowed
	}

	if err := a.feed.Delete(ctx, card.postID); err != nil {
		return err
	}
	a.renderFeed()
	return nil
}

func (a *App) renderFeed() {
	a.cards = nil

	if msg := a.feed.Err(); msg != "" {
		a.println(msg)
		return
	}

	posts := a.feed.Posts()
	a.printf("Posts (page %d)\n", a.feed.Page())
	if len(posts) == 0 {
		a.println("  no posts yet")
		return
	}

	for i, p := range posts {
		deletable := services.CanDelete(p, a.sess)
		a.cards = append(a.cards, cardRef{postID: p.ID, deletable: deletable})

		a.printf("[%d] %s\n", i+1, p.Title)
		a.printf("    by %s", p.Author.Username)
		if !p.CreatedAt.IsZero() {
			a.printf(" on %s", p.CreatedAt.Format("2006-01-02"))
		}
		if deletable {
			a.printf("  (delete %d)", i+1)
		}
		a.println()
		if p.Description != "" {
			a.printf("    %s\n", p.Description)
		}
	}
}
