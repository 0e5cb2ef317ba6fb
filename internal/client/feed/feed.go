// Package feed turns the server's post list into a view model. Building the
// view is a pure function of (posts, identity) so ownership decisions can be
// tested without any terminal.
package feed

import (
	"context"
	"log"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/session"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/models"
)

// CanMutate reports whether identity may edit or delete post: only the
// author, and only while logged in. Recomputed on every render, never cached,
// so a login or logout between renders takes effect immediately.
func CanMutate(post models.Post, id models.Identity) bool {
	return id.Present() && id.Username == post.AuthorUsername
}

// Item is one rendered post.
type Item struct {
	Post      models.Post
	Author    string
	When      string
	Content   string
	CanMutate bool
}

// View is what a refresh produces. When Items is empty, Placeholder holds
// the line to show instead of the list; Failed marks an error placeholder.
type View struct {
	Items       []Item
	Placeholder string
	Failed      bool
}

// BuildView renders posts in server order for the given identity.
func BuildView(posts []models.Post, id models.Identity) View {
	if len(posts) == 0 {
		return View{Placeholder: "No posts yet."}
	}

	items := make([]Item, 0, len(posts))
	for _, p := range posts {
		items = append(items, Item{
			Post:      p,
			Author:    p.AuthorUsername,
			When:      p.CreatedAt.Display(),
			Content:   p.Content,
			CanMutate: CanMutate(p, id),
		})
	}
	return View{Items: items}
}

// Lister is the slice of the API the synchronizer needs.
type Lister interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
}

// Synchronizer fetches the authoritative feed and builds its view. Failures
// stop here: a failed refresh yields an error placeholder and a log line,
// and the next refresh starts clean.
type Synchronizer struct {
	api     Lister
	session session.Store
}

func NewSynchronizer(api Lister, store session.Store) *Synchronizer {
	return &Synchronizer{api: api, session: store}
}

func (s *Synchronizer) Refresh(ctx context.Context) View {
	id, _ := s.session.Get()

	posts, err := s.api.ListPosts(ctx)
	if err != nil {
		log.Printf("feed refresh failed: %v", err)
		return View{Placeholder: "Could not load posts.", Failed: true}
	}
	return BuildView(posts, id)
}
