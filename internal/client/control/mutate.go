package control

import (
	"context"
	"fmt"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/feed"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/session"
)

type PostsAPI interface {
	CreatePost(ctx context.Context, token, author, content string) error
	UpdatePost(ctx context.Context, token string, id int64, author, content string) error
	DeletePost(ctx context.Context, token string, id int64) error
}

// RefreshFunc re-fetches the feed after a successful mutation. The client
// never trusts its own optimistic state: ground truth is always re-pulled.
type RefreshFunc func(ctx context.Context) feed.View

// Mutations executes create/update/delete. Each call requires a present
// identity and, on success, returns the freshly refreshed feed view. On
// failure nothing is refreshed, so the screen keeps showing the last state
// that was actually true.
type Mutations struct {
	api     PostsAPI
	session session.Store
	refresh RefreshFunc
}

func NewMutations(api PostsAPI, store session.Store, refresh RefreshFunc) *Mutations {
	return &Mutations{api: api, session: store, refresh: refresh}
}

func (m *Mutations) Create(ctx context.Context, author, content string) (feed.View, error) {
	id, ok := m.session.Get()
	if !ok {
		return feed.View{}, ErrNotLoggedIn
	}
	if err := m.api.CreatePost(ctx, id.Token, author, content); err != nil {
		return feed.View{}, fmt.Errorf("could not create post: %w", err)
	}
	return m.refresh(ctx), nil
}

func (m *Mutations) Update(ctx context.Context, postID int64, author, content string) (feed.View, error) {
	id, ok := m.session.Get()
	if !ok {
		return feed.View{}, ErrNotLoggedIn
	}
	if err := m.api.UpdatePost(ctx, id.Token, postID, author, content); err != nil {
		return feed.View{}, fmt.Errorf("could not update post: %w", err)
	}
	return m.refresh(ctx), nil
}

// Delete removes a post. Confirmation is the caller's job; by the time this
// runs the user has already said yes. The API layer accepts only 204, so any
// other outcome lands here as an error and the feed is left untouched.
func (m *Mutations) Delete(ctx context.Context, postID int64) (feed.View, error) {
	id, ok := m.session.Get()
	if !ok {
		return feed.View{}, ErrNotLoggedIn
	}
	if err := m.api.DeletePost(ctx, id.Token, postID); err != nil {
		return feed.View{}, fmt.Errorf("could not delete post: %w", err)
	}
	return m.refresh(ctx), nil
}
