package control

import (
	"context"
	"errors"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/feed"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/models"
)

// Draft is the in-progress edit. It exists only while the session is open
// and is discarded on submit or cancel.
type Draft struct {
	PostID  int64
	Author  string
	Content string
}

// EditSession is the single-slot edit workflow: closed until Open seeds a
// draft from a post, then open until a successful Submit or a Cancel.
// Opening another post while open silently replaces the draft; nothing was
// persisted, so there is nothing to lose.
type EditSession struct {
	mut   *Mutations
	draft *Draft
}

func NewEditSession(mut *Mutations) *EditSession {
	return &EditSession{mut: mut}
}

func (s *EditSession) Open(p models.Post) {
	s.draft = &Draft{PostID: p.ID, Author: p.AuthorUsername, Content: p.Content}
}

func (s *EditSession) IsOpen() bool {
	return s.draft != nil
}

func (s *EditSession) Draft() (Draft, bool) {
	if s.draft == nil {
		return Draft{}, false
	}
	return *s.draft, true
}

// Update stores the edited field values back into the draft. No-op while
// closed.
func (s *EditSession) Update(author, content string) {
	if s.draft == nil {
		return
	}
	s.draft.Author = author
	s.draft.Content = content
}

func (s *EditSession) Cancel() {
	s.draft = nil
}

// Submit sends the draft as a full-replacement update. Success closes the
// session; failure leaves it open with the draft intact so the user can
// retry without retyping.
func (s *EditSession) Submit(ctx context.Context) (feed.View, error) {
	if s.draft == nil {
		return feed.View{}, errors.New("no edit in progress")
	}
	view, err := s.mut.Update(ctx, s.draft.PostID, s.draft.Author, s.draft.Content)
	if err != nil {
		return feed.View{}, err
	}
	s.draft = nil
	return view, nil
}
