// Package control holds the user-action controllers: auth flows, post
// mutations, and the single-slot edit workflow. Controllers call the API and
// return plain errors; presentation decides how to show them.
package control

import (
	"context"
	"errors"
	"log"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/api"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/session"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/models"
)

// ErrNotLoggedIn is returned when a mutating action is attempted without a
// present identity. No request is issued in that case.
var ErrNotLoggedIn = errors.New("you must be logged in to do that")

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (models.Identity, error)
	Signup(ctx context.Context, username, password string) error
}

type Auth struct {
	api     AuthAPI
	session session.Store
}

func NewAuth(api AuthAPI, store session.Store) *Auth {
	return &Auth{api: api, session: store}
}

// Login authenticates and stores the returned identity. Every failure is
// collapsed into the same generic message so the response gives no hint
// whether the username exists.
func (a *Auth) Login(ctx context.Context, username, password string) error {
	id, err := a.api.Login(ctx, username, password)
	if err != nil {
		log.Printf("login failed: %v", err)
		return errors.New("login failed: check your username and password")
	}
	if err := a.session.Set(id); err != nil {
		return err
	}
	return nil
}

// Signup registers a new account. It does not log the user in; the caller
// sends them to the login flow. The server's message is surfaced when it has
// one, since signup errors ("username taken") are meant for the user.
func (a *Auth) Signup(ctx context.Context, username, password string) error {
	err := a.api.Signup(ctx, username, password)
	if err == nil {
		return nil
	}
	log.Printf("signup failed: %v", err)
	var se *api.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return errors.New(se.Message)
	}
	return errors.New("signup failed")
}

// Logout clears the stored identity. Logging out while logged out is a
// no-op.
func (a *Auth) Logout() error {
	return a.session.Clear()
}
