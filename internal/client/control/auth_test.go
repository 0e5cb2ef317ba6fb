package control

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/api"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/session"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/models"
)

type fakeAuthAPI struct {
	loginID   models.Identity
	loginErr  error
	signupErr error
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (models.Identity, error) {
	return f.loginID, f.loginErr
}

func (f *fakeAuthAPI) Signup(ctx context.Context, username, password string) error {
	return f.signupErr
}

func TestAuth_LoginStoresIdentity(t *testing.T) {
	store := session.NewMemStore()
	auth := NewAuth(&fakeAuthAPI{loginID: models.Identity{Token: "tok1", Username: "alice"}}, store)

	require.NoError(t, auth.Login(context.Background(), "alice", "pw"))

	id, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, models.Identity{Token: "tok1", Username: "alice"}, id)
}

func TestAuth_LoginFailureIsGeneric(t *testing.T) {
	store := session.NewMemStore()
	serverErr := &api.StatusError{Op: "POST /auth/login", Code: 401, Status: "401 Unauthorized", Message: "no such user: alice"}
	auth := NewAuth(&fakeAuthAPI{loginErr: serverErr}, store)

	err := auth.Login(context.Background(), "alice", "pw")
	require.Error(t, err)

	// The server's detail must not leak; it would reveal which usernames
	// exist.
	assert.NotContains(t, err.Error(), "no such user")
	assert.Contains(t, err.Error(), "check your username and password")

	_, ok := store.Get()
	assert.False(t, ok, "failed login must not touch the session")
}

func TestAuth_SignupSurfacesServerMessage(t *testing.T) {
	serverErr := &api.StatusError{Op: "POST /auth/signup", Code: 409, Status: "409 Conflict", Message: "username already taken"}
	auth := NewAuth(&fakeAuthAPI{signupErr: serverErr}, session.NewMemStore())

	err := auth.Signup(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.Equal(t, "username already taken", err.Error())
}

func TestAuth_SignupGenericWhenNoMessage(t *testing.T) {
	auth := NewAuth(&fakeAuthAPI{signupErr: errors.New("dial tcp: connection refused")}, session.NewMemStore())

	err := auth.Signup(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.Equal(t, "signup failed", err.Error())
}

func TestAuth_SignupDoesNotLogIn(t *testing.T) {
	store := session.NewMemStore()
	auth := NewAuth(&fakeAuthAPI{}, store)

	require.NoError(t, auth.Signup(context.Background(), "alice", "pw"))
	_, ok := store.Get()
	assert.False(t, ok)
}

func TestAuth_LogoutClearsAnyState(t *testing.T) {
	store := session.NewMemStore()
	auth := NewAuth(&fakeAuthAPI{}, store)

	require.NoError(t, store.Set(models.Identity{Token: "tok1", Username: "alice"}))
	require.NoError(t, auth.Logout())

	_, ok := store.Get()
	assert.False(t, ok)

	// Logging out while logged out is a no-op.
	require.NoError(t, auth.Logout())
}
