package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/models"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 5*time.Second), srv
}

func TestClient_ListPosts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		// Offsetless timestamps, the way the backend serializes them.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":2,"authorUsername":"bob","content":"second","createdAt":"2024-05-02T09:00:00"},
			{"id":1,"authorUsername":"alice","content":"first","createdAt":"2024-05-01T08:00:00"}
		]`))
	})
	c, srv := newTestClient(mux)
	defer srv.Close()

	posts, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// Server order is preserved, never re-sorted.
	assert.Equal(t, int64(2), posts[0].ID)
	assert.Equal(t, "bob", posts[0].AuthorUsername)
	assert.Equal(t, int64(1), posts[1].ID)
}

func TestClient_ListPosts_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/posts", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	c, srv := newTestClient(mux)
	defer srv.Close()

	_, err := c.ListPosts(context.Background())
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
}

func TestClient_Login(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "pw", req.Password)

		json.NewEncoder(w).Encode(models.LoginResponse{AccessToken: "tok1", Username: "alice"})
	})
	c, srv := newTestClient(mux)
	defer srv.Close()

	id, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.Identity{Token: "tok1", Username: "alice"}, id)
}

func TestClient_Signup_SurfacesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(models.ErrorResponse{Message: "username already taken"})
	})
	c, srv := newTestClient(mux)
	defer srv.Close()

	err := c.Signup(context.Background(), "alice", "pw")
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "username already taken", se.Message)
}

func TestClient_CreatePost_SendsBearerToken(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/posts", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	})
	c, srv := newTestClient(mux)
	defer srv.Close()

	err := c.CreatePost(context.Background(), "tok1", "alice", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok1", gotAuth)
}

func TestClient_UpdatePost_FullReplacement(t *testing.T) {
	var got models.PostRequest
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/posts/7", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})
	c, srv := newTestClient(mux)
	defer srv.Close()

	err := c.UpdatePost(context.Background(), "tok1", 7, "alice", "edited")
	require.NoError(t, err)

	// Author travels with every update even if unchanged.
	assert.Equal(t, models.PostRequest{Author: "alice", Content: "edited"}, got)
}

func TestClient_DeletePost_Accepts204Only(t *testing.T) {
	tests := []struct {
		name   string
		status int
		wantOK bool
	}{
		{"no content", http.StatusNoContent, true},
		{"ok is still wrong", http.StatusOK, false},
		{"forbidden", http.StatusForbidden, false},
		{"server error", http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("DELETE /api/posts/42", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			c, srv := newTestClient(mux)
			defer srv.Close()

			err := c.DeletePost(context.Background(), "tok1", 42)
			if tt.wantOK {
				require.NoError(t, err)
				return
			}
			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.Code)
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(srv.URL, time.Second)
	srv.Close() // connection refused from here on

	_, err := c.ListPosts(context.Background())
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se), "transport failures are not status errors")
}
