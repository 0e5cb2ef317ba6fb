package models

// Request and response payloads for the bulletin board API.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token; the token itself is opaque to the
// client.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
}

// PostRequest is the body for both create (POST) and update (PUT). Update is
// full replacement: author and content are always both sent.
type PostRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ErrorResponse is the error body the server attaches to failed requests.
// Only signup surfaces its message to the user.
type ErrorResponse struct {
	Message string `json:"message"`
}
