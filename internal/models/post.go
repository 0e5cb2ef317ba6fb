package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Post is a single board entry as served by GET /api/posts. The client only
// ever holds read-only snapshots of these; the server owns them.
type Post struct {
	ID             int64     `json:"id"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	CreatedAt      Timestamp `json:"createdAt"`
}

// Identity is the authenticated user held by the session store. Both fields
// must be present for the client to count as logged in.
type Identity struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Present reports whether the identity is usable. A token without a username
// (or the reverse) is treated the same as being logged out.
func (id Identity) Present() bool {
	return id.Token != "" && id.Username != ""
}

// Timestamp wraps time.Time to accept the server's timestamp encoding. The
// backend serializes LocalDateTime without a zone offset, so both RFC3339 and
// the offsetless form are accepted; offsetless values are taken as local time.
type Timestamp struct {
	time.Time
}

const offsetless = "2006-01-02T15:04:05"

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = ts
		return nil
	}
	ts, err := time.ParseInLocation(offsetless, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", s)
	}
	t.Time = ts
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}

// Display renders the timestamp for the feed, in the reader's local time.
func (t Timestamp) Display() string {
	return t.Local().Format("2006/01/02 15:04:05")
}
