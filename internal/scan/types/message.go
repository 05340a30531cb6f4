package types

import "time"

// Message is a single chat message supplied by the external message store.
// Messages are immutable inputs; the engine never mutates them.
type Message struct {
	ID        string    `json:"id"`
	User      string    `json:"user"` // Author identifier
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Channel   string    `json:"channel"`
	Reactions int       `json:"reactions,omitempty"` // Reaction count, zero when the store has none
}

// User is a community member record supplied by the external data store.
type User struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	JoinedAt *time.Time `json:"joinedAt,omitempty"`
}

// Channel is a single channel inside a server structure.
type Channel struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Topic string `json:"topic,omitempty"`
}

// Server is the channel listing supplied for channel-level analysis.
type Server struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Channels []Channel `json:"channels"`
}
