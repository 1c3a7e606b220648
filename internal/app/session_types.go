package app

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in a conversation. Content is opaque text;
// attachment turns store "📎 <filename>". Messages are never mutated
// after they are appended.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an archived chat. At most one entry per ID lives in
// the archive at any time.
type Conversation struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
	SavedAt  time.Time `json:"saved_at"`
}
