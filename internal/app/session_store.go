package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryLimit caps the number of archived conversations.
const DefaultHistoryLimit = 20

// Assistant greetings that seed a conversation before any user turn.
const (
	welcomeGreeting = "Hello! I'm your CV Assistant. I can help you:\n\n• Analyze and structure CVs\n• Extract key information\n• Compare candidates\n• Answer questions about resumes\n\nHow can I help you today?"
	newChatGreeting = "Hello! I'm your CV Assistant. How can I help you today?"
	clearedGreeting = "Chat cleared. How can I help you?"
)

var ErrUnknownConversation = errors.New("unknown conversation id")

// SessionStore owns the active conversation and the in-memory archive
// of past conversations. History lives only for the lifetime of the
// process.
//
// The store is not safe for concurrent use: all mutation happens from
// the single event-handling context, and callers must not invoke
// lifecycle operations while the request pipeline is busy.
type SessionStore struct {
	activeID string
	messages []Message
	archive  []Conversation
	limit    int
	now      func() time.Time
}

func NewSessionStore(limit int) *SessionStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &SessionStore{
		activeID: uuid.NewString(),
		messages: []Message{{Role: RoleAssistant, Content: welcomeGreeting}},
		limit:    limit,
		now:      time.Now,
	}
}

func (s *SessionStore) ActiveID() string { return s.activeID }

// Messages returns the active conversation in append order. The slice
// is shared; callers must treat it as read-only.
func (s *SessionStore) Messages() []Message { return s.messages }

// Archive returns archived conversations, most recently saved first.
func (s *SessionStore) Archive() []Conversation { return s.archive }

// Append adds one message to the active conversation. Only the request
// pipeline creates user and assistant turns.
func (s *SessionStore) Append(msg Message) {
	s.messages = append(s.messages, msg)
}

// SaveCurrent upserts the active conversation into the archive at the
// most-recent position, then truncates past the retention cap.
// Conversations holding only the seed greeting are not archived, and
// re-saving unchanged messages leaves the archive untouched.
func (s *SessionStore) SaveCurrent() {
	if len(s.messages) <= 1 {
		return
	}
	if len(s.archive) > 0 && s.archive[0].ID == s.activeID && equalMessages(s.archive[0].Messages, s.messages) {
		return
	}

	kept := make([]Conversation, 0, len(s.archive)+1)
	kept = append(kept, Conversation{
		ID:       s.activeID,
		Messages: append([]Message(nil), s.messages...),
		SavedAt:  s.now(),
	})
	for _, conv := range s.archive {
		if conv.ID == s.activeID {
			continue
		}
		kept = append(kept, conv)
	}
	if len(kept) > s.limit {
		kept = kept[:s.limit]
	}
	s.archive = kept
}

// StartNewChat archives the current conversation (if it has any user
// contribution) and resets to a fresh id with a single greeting.
func (s *SessionStore) StartNewChat() {
	s.SaveCurrent()
	s.activeID = uuid.NewString()
	s.messages = []Message{{Role: RoleAssistant, Content: newChatGreeting}}
}

// Load switches the active conversation to an archived one. The
// current conversation is saved first so switching away never loses
// work; the archived entry itself stays in the archive. Unknown ids
// leave the store unchanged.
func (s *SessionStore) Load(id string) error {
	idx := -1
	for i := range s.archive {
		if s.archive[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownConversation
	}
	target := s.archive[idx]
	s.SaveCurrent()
	s.activeID = target.ID
	s.messages = append([]Message(nil), target.Messages...)
	return nil
}

// ClearChat replaces the active messages with a single assistant
// acknowledgement. The active id and the archive are untouched; a
// cleared chat is not retroactively saved.
func (s *SessionStore) ClearChat() {
	s.messages = []Message{{Role: RoleAssistant, Content: clearedGreeting}}
}

// Transcript serializes the active conversation as "<ROLE>: <content>"
// blocks separated by blank lines.
func (s *SessionStore) Transcript() string {
	parts := make([]string, 0, len(s.messages))
	for _, m := range s.messages {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToUpper(string(m.Role)), m.Content))
	}
	return strings.Join(parts, "\n\n")
}

// Title is the sidebar label for a conversation: its first user turn
// truncated to 30 runes, or a placeholder for seed-only chats.
func Title(conv Conversation) string {
	for _, m := range conv.Messages {
		if m.Role != RoleUser {
			continue
		}
		r := []rune(m.Content)
		if len(r) > 30 {
			return string(r[:30])
		}
		return m.Content
	}
	return "New conversation"
}

func equalMessages(a, b []Message) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
