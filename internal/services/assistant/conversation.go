package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"care_chat/internal/chat"
	"care_chat/internal/profile"
)

// Conversation is the in-memory message store for one widget mount:
// an append-only, insertion-ordered message list plus the single typing
// flag. It lives exactly as long as the mount; there is no persistence.
//
// Sends are strictly serialized: Push refuses new input while a reply is
// pending, which is what the typing indicator promises the user anyway.
type Conversation struct {
	service *Service
	profile profile.Profile

	mu       sync.Mutex
	messages []chat.Message
	typing   bool
	pending  string
}

// NewConversation seeds the store with the greeting message.
func NewConversation(service *Service, prof profile.Profile) *Conversation {
	conversation := &Conversation{service: service, profile: prof}
	conversation.messages = append(conversation.messages, service.Greeting(prof, time.Now().UTC()))
	return conversation
}

// Messages returns a snapshot of the ordered message list.
func (c *Conversation) Messages() []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]chat.Message, len(c.messages))
	copy(snapshot, c.messages)
	return snapshot
}

func (c *Conversation) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing
}

func (c *Conversation) Profile() profile.Profile {
	return c.profile
}

// Push appends the user message and raises the typing flag. It returns
// false, changing nothing, when the trimmed text is empty or a reply is
// already pending; a true return must be followed by Resolve.
func (c *Conversation) Push(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.typing {
		return false
	}
	c.messages = append(c.messages, chat.Message{
		ID:        uuid.NewString(),
		Text:      trimmed,
		Sender:    chat.SenderUser,
		CreatedAt: time.Now().UTC(),
	})
	c.typing = true
	c.pending = trimmed
	return true
}

// Resolve performs the external call for the pushed message, appends the
// bot reply (or the fallback), and clears the typing flag. The lock is not
// held across the network call.
func (c *Conversation) Resolve(ctx context.Context) chat.Message {
	c.mu.Lock()
	text := c.pending
	c.mu.Unlock()

	reply := c.service.Reply(ctx, c.profile, text)

	c.mu.Lock()
	c.messages = append(c.messages, reply)
	c.typing = false
	c.pending = ""
	c.mu.Unlock()
	return reply
}

// Send is the headless form of the send flow: Push then Resolve. It
// reports whether the input was accepted.
func (c *Conversation) Send(ctx context.Context, text string) bool {
	if !c.Push(text) {
		return false
	}
	c.Resolve(ctx)
	return true
}
