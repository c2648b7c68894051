package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"care_chat/internal/ai"
	"care_chat/internal/chat"
	"care_chat/internal/profile"
)

// FallbackText is the fixed bot message substituted when the model call
// fails. Every failure looks identical to the user.
const FallbackText = chat.WarningMarker + " I couldn't reach the assistant just now. Please try again in a moment."

var greetingByLanguage = map[string]string{
	"en": "Hi %s! I'm your health assistant. How can I help you today?",
	"es": "¡Hola %s! Soy tu asistente de salud. ¿En qué puedo ayudarte hoy?",
	"fr": "Bonjour %s ! Je suis votre assistant santé. Comment puis-je vous aider ?",
}

var defaultQuickReplies = []string{
	"What can you help me with?",
	"I have a question about my medication",
	"I need urgent help",
}

// Service turns user text into bot messages: it formats the prompt, awaits
// the generator, and maps the outcome to an explicitly tagged message.
type Service struct {
	generator ai.Generator
}

func NewService(generator ai.Generator) *Service {
	return &Service{generator: generator}
}

// Greeting builds the synthetic message a conversation is seeded with. It
// is the only message carrying quick replies.
func (s *Service) Greeting(prof profile.Profile, now time.Time) chat.Message {
	template, ok := greetingByLanguage[languageCode(prof)]
	if !ok {
		template = greetingByLanguage["en"]
	}
	return chat.Message{
		ID:           uuid.NewString(),
		Text:         fmt.Sprintf(template, prof.DisplayName()),
		Sender:       chat.SenderBot,
		Type:         chat.TypeInfo,
		QuickReplies: append([]string(nil), defaultQuickReplies...),
		CreatedAt:    now,
	}
}

// Reply performs the external call for one user message and always returns
// exactly one bot message. Call failure never escapes: it becomes the
// fallback message tagged warning.
func (s *Service) Reply(ctx context.Context, prof profile.Profile, text string) chat.Message {
	prompt := BuildPrompt(prof, text)

	completion, err := s.generator.Generate(ctx, prompt)
	now := time.Now().UTC()
	if err != nil {
		slog.Warn("model call failed", "error", err)
		return chat.Message{
			ID:        uuid.NewString(),
			Text:      FallbackText,
			Sender:    chat.SenderBot,
			Type:      chat.TypeWarning,
			CreatedAt: now,
		}
	}

	return chat.Message{
		ID:        uuid.NewString(),
		Text:      completion,
		Sender:    chat.SenderBot,
		Type:      chat.ClassifyReply(completion),
		CreatedAt: now,
	}
}
