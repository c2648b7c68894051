package chat

import (
	"strings"
	"time"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// MessageType selects the visual treatment of a bot bubble. The zero value
// renders the same as TypeInfo.
type MessageType string

const (
	TypeEmergency MessageType = "emergency"
	TypeWarning   MessageType = "warning"
	TypeInfo      MessageType = "info"
)

// WarningMarker prefixes the fixed fallback text shown when the model call
// fails. It is display decoration only; the warning classification is
// carried on Message.Type, not inferred from the text.
const WarningMarker = "⚠️"

// EmergencyMarker is emitted by the model when it judges the situation
// urgent; replies carrying it (or one of the urgent-care phrases below)
// render as emergency bubbles.
const EmergencyMarker = "🚨"

var emergencyPhrases = []string{
	"call emergency services",
	"call 911",
	"go to the nearest emergency room",
	"seek immediate medical attention",
}

type Message struct {
	ID           string
	Text         string
	Sender       Sender
	Type         MessageType
	QuickReplies []string
	CreatedAt    time.Time
}

// ClassifyReply maps a successful model reply to a bubble type. Failed
// calls never reach this function; the reply service tags those warning
// directly.
func ClassifyReply(text string) MessageType {
	if strings.Contains(text, EmergencyMarker) {
		return TypeEmergency
	}
	lowered := strings.ToLower(text)
	for _, phrase := range emergencyPhrases {
		if strings.Contains(lowered, phrase) {
			return TypeEmergency
		}
	}
	return TypeInfo
}
