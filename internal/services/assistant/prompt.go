package assistant

import (
	"fmt"
	"strings"

	"care_chat/internal/profile"
)

const personaPreamble = `You are a careful, warm health assistant embedded in a patient-facing chat widget.
Answer in plain language, keep replies short, and never present yourself as a substitute for a clinician.
If the situation sounds urgent, begin your reply with 🚨 and tell the user to seek immediate care.`

// BuildPrompt wraps the raw user text in the fixed instructional template.
// The text is embedded verbatim; it performs no truncation or escaping.
func BuildPrompt(prof profile.Profile, text string) string {
	var b strings.Builder
	b.WriteString(personaPreamble)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "You are talking to %s in %s mode.\n", prof.DisplayName(), interactionMode(prof))
	fmt.Fprintf(&b, "Frame advice within the %s medicine framework where relevant.\n", frameworkName(prof))
	fmt.Fprintf(&b, "Their areas of interest: %s.\n", prof.DomainSummary())
	fmt.Fprintf(&b, "Reply in language code %q.\n", languageCode(prof))
	b.WriteString("\nUser message:\n")
	b.WriteString(text)
	return b.String()
}

func interactionMode(prof profile.Profile) string {
	if trimmed := strings.TrimSpace(prof.InteractionMode); trimmed != "" {
		return trimmed
	}
	return "patient"
}

func frameworkName(prof profile.Profile) string {
	if trimmed := strings.TrimSpace(prof.Framework); trimmed != "" {
		return trimmed
	}
	return "conventional"
}

func languageCode(prof profile.Profile) string {
	if trimmed := strings.TrimSpace(prof.Language); trimmed != "" {
		return trimmed
	}
	return "en"
}
