package chat

import "testing"

func TestClassifyReplyPlainText(t *testing.T) {
	got := ClassifyReply("Drink plenty of water and rest.")
	if got != TypeInfo {
		t.Fatalf("ClassifyReply() = %q, want %q", got, TypeInfo)
	}
}

func TestClassifyReplyEmergencyGlyph(t *testing.T) {
	got := ClassifyReply("🚨 This sounds serious.")
	if got != TypeEmergency {
		t.Fatalf("ClassifyReply() = %q, want %q", got, TypeEmergency)
	}
}

func TestClassifyReplyEmergencyPhrase(t *testing.T) {
	got := ClassifyReply("Please CALL 911 right away.")
	if got != TypeEmergency {
		t.Fatalf("ClassifyReply() = %q, want %q", got, TypeEmergency)
	}
}

func TestClassifyReplyWarningGlyphIsNotEmergency(t *testing.T) {
	// The warning glyph belongs to the failure fallback; classification of
	// successful replies must not promote it.
	got := ClassifyReply("⚠️ Dosage above 4g per day is not recommended.")
	if got != TypeInfo {
		t.Fatalf("ClassifyReply() = %q, want %q", got, TypeInfo)
	}
}
