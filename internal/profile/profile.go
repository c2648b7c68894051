package profile

import "strings"

// Profile describes the person the assistant is talking to. It arrives as
// an inbound prop and is never mutated or validated here; callers read it
// for greeting text, header display, and prompt guidance.
type Profile struct {
	Name            string
	InteractionMode string
	Framework       string
	Domains         []string
	Language        string
}

// DisplayName falls back to a neutral salutation when the host never set a
// name.
func (p Profile) DisplayName() string {
	if trimmed := strings.TrimSpace(p.Name); trimmed != "" {
		return trimmed
	}
	return "there"
}

// DomainSummary joins the subject domains for display and prompt use.
func (p Profile) DomainSummary() string {
	if len(p.Domains) == 0 {
		return "general health"
	}
	return strings.Join(p.Domains, ", ")
}
