package api

import "testing"

func TestHealthResponse(t *testing.T) {
	got := healthResponse()

	if got.Status != "ok" {
		t.Fatalf("got.Status = %q, want %q", got.Status, "ok")
	}
	if got.Version != Version {
		t.Fatalf("got.Version = %q, want %q", got.Version, Version)
	}
}
