package advisor

import (
	"context"
	"testing"
)

func newDisabled(t *testing.T) *Advisor {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	return New(context.Background())
}

func TestSummarizeDisabled(t *testing.T) {
	a := newDisabled(t)
	if a.Enabled() {
		t.Fatalf("advisor unexpectedly enabled without an API key")
	}
	got := a.Summarize(context.Background(), "Title: First Hike\nThe air was crisp.")
	if got.Status != Disabled {
		t.Errorf("Summarize() status = %v, want Disabled", got.Status)
	}
	if got.Text != SummaryDisabled {
		t.Errorf("Summarize() = %q, want %q", got.Text, SummaryDisabled)
	}
}

func TestCaptionDisabled(t *testing.T) {
	a := newDisabled(t)
	got := a.Caption(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	if got.Status != Disabled || got.Text != CaptionDisabled {
		t.Errorf("Caption() = (%q, %v), want (%q, Disabled)", got.Text, got.Status, CaptionDisabled)
	}
}

func TestParseDataURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMime string
		wantData string
		wantErr  bool
	}{
		{"png", "data:image/png;base64,aGVsbG8=", "image/png", "hello", false},
		{"no payload", "data:image/png;base64", "", "", true},
		{"no mime", "data:;base64,aGVsbG8=", "", "", true},
		{"bad base64", "data:image/png;base64,???", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, mime, err := ParseDataURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDataURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if mime != tt.wantMime || string(data) != tt.wantData {
				t.Errorf("ParseDataURL() = (%q, %q), want (%q, %q)", data, mime, tt.wantData, tt.wantMime)
			}
		})
	}
}
