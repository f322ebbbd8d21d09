// Package advisor provides the AI advisory service: trip summaries and photo
// captions generated by Gemini.
//
// The advisory calls are decorative, so they fail soft. Without an API key
// configured the external call is never attempted; a failed call is absorbed
// into a placeholder. No error ever reaches the caller, and the surrounding
// save/load flow cannot be broken by an advisory failure.
package advisor

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const summaryPrompt = "Summarize the following travel journal entries into a short, engaging paragraph. Focus on the key experiences and feelings described:\n\n---\n%s\n---"
const captionPrompt = "Describe this image for a travel journal. Suggest a short, poetic caption."

// Placeholder texts returned when generation is not possible.
const (
	SummaryDisabled = "API Key not configured. Summary feature disabled."
	SummaryFailed   = "Could not generate summary due to an error."
	CaptionDisabled = "API Key not configured. Caption feature disabled."
	CaptionFailed   = "Could not generate caption due to an error."
)

// Status tells how a Result was produced.
type Status int

const (
	// OK means the text was generated by the model.
	OK Status = iota
	// Disabled means no API key is configured; the call was never attempted.
	Disabled
	// Failed means the call was attempted and failed; a placeholder stands in.
	Failed
)

// Result is the outcome of an advisory call. Text always holds something
// printable: the generated text, or the fixed placeholder for the Status.
// Callers that only need printable text can ignore Status.
type Result struct {
	Text   string
	Status Status
}

func (r Result) String() string { return r.Text }

// Advisor is a stateless pass-through to the Gemini API.
type Advisor struct {
	client *genai.Client
}

// New builds an Advisor. The Gemini API key is taken from the environment
// (GEMINI_API_KEY or GOOGLE_API_KEY); when absent the advisor is disabled
// and every call resolves to a placeholder without touching the network.
func New(ctx context.Context) *Advisor {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		return &Advisor{}
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return &Advisor{}
	}
	return &Advisor{client: client}
}

// Enabled reports whether advisory calls will actually reach the model.
func (a *Advisor) Enabled() bool { return a.client != nil }

// Summarize generates a short engaging paragraph from the concatenated
// journal entries of a trip.
func (a *Advisor) Summarize(ctx context.Context, entries string) Result {
	if a.client == nil {
		return Result{Text: SummaryDisabled, Status: Disabled}
	}
	resp, err := a.client.Models.GenerateContent(ctx, model, genai.Text(fmt.Sprintf(summaryPrompt, entries)), nil)
	if err != nil {
		return Result{Text: SummaryFailed, Status: Failed}
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return Result{Text: SummaryFailed, Status: Failed}
	}
	return Result{Text: text, Status: OK}
}

// Caption describes an image for the journal and suggests a short caption.
func (a *Advisor) Caption(ctx context.Context, image []byte, mimeType string) Result {
	if a.client == nil {
		return Result{Text: CaptionDisabled, Status: Disabled}
	}
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(captionPrompt),
		genai.NewPartFromBytes(image, mimeType),
	}, genai.RoleUser)
	resp, err := a.client.Models.GenerateContent(ctx, model, []*genai.Content{content}, nil)
	if err != nil {
		return Result{Text: CaptionFailed, Status: Failed}
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return Result{Text: CaptionFailed, Status: Failed}
	}
	return Result{Text: text, Status: OK}
}

// ParseDataURL splits a base64 data URL ("data:image/png;base64,...") into
// raw bytes and mime type.
func ParseDataURL(dataURL string) (data []byte, mimeType string, err error) {
	header, payload, found := strings.Cut(dataURL, ",")
	if !found {
		return nil, "", fmt.Errorf("invalid data URL: no payload")
	}
	header = strings.TrimPrefix(header, "data:")
	mimeType, _, _ = strings.Cut(header, ";")
	if mimeType == "" {
		return nil, "", fmt.Errorf("invalid data URL: no mime type")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid data URL payload: %w", err)
	}
	return data, mimeType, nil
}
