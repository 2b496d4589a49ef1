package translate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type TranslateService struct {
	Client *genai.Client
}

// Translate produces a draft translation of text between Arabic and English.
// The result is an editor starting point, not published content.
func (ts *TranslateService) Translate(ctx context.Context, text, from, to string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("text is required")
	}
	if ts.Client == nil {
		return "", fmt.Errorf("translation client is not configured")
	}

	from = languageName(from)
	to = languageName(to)

	prompt := fmt.Sprintf(
		"Translate the following %s text to %s. Keep the tone suitable for a public events website. Reply with the translation only, no explanations:\n\n%s",
		from, to, text)

	genResp, err := ts.Client.Models.GenerateContent(ctx, "gemini-2.5-flash", []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("generation error: %w", err)
	}

	var response string
	for _, candidate := range genResp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				response = part.Text
				break
			}
		}
		if response != "" {
			break
		}
	}

	if response == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return strings.TrimSpace(response), nil
}

func languageName(code string) string {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en", "english":
		return "English"
	default:
		return "Arabic"
	}
}
