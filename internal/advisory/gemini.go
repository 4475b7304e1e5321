package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andriannf/storedesk/internal/models"
	"github.com/rs/zerolog/log"
)

// FallbackResponse is returned to the user whenever the generative API
// cannot be reached or answers with garbage. Chat must keep working and
// keep persisting exchanges even while the provider is down.
const FallbackResponse = "I'm sorry, I'm having trouble processing your request right now. Please try again later."

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	generatePath   = "/v1beta/models/gemini-pro:generateContent"
	requestTimeout = 15 * time.Second
)

// Advisor produces free-text advice for an admin question, optionally
// grounded on a product record.
type Advisor interface {
	Advise(ctx context.Context, message string, product *models.Product) string
}

type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func buildPrompt(message string, product *models.Product) string {
	prompt := fmt.Sprintf(`You are an AI assistant for an ecommerce admin panel. Help with product-related questions, business insights, and general ecommerce advice.

User question: %s`, message)

	if product != nil {
		if encoded, err := json.Marshal(product); err == nil {
			prompt += fmt.Sprintf("\n\nProduct context: %s", encoded)
		}
	}
	return prompt
}

func (g *GeminiClient) Advise(ctx context.Context, message string, product *models.Product) string {
	text, err := g.generate(ctx, buildPrompt(message, product))
	if err != nil {
		log.Warn().Err(err).Msg("advisory call failed, substituting fallback response")
		return FallbackResponse
	}
	return text
}

func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s%s?key=%s", g.baseURL, generatePath, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling generative api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative api returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generative api returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
