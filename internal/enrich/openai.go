package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const openAIURL = "https://api.openai.com/v1/chat/completions"

const systemPrompt = "You generate trade show stand content as structured JSON only."

// UpstreamError reports a non-200 response from the completion API.
// The serve endpoint maps it to 502 with the upstream body as detail.
type UpstreamError struct {
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("OpenAI request failed: %s", e.Detail)
}

// OpenAI calls the chat completions API, requesting exactly the keys
// description, pros, and cons as a JSON object.
type OpenAI struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	apiURL      string
	client      *http.Client
}

// NewOpenAI creates an upstream client with the given credentials and
// sampling settings.
func NewOpenAI(apiKey, model string, maxTokens int, temperature float64) *OpenAI {
	return &OpenAI{
		apiKey:      apiKey,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		apiURL:      openAIURL,
		client:      &http.Client{},
	}
}

// buildPrompt renders the user prompt, substituting placeholders for
// missing fields.
func buildPrompt(in Input) string {
	company := in.CompanyName
	if company == "" {
		company = "Unknown brand"
	}
	product := in.ProductRef
	if product == "" {
		product = "N/A"
	}
	description := in.CurrentDescription
	if description == "" {
		description = "Not provided"
	}

	return fmt.Sprintf(`You are an exhibition stand strategist.
Company: %s
Product reference: %s
Current description: %s

Return concise JSON with keys description (1-2 sentences), pros (3 short bullet points), and cons (3 short bullet points).`,
		company, product, description)
}

// Generate makes a single request to the chat completions API and
// parses the structured JSON content of the first choice.
func (o *OpenAI) Generate(ctx context.Context, in Input) (*Suggestion, error) {
	reqBody := chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(in)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
		Temperature:    o.temperature,
		MaxTokens:      o.maxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, o.apiURL, bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Detail: string(respBody)}
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(result.Choices[0].Message.Content), &suggestion); err != nil {
		return nil, fmt.Errorf("parsing completion content: %w", err)
	}

	return &suggestion, nil
}

// --- chat completions API types ---

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
