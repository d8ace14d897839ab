// Package vision talks to an OpenAI-compatible chat API for the two AI
// judgments the system delegates: pass/fail adjudication of evidence images
// and verification-method suggestions for custom habits.
package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const (
	defaultModel         = "gpt-4o-mini"
	judgeMaxTokens       = 300
	suggestMaxTokens     = 600
	suggestTemperature   = 0.7
	verdictInstruction   = "\n\nRespond with ONLY \"YES\" or \"NO\" on the first line, followed by a brief 1-2 sentence explanation."
	suggestSystemPrompt  = `You are a habit tracking expert. Given a habit name and description, suggest the best way to verify completion.

Verification options:
1. PHOTO: User takes a photo as proof (best for visual activities)
2. MANUAL: User manually confirms completion (best for private/mental activities)
3. TIMER: User starts/completes a timer (best for time-based activities)
4. LOCATION: GPS verification (best for location-specific activities)

Respond in valid JSON format:
{
  "verificationType": "photo|manual|timer|location",
  "verificationPrompt": "Detailed prompt for AI image verification (if photo) or clear instructions (if other type)",
  "reasoning": "1-2 sentences explaining why this method is best for this specific habit",
  "alternatives": [{"type": "manual|timer|location", "description": "Brief description of alternative method"}]
}

IMPORTANT:
- For photo verification, write the verificationPrompt as a question starting with "Does this image show..."
- Make prompts specific to the habit
- Keep reasoning concise and helpful`
)

// Verdict is the adjudication result for one evidence image.
type Verdict struct {
	Pass        bool
	Explanation string
}

// Suggestion is the structured verification-method proposal for a habit.
type Suggestion struct {
	VerificationType   string        `json:"verificationType"`
	VerificationPrompt string        `json:"verificationPrompt"`
	Reasoning          string        `json:"reasoning"`
	Alternatives       []Alternative `json:"alternatives"`
}

type Alternative struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

type Client struct {
	cfg  Config
	http httpDoer
}

func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SetHTTPClient overrides the transport, used by tests.
func (c *Client) SetHTTPClient(doer httpDoer) {
	c.http = doer
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature,omitempty"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Judge asks the model whether the image at imageURL satisfies the habit's
// verification prompt. The model answers YES/NO on the first line; everything
// after becomes the explanation.
func (c *Client) Judge(ctx context.Context, imageURL, prompt string) (Verdict, error) {
	req := chatRequest{
		Model:     c.cfg.Model,
		MaxTokens: judgeMaxTokens,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: prompt + verdictInstruction},
					{Type: "image_url", ImageURL: &imageRef{URL: imageURL}},
				},
			},
		},
	}
	content, err := c.call(ctx, req)
	if err != nil {
		return Verdict{}, err
	}
	lines := strings.SplitN(strings.TrimSpace(content), "\n", 2)
	verdict := strings.ToUpper(strings.TrimSpace(lines[0]))
	explanation := "No explanation provided."
	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		explanation = strings.TrimSpace(lines[1])
	}
	return Verdict{
		Pass:        strings.Contains(verdict, "YES"),
		Explanation: explanation,
	}, nil
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\n?(.*?)\\n?```")

// Suggest asks the model for a verification method for a custom habit. The
// response must be JSON; a markdown code fence around it is tolerated.
func (c *Client) Suggest(ctx context.Context, habitName, description string) (Suggestion, error) {
	req := chatRequest{
		Model:       c.cfg.Model,
		MaxTokens:   suggestMaxTokens,
		Temperature: suggestTemperature,
		Messages: []chatMessage{
			{Role: "system", Content: suggestSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(
				"Habit Name: %s\nDescription: %s\n\nSuggest the best verification method for this habit.",
				habitName, description)},
		},
	}
	content, err := c.call(ctx, req)
	if err != nil {
		return Suggestion{}, err
	}
	content = strings.TrimSpace(content)
	if m := fencedJSON.FindStringSubmatch(content); m != nil {
		content = m[1]
	}
	var suggestion Suggestion
	if err := sonic.ConfigDefault.Unmarshal([]byte(content), &suggestion); err != nil {
		return Suggestion{}, errors.New("parsing suggestion response error: " + err.Error())
	}
	if suggestion.VerificationType == "" || suggestion.VerificationPrompt == "" {
		return Suggestion{}, errors.New("suggestion response missing required fields")
	}
	return suggestion, nil
}

func (c *Client) call(ctx context.Context, payload chatRequest) (string, error) {
	body, err := sonic.ConfigDefault.Marshal(payload)
	if err != nil {
		return "", errors.New("marshalling chat request error: " + err.Error())
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.New("building chat request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.New("chat request error: " + err.Error())
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.New("reading chat response error: " + err.Error())
	}
	var parsed chatResponse
	if err := sonic.ConfigDefault.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parsing chat response error (status %d): %s", resp.StatusCode, err.Error())
	}
	if parsed.Error != nil {
		return "", errors.New("chat API error: " + parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat API returned status %d with no choices", resp.StatusCode)
	}
	return parsed.Choices[0].Message.Content, nil
}
