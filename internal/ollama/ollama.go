package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/redline-cli/redline/internal/logging"
)

// debugEnv enables raw request/response dumping when set to TRUE.
const debugEnv = "DEBUG"

// Client talks to an Ollama server's /api/generate route.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
}

// New creates a Client for the given base URL and model. No API key is
// required; the endpoint is assumed to be a trusted local server.
func New(baseURL, model string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{},
	}
}

// generateRequest is the /api/generate request body.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// fragment is one line of the response body. Missing fields decode to
// their zero values.
type fragment struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generate sends prompt to the endpoint and returns the assembled
// review text.
//
// The request declares stream=false, but the endpoint emits one JSON
// object per line regardless, so the body is always folded line by
// line: each decodable fragment contributes its response text, and
// folding stops at the first fragment marked done. Lines that fail to
// decode (keep-alive or diagnostic output) are skipped.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if os.Getenv(debugEnv) == "TRUE" {
		fmt.Fprintf(os.Stderr, "Response status: %s\n", resp.Status)
		fmt.Fprintf(os.Stderr, "Raw response: %s\n", body)
	}
	logger := logging.Component("ollama")
	logger.Debug().
		Int("status", resp.StatusCode).
		Int("body_bytes", len(body)).
		Msg("response received")

	return assemble(body), nil
}

// assemble folds the newline-delimited body left to right.
func assemble(body []byte) string {
	var b strings.Builder
	for _, line := range strings.Split(string(body), "\n") {
		var f fragment
		if err := json.Unmarshal([]byte(line), &f); err != nil {
			continue
		}
		b.WriteString(f.Response)
		if f.Done {
			break
		}
	}
	return b.String()
}
