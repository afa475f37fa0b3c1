package gemini

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public Gemini REST endpoint prefix.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultTimeout bounds one round trip. Image generation is slow, so
// this is deliberately generous.
const DefaultTimeout = 60 * time.Second

// Client performs single-shot generateContent calls. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logrus.Logger
}

// NewClient creates a Gemini API client. The API key is required; a
// missing key is reported here, before any network activity, so callers
// never get as far as a doomed request.
func NewClient(apiKey, baseURL string, timeout time.Duration, log *logrus.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is not set; export it with your Gemini API key")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        log,
	}, nil
}

// GenerateContent performs exactly one POST to
// {base}/models/{model}:generateContent with the API key as a query
// parameter. It makes no retries: a non-2xx status comes back as an
// *APIError and transport failures are returned as-is for the error
// classifier to interpret.
func (c *Client) GenerateContent(model string, request Request) (*Response, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.WithFields(logrus.Fields{
		"model":      model,
		"body_bytes": len(body),
	}).Debug("calling generateContent")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"model":  model,
		"status": resp.StatusCode,
	}).Debug("generateContent response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	var out Response
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &out, nil
}
