package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/louisbranch/dicebot/internal/platform/timeouts"
)

const (
	invalidPayloadStatus = http.StatusBadRequest
	invalidPayloadError  = "invalid-payload"
	maxEmojifyBody       = 1 << 20
)

// PayloadError is the emojify service rejecting the input with a message
// meant for the user.
type PayloadError struct {
	Message string
}

// Error implements the error interface.
func (e *PayloadError) Error() string {
	if e == nil {
		return "invalid payload"
	}
	return "invalid payload: " + e.Message
}

// EmojifyClient calls the emojify HTTP service.
type EmojifyClient struct {
	url        string
	httpClient *http.Client
}

// NewEmojifyClient builds a client posting to url. A nil httpClient uses a
// client bounded by timeouts.HTTPRequest.
func NewEmojifyClient(url string, httpClient *http.Client) *EmojifyClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.HTTPRequest}
	}
	return &EmojifyClient{url: strings.TrimSpace(url), httpClient: httpClient}
}

type emojifyRequest struct {
	Input string `json:"input"`
}

type emojifyResponse struct {
	Output *string `json:"output"`
}

type invalidPayloadResponse struct {
	StatusCode int     `json:"statusCode"`
	Error      string  `json:"error"`
	Message    *string `json:"message"`
}

// Emojify returns input decorated with emojis. A *PayloadError carries the
// service's explanation when it rejects the input; every other failure is a
// *ServiceError.
func (c *EmojifyClient) Emojify(ctx context.Context, input string) (string, error) {
	if c == nil || c.url == "" {
		return "", emojifyError(errors.New("emojify url is not configured"))
	}

	body, err := json.Marshal(emojifyRequest{Input: input})
	if err != nil {
		return "", emojifyError(fmt.Errorf("encode request: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", emojifyError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", emojifyError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxEmojifyBody))
	if err != nil {
		return "", emojifyError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var rejected invalidPayloadResponse
		if err := json.Unmarshal(payload, &rejected); err == nil &&
			rejected.StatusCode == invalidPayloadStatus &&
			rejected.Error == invalidPayloadError &&
			rejected.Message != nil {
			return "", &PayloadError{Message: *rejected.Message}
		}
		return "", emojifyError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var decoded emojifyResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", emojifyError(fmt.Errorf("decode response: %w", err))
	}
	if decoded.Output == nil {
		return "", emojifyError(errors.New("response has no output"))
	}
	return *decoded.Output, nil
}

func emojifyError(err error) error {
	return &ServiceError{Service: "emojify", Err: err}
}
