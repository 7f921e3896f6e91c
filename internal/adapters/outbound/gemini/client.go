// Package gemini provides a thin client for the Gemini generateContent API
// and its adapter to the domain LLM interface.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
)

// GeminiAPIClient is a thin client for the generateContent endpoint.
type GeminiAPIClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewGeminiAPIClient creates a new client.
func NewGeminiAPIClient(baseURL, apiKey, model string, httpClient *http.Client) GeminiAPIClient {
	return GeminiAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    httpClient,
	}
}

// GenerateContent sends one non-streaming generation request. Non-2xx
// responses come back as *domain.LLMAPIErr carrying the Retry-After hint.
func (c GeminiAPIClient) GenerateContent(ctx context.Context, req generateContentRequest) (*generateContentResponse, error) {
	if len(req.Contents) == 0 {
		return nil, errors.New("contents are required")
	}

	endpoint, err := url.JoinPath(c.baseURL, "/v1beta/models/"+c.model+":generateContent")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIErr(resp, respBody)
	}

	var out generateContentResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &out, nil
}

// newAPIErr maps a non-2xx response to a domain error. The JSON error body
// is best-effort: a plain-text body still yields a usable error.
func newAPIErr(resp *http.Response, body []byte) *domain.LLMAPIErr {
	apiErr := &domain.LLMAPIErr{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Message:    string(body),
	}

	var parsed apiErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		apiErr.Status = parsed.Error.Status
		apiErr.Message = parsed.Error.Message
	}

	if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds > 0 {
		apiErr.RetryAfterSeconds = seconds
	}

	return apiErr
}
