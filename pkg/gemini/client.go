package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is the Gemini Generative Language API client.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new Gemini API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the API endpoint (used by tests).
func (c *Client) SetAPIURL(apiURL string) {
	c.apiURL = strings.TrimRight(apiURL, "/")
}

// SetModel overrides the default model.
func (c *Client) SetModel(model string) {
	c.model = model
}

// Model returns the model used when a call does not name one.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a non-streaming content generation request.
// An empty model falls back to the client default.
func (c *Client) GenerateContent(ctx context.Context, model string, req GenerateRequest) (*GenerateResponse, error) {
	if model == "" {
		model = c.model
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, model, url.QueryEscape(c.apiKey))

	var result GenerateResponse
	if err := c.post(ctx, endpoint, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetFile fetches a document store entry by id. The "files/" prefix is added
// when the caller passes a bare id.
func (c *Client) GetFile(ctx context.Context, fileID string) (*File, error) {
	name := fileID
	if !strings.HasPrefix(name, "files/") {
		name = "files/" + name
	}
	endpoint := fmt.Sprintf("%s/%s?key=%s", c.apiURL, name, url.QueryEscape(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(raw))
	}

	var file File
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode file response: %w", err)
	}
	return &file, nil
}

// CreateCachedContent creates a server-side grounding context from file parts.
func (c *Client) CreateCachedContent(ctx context.Context, req CachedContentRequest) (*CachedContent, error) {
	if req.Model == "" {
		req.Model = "models/" + c.model
	}
	endpoint := fmt.Sprintf("%s/cachedContents?key=%s", c.apiURL, url.QueryEscape(c.apiKey))

	var result CachedContent
	if err := c.post(ctx, endpoint, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListCachedContents returns all caches visible to the API key.
func (c *Client) ListCachedContents(ctx context.Context) ([]CachedContent, error) {
	endpoint := fmt.Sprintf("%s/cachedContents?key=%s", c.apiURL, url.QueryEscape(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(raw))
	}

	var list cachedContentList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode cache list: %w", err)
	}
	return list.CachedContents, nil
}

func (c *Client) post(ctx context.Context, endpoint string, req any, out any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gemini response: %w", err)
	}
	return nil
}
