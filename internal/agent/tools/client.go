package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cs-chat-simulator/internal/agent"
)

// api is the thin HTTP client shared by every tool. Each remoteFn is one call
// to a backoffice endpoint; responses are returned as decoded JSON.
type api struct {
	baseURL    string
	httpClient *http.Client
}

func newAPI(baseURL string, httpClient *http.Client) *api {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &api{baseURL: baseURL, httpClient: httpClient}
}

func (a *api) get(ctx context.Context, path string) (interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return a.do(req)
}

func (a *api) post(ctx context.Context, path string, body interface{}) (interface{}, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return a.do(req)
}

func (a *api) do(req *http.Request) (interface{}, error) {
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backoffice error %d: %s", resp.StatusCode, string(raw))
	}

	var result interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return result, nil
}

func stringParam(params map[string]interface{}, key string) (string, error) {
	v, ok := params[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return v, nil
}

// RegisterAll registers the full customer-service tool set against the
// backoffice at baseURL.
func RegisterAll(r *agent.ToolRegistry, baseURL string, httpClient *http.Client) {
	a := newAPI(baseURL, httpClient)

	r.Register(&GetOrderTool{api: a})
	r.Register(&CancelOrderTool{api: a})
	r.Register(&CreateRefundTool{api: a})
	r.Register(&SendReplacementTool{api: a})
	r.Register(&CreateReturnTool{api: a})
	r.Register(&GetOrderHistoryTool{api: a})
	r.Register(&ResetPasswordTool{api: a})
	r.Register(&UpdateInfoTool{api: a})
	r.Register(&IssueVoucherTool{api: a})
	r.Register(&CreateComplaintTool{api: a})
	r.Register(&CreateTicketTool{api: a})
}
