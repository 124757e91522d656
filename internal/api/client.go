package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const ProcessTextPath = "/process_text"

// Client talks to the text processing server.
type Client struct {
	base           *url.URL
	http           *http.Client
	processTextUrl *url.URL
}

// ClientConfig holds the configuration for the client
type ClientConfig struct {
	Scheme          string
	Host            string
	ProcessTextPath string
}

// NewClient creates a new API client. An empty ProcessTextPath means
// ProcessTextPath.
func NewClient(config ClientConfig) *Client {
	path := config.ProcessTextPath
	if path == "" {
		path = ProcessTextPath
	}
	baseURL := &url.URL{Scheme: config.Scheme, Host: config.Host}
	return &Client{
		base: baseURL,
		// No timeout: a submission waits as long as the server takes.
		http:           &http.Client{},
		processTextUrl: baseURL.ResolveReference(&url.URL{Path: path}),
	}
}

// NewClientFromURL builds a client for a server base URL such as
// http://127.0.0.1:5000.
func NewClientFromURL(serverURL string) (*Client, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse server url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server url %q has no host", serverURL)
	}
	return NewClient(ClientConfig{Scheme: u.Scheme, Host: u.Host}), nil
}

func (c *Client) GetProcessTextURL() string {
	return c.processTextUrl.String()
}

// ProcessText posts req as JSON and decodes the reply. The status code is not
// inspected: any response whose body is valid JSON other than null counts as
// success.
func (c *Client) ProcessText(ctx context.Context, req *ProcessTextRequest) (*ProcessTextResponse, error) {
	requestData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GetProcessTextURL(), bytes.NewBuffer(requestData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var processed *ProcessTextResponse
	if err := json.Unmarshal(body, &processed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if processed == nil {
		return nil, errors.New("failed to decode response: body is null")
	}
	return processed, nil
}
