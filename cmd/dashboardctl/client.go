package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type dashboardClient struct {
	baseURL string
	http    *http.Client
}

func newClient() *dashboardClient {
	return &dashboardClient{
		baseURL: strings.TrimRight(serverURL, "/"),
		http: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// getJSON performs a GET request and decodes the response.
func (c *dashboardClient) getJSON(path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	resp, err := c.http.Get(u)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return decodeResponse(resp, v)
}

// postJSON sends body as JSON and decodes the response.
func (c *dashboardClient) postJSON(path string, body, v any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return decodeResponse(resp, v)
}

func decodeResponse(resp *http.Response, v any) error {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return nil
}
