package backend

// Package backend implements the gateway client for the social-network
// backend service. A client is bound to one service ID; handles bind it
// further to a caller identity.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// callKind routes a method to the gateway's read or write path.
type callKind string

const (
	callQuery  callKind = "query"
	callUpdate callKind = "update"
)

// envelope is the request body for every backend call.
type envelope struct {
	Method string            `json:"method"`
	Args   []json.RawMessage `json:"args,omitempty"`
	Caller string            `json:"caller,omitempty"`
}

// reply is the response body for every backend call. Exactly one of Ok
// and Err is set.
type reply struct {
	Ok  json.RawMessage `json:"ok,omitempty"`
	Err string          `json:"err,omitempty"`
}

// ClientConfig holds configuration for the gateway client.
type ClientConfig struct {
	Host           string
	ServiceID      string
	RequestTimeout time.Duration
	HTTPClient     *http.Client // Optional, defaults to a client bounded by RequestTimeout
}

// Client performs backend calls against one service on one gateway host.
type Client struct {
	host       string
	serviceID  string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a gateway client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("gateway host is required")
	}
	if cfg.ServiceID == "" {
		return nil, errors.New("backend service ID is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		host:       cfg.Host,
		serviceID:  cfg.ServiceID,
		timeout:    timeout,
		httpClient: httpClient,
	}, nil
}

// call performs one backend round trip and returns the raw ok value.
func (c *Client) call(ctx context.Context, kind callKind, caller, method string, args ...any) (json.RawMessage, error) {
	rawArgs := make([]json.RawMessage, 0, len(args))
	for _, a := range args {
		encoded, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("encode arg for %s: %w", method, err)
		}
		rawArgs = append(rawArgs, encoded)
	}

	body, err := json.Marshal(envelope{Method: method, Args: rawArgs, Caller: caller})
	if err != nil {
		return nil, fmt.Errorf("encode call %s: %w", method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/api/v2/service/%s/%s", c.host, c.serviceID, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, mapTransportError(method, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, mapStatusError(method, resp.StatusCode)
	}

	var r reply
	if decodeErr := json.NewDecoder(resp.Body).Decode(&r); decodeErr != nil {
		return nil, fmt.Errorf("decode reply for %s: %w", method, decodeErr)
	}
	if r.Err != "" {
		return nil, mapBackendReject(method, r.Err)
	}
	return r.Ok, nil
}

// Query performs a read-path call.
func (c *Client) Query(ctx context.Context, caller, method string, args ...any) (json.RawMessage, error) {
	return c.call(ctx, callQuery, caller, method, args...)
}

// Update performs a write-path call.
func (c *Client) Update(ctx context.Context, caller, method string, args ...any) (json.RawMessage, error) {
	return c.call(ctx, callUpdate, caller, method, args...)
}
