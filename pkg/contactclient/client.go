// Package contactclient talks to the portfolio contact endpoint and models
// the contact form's submit lifecycle.
package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Message is the contact form payload.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Response is the body of a 200 answer from the contact endpoint.
type Response struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
	Warning   string `json:"warning,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Delivery tells what the server did with an accepted message.
type Delivery string

const (
	DeliveryRelayed       Delivery = "relayed"
	DeliveryNotConfigured Delivery = "not_configured"
	DeliveryRelayFailed   Delivery = "relay_failed"
)

// Delivery classifies the response from its annotation fields. The HTTP
// status is 200 in all three cases.
func (r *Response) Delivery() Delivery {
	switch {
	case r.Error != "":
		return DeliveryRelayFailed
	case r.Warning != "":
		return DeliveryNotConfigured
	default:
		return DeliveryRelayed
	}
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string // "error" field of the body when present, else the raw body
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return "contactclient: failed to send message: " + e.Status
	}
	return fmt.Sprintf("contactclient: failed to send message: %s: %s", e.Status, e.Body)
}

// Diagnostics is the body of the probe endpoint.
type Diagnostics struct {
	Status string            `json:"status"`
	Env    map[string]string `json:"env"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts msg to the contact endpoint.
func (c *Client) Submit(ctx context.Context, msg Message) (*Response, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("contactclient: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contact", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("contactclient: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out Response
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Diagnose calls the read-only configuration probe.
func (c *Client) Diagnose(ctx context.Context) (*Diagnostics, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/contact/test", nil)
	if err != nil {
		return nil, fmt.Errorf("contactclient: new request: %w", err)
	}

	var out Diagnostics
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("contactclient: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("contactclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: errorField(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("contactclient: decode: %w", err)
	}
	return nil
}

func errorField(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
