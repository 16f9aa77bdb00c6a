// Package emailjs sends templated emails through the EmailJS REST API.
//
// One Send call issues exactly one POST to the fixed send endpoint. There is
// no retry and no queue: the caller decides what to do with a failure.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
)

// SendEndpoint is the EmailJS transactional send API.
const SendEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 4 << 10

// Credentials are the three opaque identifiers EmailJS needs per send.
// They are configuration; this package never inspects them.
type Credentials struct {
	ServiceID  string
	TemplateID string
	UserID     string
}

// Validate reports whether every identifier is present.
func (c Credentials) Validate() error {
	if c.ServiceID == "" || c.TemplateID == "" || c.UserID == "" {
		return errors.New("emailjs: service_id, template_id and user_id are required")
	}
	return nil
}

// TemplateParams are the variables the contact template renders.
type TemplateParams struct {
	FromName    string `json:"from_name"`
	FromEmail   string `json:"from_email"`
	FromPhone   string `json:"from_phone"`
	FromAddress string `json:"from_address"`
	Message     string `json:"message"`
}

// SendRequest is the JSON body of a send call.
type SendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams TemplateParams `json:"template_params"`
}

// NewRequest combines credentials with template params.
func NewRequest(creds Credentials, params TemplateParams) SendRequest {
	return SendRequest{
		ServiceID:      creds.ServiceID,
		TemplateID:     creds.TemplateID,
		UserID:         creds.UserID,
		TemplateParams: params,
	}
}

// StatusError is returned when EmailJS answers with anything but 200.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("emailjs: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Sender is what the contact usecase depends on.
type Sender interface {
	Send(ctx context.Context, req SendRequest) error
}

// Client implements Sender over HTTP.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client (transport stubs in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets an overall per-call timeout. Zero keeps the default of none.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient returns a Client posting to SendEndpoint.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		endpoint:   SendEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts req once. A nil error means EmailJS answered 200.
func (c *Client) Send(ctx context.Context, req SendRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "emailjs: encode request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "emailjs: build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "emailjs: send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}
}
