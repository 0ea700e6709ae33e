package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

//go:generate mockgen -source=transport.go -destination=mock_transport_test.go -package=client

const contactPath = "/api/contact"

// maxResponseSize caps how much of an acknowledgment body is read
const maxResponseSize = 64 << 10

// Transport delivers one inquiry to the intake service
type Transport interface {
	SubmitInquiry(ctx context.Context, draft Draft) (*Acknowledgment, error)
}

// Acknowledgment is a successful answer from the intake service
type Acknowledgment struct {
	ID        string
	Message   string
	EmailSent bool
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type submitResponse struct {
	Success *bool `json:"success"`
	Data    *struct {
		ID        string `json:"id"`
		Message   string `json:"message"`
		EmailSent bool   `json:"email_sent"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// HTTPTransport posts inquiries as JSON to {BaseURL}/api/contact
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

// NewHTTPTransport creates a transport from a validated config
func NewHTTPTransport(cfg Config) (*HTTPTransport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HTTPTransport{
		endpoint: cfg.BaseURL + contactPath,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// SubmitInquiry sends exactly one request. It returns *TransportError when no
// well-formed acknowledgment arrived and *RejectionError when success is not true.
func (t *HTTPTransport) SubmitInquiry(ctx context.Context, draft Draft) (*Acknowledgment, error) {
	payload, err := json.Marshal(submitRequest{
		Name:    draft.Name,
		Email:   draft.Email,
		Subject: draft.Subject,
		Message: draft.Message,
	})
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to marshal inquiry: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var decoded submitResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if decoded.Success == nil || !*decoded.Success {
		rejection := &RejectionError{}
		if decoded.Error != nil {
			rejection.Message = decoded.Error.Message
		}
		return nil, rejection
	}

	ack := &Acknowledgment{}
	if decoded.Data != nil {
		ack.ID = decoded.Data.ID
		ack.Message = decoded.Data.Message
		ack.EmailSent = decoded.Data.EmailSent
	}
	return ack, nil
}
