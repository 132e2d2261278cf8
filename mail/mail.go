// Package mail defines the outbound-email boundary of SalesMesh: the message
// and result types, the Sender interface implemented by providers, and the
// terminal send tools exposed to agents. Concrete providers live in
// subpackages (sendgrid) or in this package for local use (SimulatedSender).
package mail

import "context"

// ContentType identifies the body encoding of an outbound message.
const (
	ContentTypePlain = "text/plain"
	ContentTypeHTML  = "text/html"
)

// Status is the boolean-ish outcome signal of a send attempt.
type Status string

const (
	// StatusSuccess indicates the provider accepted the message.
	StatusSuccess Status = "success"
	// StatusError indicates the provider rejected the message or the
	// attempt failed.
	StatusError Status = "error"
)

// Message is the outbound email constructed by the formatter/sender chain.
type Message struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	ContentType string `json:"content_type"`
}

// SendResult is the terminal outcome of a send attempt. It is not retried by
// the orchestration core; retry policy belongs to whatever wraps a full run.
type SendResult struct {
	Status     Status `json:"status"`
	StatusCode int    `json:"status_code,omitempty"` // Provider status code when available
	Message    string `json:"message,omitempty"`     // Error detail when Status is error
}

// Success reports whether the send was accepted.
func (r SendResult) Success() bool { return r.Status == StatusSuccess }

// Sender is the outbound-email provider boundary. Implementations return an
// error only for transport-level failures (network, auth); provider-side
// rejections surface as an error-status SendResult with a nil error.
type Sender interface {
	Send(ctx context.Context, msg Message) (SendResult, error)
}
