// Package sendgrid provides a mail.Sender backed by the SendGrid v3 Mail Send
// API. The sender email must be verified in the SendGrid dashboard.
package sendgrid

import (
	"context"
	"fmt"

	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/mail"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// acceptedStatusCode is the status SendGrid returns for a queued message.
const acceptedStatusCode = 202

// Sender sends email through SendGrid.
type Sender struct {
	client *sendgrid.Client
}

// New creates a SendGrid-backed Sender with the given API key.
func New(apiKey string) *Sender {
	return &Sender{client: sendgrid.NewSendClient(apiKey)}
}

// Send implements mail.Sender. Transport failures return a *core.SendError;
// non-accepted provider responses return an error-status SendResult.
func (s *Sender) Send(ctx context.Context, msg mail.Message) (mail.SendResult, error) {
	from := sgmail.NewEmail("", msg.From)
	to := sgmail.NewEmail("", msg.To)
	content := sgmail.NewContent(msg.ContentType, msg.Body)
	m := sgmail.NewV3MailInit(from, msg.Subject, to, content)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return mail.SendResult{}, core.NewSendError("sendgrid", err)
	}

	if resp.StatusCode != acceptedStatusCode {
		return mail.SendResult{
			Status:     mail.StatusError,
			StatusCode: resp.StatusCode,
			Message:    resp.Body,
		}, nil
	}

	return mail.SendResult{Status: mail.StatusSuccess, StatusCode: resp.StatusCode}, nil
}

// Verify sends a plain test email to confirm the API key and sender identity
// before a real run. Returns an error if the provider does not accept it.
func (s *Sender) Verify(ctx context.Context, from, to string) error {
	result, err := s.Send(ctx, mail.Message{
		From:        from,
		To:          to,
		Subject:     "Test Email - SalesMesh",
		Body:        "This is a test email from SalesMesh",
		ContentType: mail.ContentTypePlain,
	})
	if err != nil {
		return err
	}

	if !result.Success() {
		return core.NewSendError("sendgrid", fmt.Errorf("verification send rejected with status %d: %s", result.StatusCode, result.Message))
	}

	return nil
}
