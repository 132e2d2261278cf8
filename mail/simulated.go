package mail

import (
	"context"

	"github.com/hupe1980/salesmesh/logging"
)

// SimulatedSender is a dry-run Sender that logs the would-be message and
// accepts it with status code 202. Whether a system sends for real or
// simulates is decided where the sender is constructed and injected, not by a
// process-wide mode switch.
type SimulatedSender struct {
	logger logging.Logger
}

// SimulatedSenderOptions configures a SimulatedSender.
type SimulatedSenderOptions struct {
	Logger logging.Logger
}

// NewSimulatedSender creates a SimulatedSender. Defaults to a NoOp logger.
func NewSimulatedSender(optFns ...func(o *SimulatedSenderOptions)) *SimulatedSender {
	opts := SimulatedSenderOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &SimulatedSender{logger: opts.Logger}
}

// Send implements Sender. It never fails.
func (s *SimulatedSender) Send(ctx context.Context, msg Message) (SendResult, error) {
	if err := ctx.Err(); err != nil {
		return SendResult{Status: StatusError, Message: err.Error()}, nil
	}

	s.logger.Info("mail.simulated.send",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"content_type", msg.ContentType,
		"body_len", len(msg.Body),
	)

	return SendResult{Status: StatusSuccess, StatusCode: 202}, nil
}
