package mail

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/logging"
	"github.com/hupe1980/salesmesh/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSender records the messages handed to it and replays a scripted outcome.
type captureSender struct {
	mu       sync.Mutex
	messages []Message
	result   SendResult
	err      error
}

func newCaptureSender() *captureSender {
	return &captureSender{result: SendResult{Status: StatusSuccess, StatusCode: 202}}
}

func (s *captureSender) Send(_ context.Context, msg Message) (SendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return s.result, s.err
}

func makeToolCtx(t *testing.T, toolName string) *core.ToolContext {
	t.Helper()
	info := core.AgentInfo{Name: "EmailManager", Type: "formatter"}
	runCtx := core.NewRunContext(context.Background(), "run-1", info, logging.NoOpLogger{})
	return core.NewToolContext(runCtx, toolName, "fc-1")
}

func TestSendResult_Success(t *testing.T) {
	assert.True(t, SendResult{Status: StatusSuccess}.Success())
	assert.False(t, SendResult{Status: StatusError}.Success())
	assert.False(t, SendResult{}.Success())
}

func TestSimulatedSender_AlwaysAccepts(t *testing.T) {
	s := NewSimulatedSender()

	result, err := s.Send(context.Background(), Message{
		From:        "from@example.com",
		To:          "to@example.com",
		Subject:     "Hello",
		Body:        "body",
		ContentType: ContentTypePlain,
	})
	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Equal(t, 202, result.StatusCode)
}

func TestSimulatedSender_CanceledContext(t *testing.T) {
	s := NewSimulatedSender()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.Send(ctx, Message{To: "to@example.com"})
	require.NoError(t, err)
	assert.False(t, result.Success())
}

func TestSendHTMLEmailTool(t *testing.T) {
	sender := newCaptureSender()
	sendTool := NewSendHTMLEmailTool(sender, "alice@complai.example", "ceo@startup.example")

	assert.Equal(t, "send_html_email", sendTool.Name())

	result, err := sendTool.Call(makeToolCtx(t, "send_html_email"), map[string]any{
		"subject":   "Quick question",
		"html_body": "<p>Hello</p>",
	})
	require.NoError(t, err)

	sendResult, ok := result.(SendResult)
	require.True(t, ok)
	assert.True(t, sendResult.Success())

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "alice@complai.example", msg.From)
	assert.Equal(t, "ceo@startup.example", msg.To)
	assert.Equal(t, "Quick question", msg.Subject)
	assert.Equal(t, "<p>Hello</p>", msg.Body)
	assert.Equal(t, ContentTypeHTML, msg.ContentType)
}

func TestSendHTMLEmailTool_MissingArgs(t *testing.T) {
	sender := newCaptureSender()
	sendTool := NewSendHTMLEmailTool(sender, "from@example.com", "to@example.com")

	_, err := sendTool.Call(makeToolCtx(t, "send_html_email"), map[string]any{
		"subject": "no body given",
	})
	assert.Error(t, err)

	var toolErr *tool.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)

	// Validation failed before the sender was touched.
	assert.Empty(t, sender.messages)
}

func TestSendTools_NullArgument(t *testing.T) {
	sender := newCaptureSender()

	htmlTool := NewSendHTMLEmailTool(sender, "from@example.com", "to@example.com")

	// A model-emitted tool call can carry JSON null for a declared argument.
	_, err := htmlTool.Call(makeToolCtx(t, "send_html_email"), map[string]any{
		"subject":   "Subject",
		"html_body": nil,
	})
	assert.Error(t, err)

	var toolErr *tool.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)

	plainTool := NewSendEmailTool(sender, "from@example.com", "to@example.com")

	_, err = plainTool.Call(makeToolCtx(t, "send_email"), map[string]any{
		"body": nil,
	})
	assert.Error(t, err)

	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)

	assert.Empty(t, sender.messages)
}

func TestSendEmailTool_DefaultSubject(t *testing.T) {
	sender := newCaptureSender()
	sendTool := NewSendEmailTool(sender, "from@example.com", "to@example.com")

	result, err := sendTool.Call(makeToolCtx(t, "send_email"), map[string]any{
		"body": "plain text body",
	})
	require.NoError(t, err)

	sendResult, ok := result.(SendResult)
	require.True(t, ok)
	assert.True(t, sendResult.Success())

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "Sales Email", msg.Subject)
	assert.Equal(t, "plain text body", msg.Body)
	assert.Equal(t, ContentTypePlain, msg.ContentType)
}

func TestSendTools_TransportErrorBecomesResult(t *testing.T) {
	sender := newCaptureSender()
	sender.result = SendResult{}
	sender.err = errors.New("connection refused")

	sendTool := NewSendHTMLEmailTool(sender, "from@example.com", "to@example.com")

	result, err := sendTool.Call(makeToolCtx(t, "send_html_email"), map[string]any{
		"subject":   "Subject",
		"html_body": "<p>body</p>",
	})
	require.NoError(t, err)

	sendResult, ok := result.(SendResult)
	require.True(t, ok)
	assert.False(t, sendResult.Success())
	assert.Contains(t, sendResult.Message, "connection refused")
}

func TestSendTools_RejectionPassedThrough(t *testing.T) {
	sender := newCaptureSender()
	sender.result = SendResult{Status: StatusError, StatusCode: 401, Message: "unauthorized"}

	sendTool := NewSendEmailTool(sender, "from@example.com", "to@example.com")

	result, err := sendTool.Call(makeToolCtx(t, "send_email"), map[string]any{
		"body": "plain text body",
	})
	require.NoError(t, err)

	sendResult, ok := result.(SendResult)
	require.True(t, ok)
	assert.False(t, sendResult.Success())
	assert.Equal(t, 401, sendResult.StatusCode)
	assert.Equal(t, "unauthorized", sendResult.Message)
}
