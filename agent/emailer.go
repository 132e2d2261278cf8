package agent

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/mail"
	"github.com/hupe1980/salesmesh/model"
	"github.com/hupe1980/salesmesh/tool"
)

const subjectWriterInstruction = `You can write a subject for a cold sales email.
You are given a message and you need to write a subject for an email that is likely to get a response.`

const htmlConverterInstruction = `You can convert a text email body to an HTML email body.
You are given a text email body which might have some markdown
and you need to convert it to an HTML email body with simple, clear, compelling layout and design.`

// Tool names in the emailer's registry.
const (
	subjectWriterToolName = "subject_writer"
	htmlConverterToolName = "html_converter"
	sendHTMLEmailToolName = "send_html_email"
)

// Emailer is the formatter/sender chain. Given exactly one winning draft it
// derives a subject line, converts the body to HTML and invokes the terminal
// send tool — three ordered steps, never reordered or parallelized.
//
// The capability set is a registry built once at construction: two agent
// tools (subject writer, HTML converter) and the terminal send tool. A send
// rejection surfaces as the chain's own result; the formatting steps are pure
// and need no rollback. The chain never sends more than once per invocation.
type Emailer struct {
	BaseAgent
	registry *tool.Registry
}

// EmailerOptions configures an Emailer instance.
type EmailerOptions struct {
	// Name overrides the default agent name.
	Name string
	// SubjectInstruction overrides the subject writer persona.
	SubjectInstruction string
	// HTMLInstruction overrides the HTML converter persona.
	HTMLInstruction string
}

// NewEmailer creates the formatter/sender chain.
//
// Parameters:
//   - llm: model driving the subject writer and HTML converter
//   - sender: outbound provider invoked by the terminal send tool
//   - from, to: addresses stamped on the outbound message
func NewEmailer(llm model.Model, sender mail.Sender, from, to string, optFns ...func(o *EmailerOptions)) *Emailer {
	opts := EmailerOptions{
		Name:               "EmailManager",
		SubjectInstruction: subjectWriterInstruction,
		HTMLInstruction:    htmlConverterInstruction,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	subjectWriter := NewGenerator("SubjectWriter", llm, opts.SubjectInstruction)
	htmlConverter := NewGenerator("HTMLConverter", llm, opts.HTMLInstruction)

	registry := tool.NewRegistry(
		tool.NewAgentTool(subjectWriter, func(o *tool.AgentToolOptions) {
			o.Name = subjectWriterToolName
			o.Description = "Write a subject for a cold sales email"
		}),
		tool.NewAgentTool(htmlConverter, func(o *tool.AgentToolOptions) {
			o.Name = htmlConverterToolName
			o.Description = "Convert a text email body to an HTML email body"
		}),
		mail.NewSendHTMLEmailTool(sender, from, to),
	)

	e := &Emailer{
		BaseAgent: NewBaseAgent(opts.Name),
		registry:  registry,
	}
	e.SetDescription("Convert an email to HTML and send it")

	return e
}

// Tools returns the emailer's capability registry.
func (e *Emailer) Tools() *tool.Registry { return e.registry }

// Deliver runs the three-step chain over the winning draft body and returns
// the terminal send result. Formatting failures abort the chain with an
// error; a provider rejection is returned as an error-status result with a
// nil error.
func (e *Emailer) Deliver(runCtx *core.RunContext, body string) (mail.SendResult, error) {
	logger := runCtx.Logger()
	start := time.Now()

	logger.Debug("emailer.deliver.start", "agent", e.Name())

	subject, err := e.invokeTextTool(runCtx, subjectWriterToolName, body)
	if err != nil {
		return mail.SendResult{}, err
	}

	htmlBody, err := e.invokeTextTool(runCtx, htmlConverterToolName, body)
	if err != nil {
		return mail.SendResult{}, err
	}

	sendTool, ok := e.registry.Get(sendHTMLEmailToolName)
	if !ok {
		return mail.SendResult{}, core.NewGenerationError(e.Name(), fmt.Errorf("tool %s is not registered", sendHTMLEmailToolName))
	}

	toolCtx := core.NewToolContext(runCtx, sendHTMLEmailToolName, uuid.NewString())

	raw, err := sendTool.Call(toolCtx, map[string]any{
		"subject":   subject,
		"html_body": htmlBody,
	})
	if err != nil {
		return mail.SendResult{}, core.NewGenerationError(e.Name(), err)
	}

	result, ok := raw.(mail.SendResult)
	if !ok {
		return mail.SendResult{}, core.NewGenerationError(e.Name(), fmt.Errorf("tool %s returned unexpected result type %T", sendHTMLEmailToolName, raw))
	}

	logger.Info("emailer.deliver.done",
		"agent", e.Name(),
		"status", string(result.Status),
		"status_code", result.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}

// invokeTextTool calls a registered agent tool with the given input and
// requires a non-empty text result.
func (e *Emailer) invokeTextTool(runCtx *core.RunContext, name, input string) (string, error) {
	t, ok := e.registry.Get(name)
	if !ok {
		return "", core.NewGenerationError(e.Name(), fmt.Errorf("tool %s is not registered", name))
	}

	toolCtx := core.NewToolContext(runCtx, name, uuid.NewString())

	raw, err := t.Call(toolCtx, map[string]any{"input": input})
	if err != nil {
		return "", err
	}

	text, ok := raw.(string)
	if !ok || text == "" {
		return "", core.NewGenerationError(e.Name(), fmt.Errorf("tool %s produced no text", name))
	}

	return text, nil
}
