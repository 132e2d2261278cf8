package mail

import (
	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/tool"
)

// Default subject used by the plain-text send tool when none is derived.
const defaultSubject = "Sales Email"

// NewSendEmailTool creates the terminal tool that sends a plain text email.
// Transport failures are folded into an error-status SendResult so the chain
// surfaces the status as its own result instead of aborting.
func NewSendEmailTool(sender Sender, from, to string) *tool.FunctionTool {
	return tool.NewFunctionTool(
		"send_email",
		"Send a plain text email with the given body",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"body": map[string]any{
					"type":        "string",
					"description": "The email body content",
				},
			},
			"required": []string{"body"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			body, ok := args["body"].(string)
			if !ok {
				return nil, tool.NewToolError("send_email", "argument 'body' must be a string", "VALIDATION_ERROR")
			}

			msg := Message{
				From:        from,
				To:          to,
				Subject:     defaultSubject,
				Body:        body,
				ContentType: ContentTypePlain,
			}

			return send(toolCtx, sender, msg)
		},
	)
}

// NewSendHTMLEmailTool creates the terminal tool that sends an HTML formatted
// email with an explicit subject line.
func NewSendHTMLEmailTool(sender Sender, from, to string) *tool.FunctionTool {
	return tool.NewFunctionTool(
		"send_html_email",
		"Send an HTML formatted email with the given subject and body",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject": map[string]any{
					"type":        "string",
					"description": "Email subject line",
				},
				"html_body": map[string]any{
					"type":        "string",
					"description": "HTML formatted email body",
				},
			},
			"required": []string{"subject", "html_body"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			subject, ok := args["subject"].(string)
			if !ok {
				return nil, tool.NewToolError("send_html_email", "argument 'subject' must be a string", "VALIDATION_ERROR")
			}

			htmlBody, ok := args["html_body"].(string)
			if !ok {
				return nil, tool.NewToolError("send_html_email", "argument 'html_body' must be a string", "VALIDATION_ERROR")
			}

			msg := Message{
				From:        from,
				To:          to,
				Subject:     subject,
				Body:        htmlBody,
				ContentType: ContentTypeHTML,
			}

			return send(toolCtx, sender, msg)
		},
	)
}

func send(toolCtx *core.ToolContext, sender Sender, msg Message) (SendResult, error) {
	result, err := sender.Send(toolCtx, msg)
	if err != nil {
		toolCtx.Logger().Error("mail.send.transport_error", "to", msg.To, "error", err.Error())
		return SendResult{Status: StatusError, Message: err.Error()}, nil
	}

	if result.Success() {
		toolCtx.Logger().Info("mail.send.accepted", "to", msg.To, "status_code", result.StatusCode)
	} else {
		toolCtx.Logger().Warn("mail.send.rejected", "to", msg.To, "status_code", result.StatusCode, "message", result.Message)
	}

	return result, nil
}
