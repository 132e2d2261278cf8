package core

// ToolContext narrows a RunContext for the duration of a single tool call.
// It adds the tool name and a function-call identifier used to correlate the
// request with its result in logs.
type ToolContext struct {
	*RunContext

	toolName       string
	functionCallID string
}

// NewToolContext derives a ToolContext from the given RunContext.
func NewToolContext(runCtx *RunContext, toolName, functionCallID string) *ToolContext {
	return &ToolContext{
		RunContext:     runCtx,
		toolName:       toolName,
		functionCallID: functionCallID,
	}
}

// ToolName returns the name of the tool being invoked.
func (tc *ToolContext) ToolName() string { return tc.toolName }

// FunctionCallID returns the identifier correlating this call with its result.
func (tc *ToolContext) FunctionCallID() string { return tc.functionCallID }
