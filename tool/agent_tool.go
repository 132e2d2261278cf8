package tool

import (
	"fmt"

	"github.com/hupe1980/salesmesh/core"
)

// AgentTool exposes a core.Agent as a callable tool so composite agents can
// invoke specialized agents the same way they invoke plain functions.
//
// The wrapped agent runs in the caller's run scope on an isolated branch named
// after the tool. Errors from the agent are forwarded unwrapped so typed
// errors (e.g. *core.GenerationError) stay visible to errors.As at the top level.
type AgentTool struct {
	agent       core.Agent
	name        string
	description string
}

// AgentToolOptions configures an AgentTool instance.
type AgentToolOptions struct {
	// Name overrides the tool name (defaults to the agent name).
	Name string
	// Description overrides the tool description (defaults to the agent description).
	Description string
}

// NewAgentTool wraps the given agent as a tool.
func NewAgentTool(agent core.Agent, optFns ...func(o *AgentToolOptions)) *AgentTool {
	opts := AgentToolOptions{
		Name:        agent.Name(),
		Description: agent.Description(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &AgentTool{
		agent:       agent,
		name:        opts.Name,
		description: opts.Description,
	}
}

// Name returns the tool name.
func (t *AgentTool) Name() string { return t.name }

// Description returns the tool description.
func (t *AgentTool) Description() string { return t.description }

// Parameters returns the single-input schema shared by all agent tools.
func (t *AgentTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"input": map[string]any{
				"type":        "string",
				"description": "Input text passed to the agent",
			},
		},
		"required": []string{"input"},
	}
}

// Call invokes the wrapped agent with args["input"] on a branch context.
func (t *AgentTool) Call(toolCtx *core.ToolContext, args map[string]any) (any, error) {
	input, ok := args["input"].(string)
	if !ok {
		return nil, NewToolError(t.name, "argument 'input' must be a string", "VALIDATION_ERROR")
	}

	branchCtx := toolCtx.RunContext.Clone()
	branchCtx.Branch = buildBranchPath(toolCtx.RunContext.Branch, t.name)

	toolCtx.Logger().Debug("tool.agent.invoke", "tool", t.name, "agent", t.agent.Name(), "branch", branchCtx.Branch)

	output, err := t.agent.Invoke(branchCtx, input)
	if err != nil {
		return nil, err
	}

	return output, nil
}

// buildBranchPath joins a parent branch path with a child suffix.
func buildBranchPath(parent, suffix string) string {
	if parent == "" {
		return suffix
	}
	return fmt.Sprintf("%s.%s", parent, suffix)
}
