package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("OPENAI_API_KEY", "required for email generation")
	assert.Equal(t, "configuration error for OPENAI_API_KEY: required for email generation", err.Error())
}

func TestGenerationError_Unwrap(t *testing.T) {
	sentinel := errors.New("rate limited")
	err := NewGenerationError("Professional", sentinel)

	assert.Contains(t, err.Error(), "Professional")
	assert.ErrorIs(t, err, sentinel)

	var genErr *GenerationError
	require.ErrorAs(t, error(err), &genErr)
	assert.Equal(t, "Professional", genErr.Agent)
}

func TestSelectionError(t *testing.T) {
	err := NewSelectionError(3, "selected text matches no candidate")
	assert.Equal(t, 3, err.Candidates)
	assert.Contains(t, err.Error(), "3 candidates")
}

func TestSendError_Unwrap(t *testing.T) {
	sentinel := errors.New("connection refused")
	err := NewSendError("sendgrid", sentinel)

	assert.Contains(t, err.Error(), "sendgrid")
	assert.ErrorIs(t, err, sentinel)
}

func TestRunContext_CloneIsolatesBranch(t *testing.T) {
	rc := NewRunContext(context.Background(), "run-1", AgentInfo{Name: "SalesManager", Type: "orchestrator"}, nil)

	branch := rc.Clone()
	branch.Branch = "DraftFanOut.Professional"

	assert.Equal(t, "", rc.Branch)
	assert.Equal(t, "DraftFanOut.Professional", branch.Branch)
	assert.Equal(t, rc.RunID, branch.RunID)
	assert.NotNil(t, rc.Logger())
}

func TestRunContext_WithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rc := NewRunContext(context.Background(), "run-1", AgentInfo{Name: "SalesManager"}, nil)

	bound := rc.WithContext(ctx)
	cancel()

	assert.Error(t, bound.Err())
	assert.NoError(t, rc.Err())
}

func TestNewToolContext(t *testing.T) {
	rc := NewRunContext(context.Background(), "run-1", AgentInfo{Name: "EmailManager"}, nil)
	tc := NewToolContext(rc, "send_html_email", "fc-1")

	assert.Equal(t, "send_html_email", tc.ToolName())
	assert.Equal(t, "fc-1", tc.FunctionCallID())
	assert.Equal(t, "run-1", tc.RunContext.RunID)
}
