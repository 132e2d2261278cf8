package core

import (
	"context"

	"github.com/hupe1980/salesmesh/logging"
)

// RunContext scopes a single workflow run. It embeds the cancellation context
// supplied by the caller and carries the run identifier, the branch path of
// the executing agent and the structured logger.
//
// A RunContext is created fresh per run and discarded at run end; nothing it
// references survives across runs. Fan-out coordinators clone it per branch so
// sibling agents never share a mutable context value.
type RunContext struct {
	context.Context

	// RunID uniquely identifies this workflow run.
	RunID string

	// Branch is the hierarchical branch path ("Manager.DraftFanOut.Professional").
	// Empty for the root agent.
	Branch string

	// Agent identifies the root agent this run was started for.
	Agent AgentInfo

	logger logging.Logger
}

// NewRunContext constructs a RunContext for a fresh run. A nil logger is
// substituted with a NoOpLogger so call sites never need nil checks.
func NewRunContext(ctx context.Context, runID string, agent AgentInfo, logger logging.Logger) *RunContext {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return &RunContext{
		Context: ctx,
		RunID:   runID,
		Agent:   agent,
		logger:  logger,
	}
}

// Logger returns the run-scoped logger.
func (rc *RunContext) Logger() logging.Logger { return rc.logger }

// Clone returns a shallow copy of the context for branch isolation. The copy
// shares the cancellation context and logger; callers adjust Branch on the
// returned value.
func (rc *RunContext) Clone() *RunContext {
	cloned := *rc
	return &cloned
}

// WithContext clones the RunContext and swaps the embedded cancellation
// context. Used by fan-out coordinators to bind branches to a group context.
func (rc *RunContext) WithContext(ctx context.Context) *RunContext {
	cloned := rc.Clone()
	cloned.Context = ctx
	return cloned
}
