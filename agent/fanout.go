package agent

import (
	"fmt"
	"time"

	"github.com/hupe1980/salesmesh/core"
	"golang.org/x/sync/errgroup"
)

// FanOut coordinates the concurrent invocation of multiple agents with one
// shared prompt, joining on all branches before returning.
//
// Outputs preserve input order: output[i] is always produced by agent[i],
// regardless of completion order. Each branch receives a cloned RunContext
// with its own branch path so siblings never share mutable context state.
//
// Failure policy is fail-fast: the first branch error cancels the context of
// the remaining branches and fails the whole batch. The manager cannot
// advance with a partial draft set, so best-effort collection would only
// delay the same abort.
type FanOut struct {
	BaseAgent
	agents []core.Agent
}

// NewFanOut creates a fan-out coordinator over the given agents.
func NewFanOut(name string, agents ...core.Agent) *FanOut {
	return &FanOut{
		BaseAgent: NewBaseAgent(name),
		agents:    agents,
	}
}

// Size returns the number of coordinated agents.
func (f *FanOut) Size() int { return len(f.agents) }

// Run invokes all agents concurrently with the given prompt and returns their
// outputs in input order once every branch has completed.
func (f *FanOut) Run(runCtx *core.RunContext, prompt string) ([]string, error) {
	logger := runCtx.Logger()
	start := time.Now()

	logger.Debug("fanout.start", "agent", f.Name(), "branches", len(f.agents))

	g, ctx := errgroup.WithContext(runCtx)

	outputs := make([]string, len(f.agents))
	for i, a := range f.agents {
		g.Go(func() error {
			// Isolated branch context bound to the group's cancellation.
			branchCtx := runCtx.WithContext(ctx)
			branchCtx.Branch = buildBranchPath(runCtx.Branch, fmt.Sprintf("%s.%s", f.Name(), a.Name()))

			output, err := a.Invoke(branchCtx, prompt)
			if err != nil {
				return fmt.Errorf("fan-out branch %s failed: %w", a.Name(), err)
			}

			outputs[i] = output

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("fanout.error", "agent", f.Name(), "error", err.Error())
		return nil, err
	}

	logger.Info("fanout.done",
		"agent", f.Name(),
		"branches", len(f.agents),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return outputs, nil
}

// buildBranchPath joins a parent branch path with a child suffix.
func buildBranchPath(parent, suffix string) string {
	if parent == "" {
		return suffix
	}
	return fmt.Sprintf("%s.%s", parent, suffix)
}
