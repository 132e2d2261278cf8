package runner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/salesmesh/agent"
	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/logging"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Logger receives structured run events. Defaults to NoOp.
	Logger logging.Logger
}

// Runner coordinates manager runs: it creates run contexts with fresh run
// IDs, invokes the manager and logs outcomes. Public methods are safe for
// concurrent use; every run gets its own context.
type Runner struct {
	manager *agent.Manager
	logger  logging.Logger
}

// New constructs a Runner with optional overrides.
func New(manager *agent.Manager, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		manager: manager,
		logger:  opts.Logger,
	}
}

// Run executes the full pipeline (collect, select, deliver) for the prompt.
func (r *Runner) Run(ctx context.Context, prompt string) (*agent.Report, error) {
	return r.run(ctx, prompt, false)
}

// RunDrafts executes the draft-only workflow (collect, select) without a send.
func (r *Runner) RunDrafts(ctx context.Context, prompt string) (*agent.Report, error) {
	return r.run(ctx, prompt, true)
}

func (r *Runner) run(ctx context.Context, prompt string, draftsOnly bool) (*agent.Report, error) {
	runID := uuid.NewString()
	start := time.Now()

	runCtx := core.NewRunContext(ctx, runID, core.AgentInfo{
		Name: r.manager.Name(),
		Type: "orchestrator",
	}, r.logger)

	r.logger.Info("run.start", "run_id", runID, "agent", r.manager.Name(), "drafts_only", draftsOnly)

	var (
		report *agent.Report
		err    error
	)
	if draftsOnly {
		report, err = r.manager.Draft(runCtx, prompt)
	} else {
		report, err = r.manager.Run(runCtx, prompt)
	}

	if err != nil {
		r.logger.Error("run.failed", "run_id", runID, "error", err.Error(), "duration_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	r.logger.Info("run.done",
		"run_id", runID,
		"drafts", len(report.Drafts),
		"delivered", report.Delivered,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return report, nil
}
