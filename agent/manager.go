package agent

import (
	"time"

	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/mail"
)

// Report is the terminal outcome of an orchestrated run. All fields are
// populated fresh per run; nothing is persisted across runs.
type Report struct {
	RunID  string   `json:"run_id"`
	Drafts []string `json:"drafts"`
	Winner string   `json:"winner"`
	// Delivered reports whether the send phase ran. False for draft-only runs
	// and for runs aborted before delegation.
	Delivered bool            `json:"delivered"`
	Send      mail.SendResult `json:"send,omitempty"`
}

// Manager is the top-level orchestrator. A run moves through three ordered
// phases and terminates on completion or on the first unrecoverable error:
//
//	COLLECT_DRAFTS -> SELECT_ONE -> DELEGATE_SEND
//
// The manager must hold a full, non-empty draft set before selecting, exactly
// one winner before delegating, and delegates to the emailer exactly once.
// Once the chain returns the run is complete whether the send succeeded or
// not; the manager never re-delegates on a send failure. Per successful run
// there is exactly one outbound send attempt, and zero if selection fails
// first.
type Manager struct {
	BaseAgent
	fanout   *FanOut
	selector *Selector
	emailer  *Emailer
}

// ManagerOptions configures a Manager instance.
type ManagerOptions struct {
	// Name overrides the default agent name.
	Name string
}

// NewManager creates the orchestrator over the given phase components.
func NewManager(fanout *FanOut, selector *Selector, emailer *Emailer, optFns ...func(o *ManagerOptions)) *Manager {
	opts := ManagerOptions{
		Name: "SalesManager",
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	m := &Manager{
		BaseAgent: NewBaseAgent(opts.Name),
		fanout:    fanout,
		selector:  selector,
		emailer:   emailer,
	}
	m.SetDescription("Generate cold outreach drafts, pick the best one and delegate sending")

	return m
}

// Run executes the full pipeline for the given prompt. A returned *Report
// with an error-status Send is a completed run whose terminal send was
// rejected; a non-nil error is an aborted run with no send attempt beyond
// any already reported.
func (m *Manager) Run(runCtx *core.RunContext, prompt string) (*Report, error) {
	report, err := m.Draft(runCtx, prompt)
	if err != nil {
		return nil, err
	}

	// DELEGATE_SEND: hand off the single winner to the chain exactly once.
	result, err := m.emailer.Deliver(runCtx, report.Winner)
	if err != nil {
		return nil, err
	}

	report.Delivered = true
	report.Send = result

	runCtx.Logger().Info("manager.run.done",
		"agent", m.Name(),
		"run_id", runCtx.RunID,
		"send_status", string(result.Status),
	)

	return report, nil
}

// Draft executes the draft-only workflow: collect all candidate drafts and
// select a single winner, without delegating to the send chain.
func (m *Manager) Draft(runCtx *core.RunContext, prompt string) (*Report, error) {
	logger := runCtx.Logger()
	start := time.Now()

	// COLLECT_DRAFTS: all branches must complete before advancing.
	drafts, err := m.fanout.Run(runCtx, prompt)
	if err != nil {
		return nil, err
	}

	if len(drafts) == 0 {
		logger.Error("manager.collect.error", "agent", m.Name(), "error", "no drafts collected")
		return nil, core.NewSelectionError(0, "no drafts collected")
	}

	logger.Debug("manager.collect.done", "agent", m.Name(), "drafts", len(drafts))

	// SELECT_ONE: reduce to exactly one winner.
	winner, err := m.selector.Select(runCtx, drafts)
	if err != nil {
		return nil, err
	}

	logger.Info("manager.select.done",
		"agent", m.Name(),
		"run_id", runCtx.RunID,
		"drafts", len(drafts),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Report{
		RunID:  runCtx.RunID,
		Drafts: drafts,
		Winner: winner,
	}, nil
}
