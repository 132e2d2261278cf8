package agent

import (
	"strings"
	"time"

	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/model"
)

// defaultSelectorInstruction asks the model to act as the receiving customer
// and answer with the chosen email only.
const defaultSelectorInstruction = `You pick the best cold sales email from the given options.
Imagine you are a customer and pick the one you are most likely to respond to.
Do not give an explanation; reply with the selected email only.`

// Selector reduces an ordered candidate set to exactly one winner.
//
// The returned text is always one of the inputs, unmodified. Selection is a
// black box: no determinism guarantee is made beyond the exactly-one-winner
// and member-of-input invariants. An empty candidate set is a precondition
// violation reported as *core.SelectionError.
type Selector struct {
	BaseAgent
	llm         model.Model
	instruction string
}

// SelectorOptions configures a Selector instance.
type SelectorOptions struct {
	// Name overrides the default agent name.
	Name string
	// Instruction overrides the default picker instruction.
	Instruction string
}

// NewSelector creates a model-backed candidate picker.
func NewSelector(llm model.Model, optFns ...func(o *SelectorOptions)) *Selector {
	opts := SelectorOptions{
		Name:        "SalesPicker",
		Instruction: defaultSelectorInstruction,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Selector{
		BaseAgent:   NewBaseAgent(opts.Name),
		llm:         llm,
		instruction: opts.Instruction,
	}
}

// Select returns exactly one member of candidates.
//
// A singleton set short-circuits without a model call. Otherwise the model is
// asked to pick; its answer is matched back to the candidates (byte-identical
// first, then with surrounding whitespace trimmed) and the matched original
// candidate is returned, keeping the result bit-identical to an input. An
// answer matching no candidate is a *core.SelectionError.
func (s *Selector) Select(runCtx *core.RunContext, candidates []string) (string, error) {
	logger := runCtx.Logger()
	start := time.Now()

	if len(candidates) == 0 {
		logger.Error("selector.select.error", "agent", s.Name(), "error", "empty candidate set")
		return "", core.NewSelectionError(0, "no candidates to select from")
	}

	if len(candidates) == 1 {
		logger.Info("selector.select.done", "agent", s.Name(), "candidates", 1, "winner_index", 0)
		return candidates[0], nil
	}

	logger.Debug("selector.select.start", "agent", s.Name(), "candidates", len(candidates))

	resp, err := s.llm.Generate(runCtx, model.Request{
		Instructions: s.instruction,
		Messages:     []model.Message{{Role: "user", Text: selectionPrompt(candidates)}},
	})
	if err != nil {
		logger.Error("selector.select.error", "agent", s.Name(), "error", err.Error())
		return "", core.NewGenerationError(s.Name(), err)
	}

	idx := matchCandidate(resp.Text, candidates)
	if idx < 0 {
		logger.Error("selector.select.error", "agent", s.Name(), "error", "answer matches no candidate")
		return "", core.NewSelectionError(len(candidates), "selected text matches no candidate")
	}

	logger.Info("selector.select.done",
		"agent", s.Name(),
		"candidates", len(candidates),
		"winner_index", idx,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return candidates[idx], nil
}

// selectionPrompt formats the candidate drafts for the picker.
func selectionPrompt(candidates []string) string {
	return "Cold sales emails:\n\n" + strings.Join(candidates, "\n\nEmail:\n\n")
}

// matchCandidate maps the model's answer back to a candidate index, or -1.
func matchCandidate(answer string, candidates []string) int {
	for i, c := range candidates {
		if answer == c {
			return i
		}
	}

	trimmed := strings.TrimSpace(answer)
	for i, c := range candidates {
		if trimmed == strings.TrimSpace(c) {
			return i
		}
	}

	return -1
}
