package agent

import (
	"fmt"
	"time"

	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/model"
)

// Generator is a persona-bound language-generation agent implementing the
// generate(prompt) -> text contract. Instances differ only in their bound
// instruction string; they share no mutable state and are safe for concurrent
// invocation from fan-out branches.
//
// Provider failures are wrapped as *core.GenerationError and propagated; the
// generator performs no retry. Retry policy belongs to whatever wraps a full
// run.
type Generator struct {
	BaseAgent
	llm         model.Model
	instruction string
}

// GeneratorOptions configures a Generator instance.
type GeneratorOptions struct {
	// Description overrides the generated agent description.
	Description string
}

// NewGenerator creates a persona-bound generator agent.
//
// Parameters:
//   - name: Human-readable agent name
//   - llm: Language model implementation for text generation
//   - instruction: Persona / behavior instructions bound to this instance
func NewGenerator(name string, llm model.Model, instruction string, optFns ...func(o *GeneratorOptions)) *Generator {
	opts := GeneratorOptions{}

	for _, fn := range optFns {
		fn(&opts)
	}

	g := &Generator{
		BaseAgent:   NewBaseAgent(name),
		llm:         llm,
		instruction: instruction,
	}

	if opts.Description != "" {
		g.SetDescription(opts.Description)
	}

	return g
}

// Instruction returns the persona instruction bound to this generator.
func (g *Generator) Instruction() string { return g.instruction }

// Invoke implements core.Agent. It sends the prompt to the underlying model
// under this generator's instructions and returns the produced text.
func (g *Generator) Invoke(runCtx *core.RunContext, input string) (string, error) {
	logger := runCtx.Logger()
	start := time.Now()

	logger.Debug("generator.invoke.start", "agent", g.Name(), "branch", runCtx.Branch)

	resp, err := g.llm.Generate(runCtx, model.Request{
		Instructions: g.instruction,
		Messages:     []model.Message{{Role: "user", Text: input}},
	})
	if err != nil {
		logger.Error("generator.invoke.error", "agent", g.Name(), "error", err.Error())
		return "", core.NewGenerationError(g.Name(), err)
	}

	if resp.Text == "" {
		logger.Error("generator.invoke.error", "agent", g.Name(), "error", "empty completion")
		return "", core.NewGenerationError(g.Name(), fmt.Errorf("model %s returned an empty completion", g.llm.Info().Name))
	}

	logger.Info("generator.invoke.done",
		"agent", g.Name(),
		"model", g.llm.Info().Name,
		"duration_ms", time.Since(start).Milliseconds(),
		"output_len", len(resp.Text),
	)

	return resp.Text, nil
}
