package agent

import "fmt"

// BaseAgent bundles the identity helpers shared by all concrete agents. Embed
// it and supply an Invoke method to satisfy the core.Agent interface. Agents
// are immutable after construction within one run, so no state protection is
// needed here.
type BaseAgent struct {
	name        string // Human-readable name
	description string // Detailed description of agent's purpose
}

// NewBaseAgent constructs a BaseAgent with a generated description
// (customizable via SetDescription).
func NewBaseAgent(name string) BaseAgent {
	return BaseAgent{
		name:        name,
		description: fmt.Sprintf("Agent %s", name),
	}
}

// Name returns the human-readable name for this agent.
func (b *BaseAgent) Name() string { return b.name }

// Description returns a detailed description of this agent's purpose.
func (b *BaseAgent) Description() string { return b.description }

// SetDescription updates the agent's description. Call during construction
// only; agents are immutable once a run starts.
func (b *BaseAgent) SetDescription(desc string) { b.description = desc }
