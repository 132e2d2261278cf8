package core

// Agent defines the uniform capability contract implemented by every agent in
// SalesMesh: drafting personas, the selector, the formatting helpers and the
// orchestrating manager all expose the same invoke shape.
//
// Agents receive their input as plain text through Invoke and return plain
// text. They are immutable after construction within one run: an agent holds
// its identity, instructions and capability set, never per-run state. All
// per-run data travels through the RunContext.
//
// Implementations must:
//   - Respect context cancellation on the RunContext
//   - Propagate failures as typed errors from this package
//   - Be safe for concurrent invocation from fan-out branches
type Agent interface {
	Name() string
	Description() string
	Invoke(runCtx *RunContext, input string) (string, error)
}

// AgentInfo carries identifying details about an agent used in contexts & logs.
// Name is the external identifier; Type categorizes implementation
// (e.g. "orchestrator", "generator", "selector").
type AgentInfo struct{ Name, Type string }
