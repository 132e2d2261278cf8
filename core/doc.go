// Package core provides the foundational domain types and execution contexts
// used by SalesMesh. It defines the core abstractions for:
//
//   - Agents (units of orchestrated text-producing work)
//   - RunContext / ToolContext (scoped execution & tool sandboxing)
//   - The error taxonomy shared by the orchestration pipeline
//
// The package intentionally keeps implementation concerns (providers, concrete
// agents, the outbound mail boundary) out of scope, exposing small interfaces
// to enable custom backends and extensions.
package core
