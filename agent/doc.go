// Package agent provides the concrete agents of the outreach workflow: the
// persona-bound Generator, the order-preserving FanOut coordinator, the
// Selector that reduces candidate drafts to a single winner, the Emailer
// formatter/sender chain and the Manager orchestrating all three phases.
package agent
