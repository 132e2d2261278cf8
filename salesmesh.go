// Package salesmesh provides a high-level façade over the outreach workflow:
// persona-bound draft generators fanned out in parallel, a selector that
// reduces the drafts to a single winner, and a formatter/sender chain that
// subjects, converts and sends the winning email. Most applications interact
// with this package by:
//  1. Creating a provider model (model/openai or model/anthropic)
//  2. Creating a mail.Sender (mail.NewSimulatedSender or mail/sendgrid.New)
//  3. Calling New() and running the returned runner
//
// The façade wires agent construction in one place while keeping every
// component usable on its own. All defaults are safe for local development:
// logging is silent unless a logger is supplied, and nothing is sent unless a
// real sender is injected.
package salesmesh

import (
	"github.com/hupe1980/salesmesh/agent"
	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/logging"
	"github.com/hupe1980/salesmesh/mail"
	"github.com/hupe1980/salesmesh/model"
	"github.com/hupe1980/salesmesh/runner"
)

const professionalInstruction = `You are a sales agent working for ComplAI,
a company that provides a SaaS tool for ensuring SOC2 compliance and preparing for audits, powered by AI.
You write professional, serious cold emails.`

const engagingInstruction = `You are a humorous, engaging sales agent working for ComplAI,
a company that provides a SaaS tool for ensuring SOC2 compliance and preparing for audits, powered by AI.
You write witty, engaging cold emails that are likely to get a response.`

const conciseInstruction = `You are a busy sales agent working for ComplAI,
a company that provides a SaaS tool for ensuring SOC2 compliance and preparing for audits, powered by AI.
You write concise, to the point cold emails.`

// Persona binds a generator name to its writing instructions.
type Persona struct {
	Name        string
	Instruction string
}

// DefaultPersonas returns the three stock outreach personas.
func DefaultPersonas() []Persona {
	return []Persona{
		{Name: "ProfessionalSalesAgent", Instruction: professionalInstruction},
		{Name: "EngagingSalesAgent", Instruction: engagingInstruction},
		{Name: "ConciseSalesAgent", Instruction: conciseInstruction},
	}
}

// Options configures the workflow construction.
type Options struct {
	// Personas override the default three generator personas.
	Personas []Persona
	// FromEmail / ToEmail are stamped on the outbound message.
	FromEmail string
	ToEmail   string
	// Logger receives structured events from all components. Defaults to NoOp.
	Logger logging.Logger
}

// New wires the full outreach workflow and returns its runner.
//
// The same model drives the generators, the selector and the formatting
// agents; callers needing per-role models can assemble the components from
// the agent package directly.
func New(llm model.Model, sender mail.Sender, optFns ...func(o *Options)) *runner.Runner {
	opts := Options{
		Personas: DefaultPersonas(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	writers := make([]core.Agent, 0, len(opts.Personas))
	for _, p := range opts.Personas {
		writers = append(writers, agent.NewGenerator(p.Name, llm, p.Instruction))
	}

	fanout := agent.NewFanOut("DraftFanOut", writers...)
	selector := agent.NewSelector(llm)
	emailer := agent.NewEmailer(llm, sender, opts.FromEmail, opts.ToEmail)
	manager := agent.NewManager(fanout, selector, emailer)

	return runner.New(manager, func(o *runner.Options) {
		o.Logger = opts.Logger
	})
}
