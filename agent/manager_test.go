package agent

import (
	"testing"

	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/mail"
	"github.com/hupe1980/salesmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrompt = "Write a cold sales email to a tech startup CEO about SOC2 compliance"

// buildPipeline assembles a manager whose generators, selector and emailer
// each run on their own scripted model for deterministic phase behavior.
func buildPipeline(t *testing.T, drafts []string, pickerAnswer string, sender mail.Sender) *Manager {
	t.Helper()

	generators := make([]core.Agent, 0, len(drafts))
	for i, draft := range drafts {
		llm := model.NewScriptedModel("writer")
		llm.AddResponse(testPrompt, draft)
		generators = append(generators, NewGenerator(personaName(i), llm, "You write cold emails."))
	}

	pickerLLM := model.NewScriptedModel("picker")
	pickerLLM.AddResponse(selectionPrompt(drafts), pickerAnswer)

	formatterLLM := model.NewScriptedModel("formatter")
	formatterLLM.Queue("Quick question about SOC2", "<p>formatted body</p>")

	fanout := NewFanOut("DraftFanOut", generators...)
	selector := NewSelector(pickerLLM)
	emailer := NewEmailer(formatterLLM, sender, "alice@complai.example", "ceo@startup.example")

	return NewManager(fanout, selector, emailer)
}

func personaName(i int) string {
	return []string{"Professional", "Engaging", "Concise"}[i%3]
}

func TestManager_Run_EndToEndSuccess(t *testing.T) {
	drafts := []string{
		"Dear CEO, a professional draft about SOC2.",
		"Hey! A witty draft about SOC2.",
		"SOC2, sorted. Short draft.",
	}

	sender := newRecordingSender()
	m := buildPipeline(t, drafts, drafts[2], sender)

	report, err := m.Run(makeRunCtx(t), testPrompt)
	require.NoError(t, err)

	// All drafts collected, order preserved, none empty.
	require.Len(t, report.Drafts, 3)
	assert.Equal(t, drafts, report.Drafts)
	for _, d := range report.Drafts {
		assert.NotEmpty(t, d)
	}

	// Winner is one of the drafts, verbatim.
	assert.Equal(t, drafts[2], report.Winner)

	// Exactly one outbound send attempt, accepted.
	assert.True(t, report.Delivered)
	assert.True(t, report.Send.Success())
	require.Equal(t, 1, sender.attempts())
	assert.Equal(t, "Quick question about SOC2", sender.messages[0].Subject)
	assert.NotEmpty(t, sender.messages[0].Body)
}

func TestManager_Run_SendRejectionIsFinalStatus(t *testing.T) {
	drafts := []string{"draft one", "draft two", "draft three"}

	sender := newRecordingSender()
	sender.result = mail.SendResult{Status: mail.StatusError, StatusCode: 500, Message: "internal error"}

	m := buildPipeline(t, drafts, drafts[0], sender)

	report, err := m.Run(makeRunCtx(t), testPrompt)
	require.NoError(t, err)

	// The run completes; the rejection is the reported final status and
	// exactly one attempt was made (no automatic retry).
	assert.True(t, report.Delivered)
	assert.False(t, report.Send.Success())
	assert.Equal(t, 500, report.Send.StatusCode)
	assert.Equal(t, 1, sender.attempts())
}

func TestManager_Run_SelectionFailureSendsNothing(t *testing.T) {
	drafts := []string{"draft one", "draft two", "draft three"}

	sender := newRecordingSender()
	m := buildPipeline(t, drafts, "a rewritten blend", sender)

	_, err := m.Run(makeRunCtx(t), testPrompt)
	assert.Error(t, err)

	var selErr *core.SelectionError
	assert.ErrorAs(t, err, &selErr)

	// Zero send attempts when selection fails first.
	assert.Equal(t, 0, sender.attempts())
}

func TestManager_Run_GenerationFailureAbortsRun(t *testing.T) {
	failing := model.NewScriptedModel("writer")
	failing.QueueError(assert.AnError)

	okModel := model.NewScriptedModel("writer")
	okModel.AddResponse(testPrompt, "a fine draft")

	fanout := NewFanOut("DraftFanOut",
		NewGenerator("Professional", okModel, "instructions"),
		NewGenerator("Engaging", failing, "instructions"),
	)

	sender := newRecordingSender()
	m := NewManager(fanout, NewSelector(model.NewScriptedModel("picker")), NewEmailer(model.NewScriptedModel("formatter"), sender, "from@example.com", "to@example.com"))

	_, err := m.Run(makeRunCtx(t), testPrompt)
	assert.Error(t, err)

	var genErr *core.GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, "Engaging", genErr.Agent)

	assert.Equal(t, 0, sender.attempts())
}

func TestManager_Draft_DoesNotSend(t *testing.T) {
	drafts := []string{"draft one", "draft two", "draft three"}

	sender := newRecordingSender()
	m := buildPipeline(t, drafts, drafts[1], sender)

	report, err := m.Draft(makeRunCtx(t), testPrompt)
	require.NoError(t, err)

	assert.Equal(t, drafts[1], report.Winner)
	assert.False(t, report.Delivered)
	assert.Equal(t, 0, sender.attempts())
}
