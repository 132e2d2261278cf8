package agent

import (
	"errors"
	"testing"

	"github.com/hupe1980/salesmesh/core"
	"github.com/hupe1980/salesmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Select_ReturnsMemberVerbatim(t *testing.T) {
	candidates := []string{"Dear CEO, draft one.", "Hi there, draft two!", "Hello, draft three."}

	llm := model.NewScriptedModel("picker")
	llm.AddResponse(selectionPrompt(candidates), candidates[1])

	s := NewSelector(llm)

	winner, err := s.Select(makeRunCtx(t), candidates)
	require.NoError(t, err)
	assert.Equal(t, candidates[1], winner)
}

func TestSelector_Select_TrimmedMatchReturnsOriginal(t *testing.T) {
	candidates := []string{"draft one", "draft two"}

	// Models often pad the answer with whitespace; the original candidate
	// must still come back bit-identical.
	llm := model.NewScriptedModel("picker")
	llm.AddResponse(selectionPrompt(candidates), "\ndraft two\n")

	s := NewSelector(llm)

	winner, err := s.Select(makeRunCtx(t), candidates)
	require.NoError(t, err)
	assert.Equal(t, "draft two", winner)
}

func TestSelector_Select_SingletonShortCircuits(t *testing.T) {
	llm := model.NewScriptedModel("picker")

	s := NewSelector(llm)

	winner, err := s.Select(makeRunCtx(t), []string{"only draft"})
	require.NoError(t, err)
	assert.Equal(t, "only draft", winner)
	assert.Equal(t, 0, llm.CallCount())
}

func TestSelector_Select_EmptyCandidates(t *testing.T) {
	s := NewSelector(model.NewScriptedModel("picker"))

	_, err := s.Select(makeRunCtx(t), nil)
	assert.Error(t, err)

	var selErr *core.SelectionError
	assert.ErrorAs(t, err, &selErr)
	assert.Equal(t, 0, selErr.Candidates)
}

func TestSelector_Select_NonMemberAnswer(t *testing.T) {
	candidates := []string{"draft one", "draft two"}

	llm := model.NewScriptedModel("picker")
	llm.AddResponse(selectionPrompt(candidates), "a rewritten blend of both drafts")

	s := NewSelector(llm)

	_, err := s.Select(makeRunCtx(t), candidates)
	assert.Error(t, err)

	var selErr *core.SelectionError
	assert.ErrorAs(t, err, &selErr)
	assert.Equal(t, 2, selErr.Candidates)
}

func TestSelector_Select_ModelError(t *testing.T) {
	sentinel := errors.New("rate limited")

	llm := model.NewScriptedModel("picker")
	llm.QueueError(sentinel)

	s := NewSelector(llm)

	_, err := s.Select(makeRunCtx(t), []string{"draft one", "draft two"})
	assert.Error(t, err)

	var genErr *core.GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, sentinel)
}
