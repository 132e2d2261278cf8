package model

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRequest(text string) Request {
	return Request{
		Instructions: "You are a helpful assistant.",
		Messages:     []Message{{Role: "user", Text: text}},
	}
}

func TestScriptedModel_Info(t *testing.T) {
	m := NewScriptedModel("test-model")

	info := m.Info()
	assert.Equal(t, "test-model", info.Name)
	assert.Equal(t, "scripted", info.Provider)
	assert.True(t, info.SupportsTools)
}

func TestScriptedModel_AddResponse(t *testing.T) {
	m := NewScriptedModel("test-model")
	m.AddResponse("hello", "world")

	resp, err := m.Generate(context.Background(), userRequest("hello"))
	require.NoError(t, err)
	assert.Equal(t, "world", resp.Text)
	assert.Equal(t, "stop", resp.FinishReason)
}

func TestScriptedModel_QueueOrder(t *testing.T) {
	m := NewScriptedModel("test-model")
	m.Queue("first", "second")

	// Queued responses win over canned ones and are served FIFO.
	m.AddResponse("anything", "canned")

	resp, err := m.Generate(context.Background(), userRequest("anything"))
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text)

	resp, err = m.Generate(context.Background(), userRequest("anything"))
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Text)

	// Queue drained, canned response takes over.
	resp, err = m.Generate(context.Background(), userRequest("anything"))
	require.NoError(t, err)
	assert.Equal(t, "canned", resp.Text)
}

func TestScriptedModel_QueueError(t *testing.T) {
	sentinel := errors.New("rate limited")

	m := NewScriptedModel("test-model")
	m.QueueError(sentinel)
	m.Queue("after the error")

	_, err := m.Generate(context.Background(), userRequest("prompt"))
	assert.ErrorIs(t, err, sentinel)

	resp, err := m.Generate(context.Background(), userRequest("prompt"))
	require.NoError(t, err)
	assert.Equal(t, "after the error", resp.Text)
}

func TestScriptedModel_DefaultFallback(t *testing.T) {
	m := NewScriptedModel("test-model")

	resp, err := m.Generate(context.Background(), userRequest("unseen prompt"))
	require.NoError(t, err)
	assert.Equal(t, "Scripted response to: unseen prompt", resp.Text)
}

func TestScriptedModel_CallTracking(t *testing.T) {
	m := NewScriptedModel("test-model")

	_, err := m.Generate(context.Background(), userRequest("one"))
	require.NoError(t, err)
	_, err = m.Generate(context.Background(), userRequest("two"))
	require.NoError(t, err)

	assert.Equal(t, 2, m.CallCount())

	calls := m.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "one", calls[0].Messages[0].Text)
	assert.Equal(t, "two", calls[1].Messages[0].Text)
}

func TestScriptedModel_CanceledContext(t *testing.T) {
	m := NewScriptedModel("test-model")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, userRequest("prompt"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, m.CallCount())
}

func TestScriptedModel_ConcurrentGenerate(t *testing.T) {
	m := NewScriptedModel("test-model")
	for i := 0; i < 10; i++ {
		m.AddResponse(fmt.Sprintf("prompt-%d", i), fmt.Sprintf("response-%d", i))
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := m.Generate(context.Background(), userRequest(fmt.Sprintf("prompt-%d", i)))
			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("response-%d", i), resp.Text)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, m.CallCount())
}

func TestLastUserText(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: "user", Text: "first"},
			{Role: "assistant", Text: "reply"},
			{Role: "user", Text: "second"},
		},
	}
	assert.Equal(t, "second", lastUserText(req))

	assert.Equal(t, "", lastUserText(Request{}))
}
