package core

import "fmt"

// ConfigurationError reports a missing or invalid startup configuration value.
// It is fatal and raised before any run starts; the orchestration core never
// sees a partially configured system.
type ConfigurationError struct {
	Key     string `json:"key"`     // Configuration key that failed
	Message string `json:"message"` // Human-readable error message
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Key, e.Message)
}

// NewConfigurationError creates a ConfigurationError for the given key.
func NewConfigurationError(key, message string) *ConfigurationError {
	return &ConfigurationError{Key: key, Message: message}
}

// GenerationError reports a failed generation or formatting step. It is
// propagated up through the fan-out or chain and aborts the workflow run;
// the core performs no retry.
type GenerationError struct {
	Agent string `json:"agent"` // Name of the agent that failed
	Err   error  `json:"-"`     // Underlying provider or step error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for agent %s: %v", e.Agent, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError wraps err as a GenerationError attributed to agent.
func NewGenerationError(agent string, err error) *GenerationError {
	return &GenerationError{Agent: agent, Err: err}
}

// SelectionError reports a precondition violation during candidate selection:
// zero candidates, or a selection that does not match any candidate.
type SelectionError struct {
	Message    string `json:"message"`    // Human-readable error message
	Candidates int    `json:"candidates"` // Number of candidates presented
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection error (%d candidates): %s", e.Candidates, e.Message)
}

// NewSelectionError creates a SelectionError for a candidate set of the given size.
func NewSelectionError(candidates int, message string) *SelectionError {
	return &SelectionError{Message: message, Candidates: candidates}
}

// SendError reports a transport-level failure talking to the outbound mail
// provider. Provider-side rejections (non-accepted status codes) are not
// errors; they surface as an error-status SendResult instead.
type SendError struct {
	Provider string `json:"provider"` // Provider identifier ("sendgrid", "simulated")
	Err      error  `json:"-"`        // Underlying transport error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send failed via %s: %v", e.Provider, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *SendError) Unwrap() error { return e.Err }

// NewSendError wraps err as a SendError attributed to provider.
func NewSendError(provider string, err error) *SendError {
	return &SendError{Provider: provider, Err: err}
}
