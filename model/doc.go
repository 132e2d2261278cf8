// Package model defines the normalized request/response contract between
// agents and language-model providers, plus a scriptable in-memory
// implementation for tests. Concrete provider adapters live in the openai and
// anthropic subpackages.
package model
