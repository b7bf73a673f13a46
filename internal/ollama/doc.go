// Package ollama is the model client. It issues single request/response
// exchanges against the chat endpoint of a locally hosted Ollama instance
// through its OpenAI-compatible API, classifies failures into a small
// taxonomy and retries timeouts with exponential backoff. A circuit breaker
// makes a dead endpoint fail fast instead of burning the full timeout on
// every call.
package ollama
