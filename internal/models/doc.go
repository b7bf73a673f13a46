// Package models lists the models available on the configured Ollama
// instance, so users can discover what to put into ollama.model.
package models
