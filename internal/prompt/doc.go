// Package prompt assembles the system and user prompts for translation,
// language detection and summary generation. All builders are pure
// functions; the orchestrator decides which prompts to send and when.
package prompt
