// Package openai provides a remote embedding provider for
// OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM) built on
// langchaingo.
package openai
