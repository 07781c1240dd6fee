// Package embed defines the embedding provider abstraction used by the
// retrieval engine, along with shared configuration.
//
// Concrete providers live in subpackages: openai (remote,
// OpenAI-compatible APIs via langchaingo), local (on-device ONNX models
// via fastembed), and mock (deterministic vectors for tests).
//
// All providers expose a fixed Dimension for the lifetime of the
// process; mixing vectors of different dimensions in one index is a
// hard error at the engine level.
package embed
