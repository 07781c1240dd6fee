// Package local provides an on-device embedding provider backed by
// fastembed ONNX models. No network access is needed after the model
// files are cached.
package local
