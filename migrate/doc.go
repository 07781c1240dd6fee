// Package migrate moves chunks from a predecessor store into the
// current engine, re-embedding them under the configured provider.
// Failures are per-chunk: malformed records are skipped and counted,
// and the run reports the number of chunks actually migrated.
package migrate
