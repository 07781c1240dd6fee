// Package legacy reads the JSON-file layout of the predecessor vector
// store. It exists only as a migration source; nothing here writes.
package legacy
