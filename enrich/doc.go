// Package enrich implements the deterministic text transformations
// applied around embedding: technical-content categorization and
// prefixing for stored chunks, and section-aware query expansion.
//
// All transformations are pure functions of their inputs. No network
// or model calls happen here; enrichment only rewrites text before it
// reaches an embedding provider.
package enrich
