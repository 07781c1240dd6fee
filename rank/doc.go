// Package rank turns raw vector distances into hybrid relevance
// scores. The base score comes from the query-to-chunk distance;
// bonuses reward technical density, list structure, and section
// vocabulary. Ordering is fully deterministic, with chunk-ID
// tie-breaking.
package rank
