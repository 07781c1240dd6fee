package engine

import "github.com/provex/ragstore/core"

// QueryMonitor provides hooks to observe the query pipeline.
// Implement this interface to track intermediate steps during retrieval.
type QueryMonitor interface {
	Start(query string)
	AfterEnrichment(enrichedQuery string)
	AfterVectorSearch(candidates int)
	AfterFiltering(kept int)
	Finish(result *core.RAGResult)
}

// noopMonitor is a no-op implementation of QueryMonitor
type noopMonitor struct{}

var _ QueryMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)           {}
func (n *noopMonitor) AfterEnrichment(_ string) {}
func (n *noopMonitor) AfterVectorSearch(_ int)  {}
func (n *noopMonitor) AfterFiltering(_ int)     {}
func (n *noopMonitor) Finish(_ *core.RAGResult) {}
