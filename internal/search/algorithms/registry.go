package algorithms

import (
	"github.com/sudoku-sandbox/go-sudoku-sandbox/internal/search/engine"
)

// DefaultRegistry builds the registry of all available search algorithms.
// The set is closed and registered explicitly - there is no discovery
// mechanism.
func DefaultRegistry() *engine.Registry {
	registry := engine.NewRegistry()
	registry.Register("Basic-UCS", NewBasicUCS)
	registry.Register("Advanced-UCS", NewAdvancedUCS)
	registry.Register("Naive-DFS", NewNaiveDFS)
	registry.Register("Smart-DFS", NewSmartDFS)
	registry.Register("Naive-BFS", NewNaiveBFS)
	registry.Register("Smart-BFS", NewSmartBFS)
	registry.Register("SAT", NewSAT)
	return registry
}
