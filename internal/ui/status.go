package ui

import "lca/internal/core"

type statusProvider interface {
	Status() []string
}

// statusLines returns the HUD lines for sim, or a placeholder when it does
// not report any.
func statusLines(sim core.Sim) []string {
	provider, ok := sim.(statusProvider)
	if !ok {
		return []string{"No status available"}
	}
	return provider.Status()
}
