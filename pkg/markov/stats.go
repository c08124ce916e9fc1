package markov

// Stats holds aggregated statistics for a single chain.
type Stats struct {
	States         int // The number of distinct corpus tokens in the model.
	Transitions    int // The number of unique from->to links, sentinels included.
	TotalWeight    int // The sum of all link weights; the total number of trained adjacencies.
	StartingTokens int // The number of unique tokens that can begin a walk.
}

// Stats returns a snapshot of statistics for the chain. On an
// untrained chain all counts are zero.
func (c *Chain) Stats() Stats {
	s := Stats{
		States:         len(c.words),
		StartingTokens: len(c.model[startState]),
	}
	for _, succ := range c.model {
		s.Transitions += len(succ)
		for _, weight := range succ {
			s.TotalWeight += weight
		}
	}
	return s
}
