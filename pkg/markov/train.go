package markov

import "log/slog"

// Train builds the transition model from one corpus of ordered,
// pre-normalized tokens. The corpus is bracketed with the start and
// end sentinels, and each adjacent pair in the augmented sequence
// increments the corresponding successor weight. A single linear pass,
// deterministic for a given input.
//
// Train may be called at most once per Chain; a second call fails with
// ErrAlreadyTrained, and an empty corpus fails with ErrEmptyCorpus.
// It must not run concurrently with itself or with generation.
func (c *Chain) Train(tokens []string) error {
	if c.trained {
		return ErrAlreadyTrained
	}
	if len(tokens) == 0 {
		return ErrEmptyCorpus
	}

	seen := make(map[string]struct{}, len(tokens))

	prev := startState
	for _, tok := range tokens {
		if _, ok := seen[tok]; !ok {
			seen[tok] = struct{}{}
			c.words = append(c.words, tok)
		}
		cur := tokenState(tok)
		c.addTransition(prev, cur)
		prev = cur
	}
	c.addTransition(prev, endState)

	// Only flip the flag once the model is fully built, so concurrent
	// readers can never observe a partial model.
	c.trained = true

	c.logger.Info("Training completed",
		slog.Int("corpus_tokens", len(tokens)),
		slog.Int("known_states", len(c.words)),
	)
	return nil
}

func (c *Chain) addTransition(from, to state) {
	succ := c.model[from]
	if succ == nil {
		succ = make(map[state]int)
		c.model[from] = succ
	}
	succ[to]++
}
