package markov

import (
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Generate performs one weighted random walk from the start state and
// returns the visited tokens, sentinels excluded. The walk ends when
// the end state is drawn; if that does not happen within the step cap,
// it fails with ErrWalkTooLong instead of returning a truncated
// sequence. Each call draws independently; no state carries over
// between calls.
func (c *Chain) Generate() ([]string, error) {
	if !c.trained {
		return nil, ErrNotTrained
	}
	return c.walk(startState, nil)
}

// GenerateFrom behaves like Generate but starts the walk at seed
// instead of the start state. The returned sequence begins with the
// seed token. It fails with ErrUnknownToken if the seed did not appear
// in the training corpus.
func (c *Chain) GenerateFrom(seed string) ([]string, error) {
	if !c.trained {
		return nil, ErrNotTrained
	}
	start := tokenState(seed)
	if _, ok := c.model[start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownToken, seed)
	}
	return c.walk(start, []string{seed})
}

// GenerateSentence generates a token sequence and formats it as a
// pseudo-sentence: tokens joined by single spaces, first rune
// upper-cased, terminal punctuation appended (default ".", see
// WithPunctuation). Errors from the underlying walk are propagated
// unchanged. An empty generated sequence yields an empty string; with
// a non-empty corpus the start state always leads to at least one
// token, so this does not occur in practice.
func (c *Chain) GenerateSentence() (string, error) {
	words, err := c.Generate()
	if err != nil {
		return "", err
	}
	return c.FormatSentence(words), nil
}

// FormatSentence joins a token sequence into a pseudo-sentence using
// the chain's punctuation setting. An empty sequence yields an empty
// string.
func (c *Chain) FormatSentence(words []string) string {
	if len(words) == 0 {
		return ""
	}
	joined := strings.Join(words, " ")
	r, size := utf8.DecodeRuneInString(joined)
	return string(unicode.ToUpper(r)) + joined[size:] + c.punct
}

// Walk returns a single-use iterator over one weighted random walk,
// yielding tokens as they are drawn. This is the streaming counterpart
// of Generate for very long sequences. The iterator stops cleanly when
// the end state is reached; on failure it yields one final ("", err)
// pair carrying ErrNotTrained, ErrDeadEnd, or ErrWalkTooLong.
func (c *Chain) Walk() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if !c.trained {
			yield("", ErrNotTrained)
			return
		}
		current := startState
		for steps := 0; steps < c.maxSteps; steps++ {
			next, err := c.step(current)
			if err != nil {
				yield("", err)
				return
			}
			if next == endState {
				return
			}
			if !yield(next.word, nil) {
				return
			}
			current = next
		}
		yield("", ErrWalkTooLong)
	}
}

// walk runs the generation loop from current, appending drawn tokens
// to out until the end state is reached or the step cap is hit. Any
// tokens already in out (a seed) count against the cap.
func (c *Chain) walk(current state, out []string) ([]string, error) {
	for steps := len(out); steps < c.maxSteps; steps++ {
		next, err := c.step(current)
		if err != nil {
			return nil, err
		}
		if next == endState {
			return out, nil
		}
		out = append(out, next.word)
		current = next
	}
	c.logger.Debug("Walk exceeded step cap",
		slog.Int("max_steps", c.maxSteps),
	)
	return nil, ErrWalkTooLong
}

// step samples a successor of current with probability proportional to
// its observed weight: a cumulative sum over the successor table and a
// single uniform draw. Equal weights yield equal probability; there is
// no secondary ordering.
func (c *Chain) step(current state) (state, error) {
	succ := c.model[current]
	if len(succ) == 0 {
		return state{}, fmt.Errorf("%w: %q", ErrDeadEnd, current.word)
	}

	total := 0
	for _, weight := range succ {
		total += weight
	}

	draw := rand.IntN(total)
	for next, weight := range succ {
		draw -= weight
		if draw < 0 {
			return next, nil
		}
	}

	// Unreachable: the draw is strictly less than the summed weights.
	return state{}, fmt.Errorf("%w: %q", ErrDeadEnd, current.word)
}
