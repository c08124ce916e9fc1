package markov

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
)

const (
	// DefaultMaxSteps is the default cap on the number of tokens a
	// single walk may draw before failing with ErrWalkTooLong. The
	// chain can contain cycles, so walks have no natural upper bound.
	DefaultMaxSteps = 500

	// DefaultPunctuation is the terminal punctuation GenerateSentence
	// appends by default.
	DefaultPunctuation = "."
)

// Chain is a first-order Markov chain. It is created empty, trained
// exactly once with Train, and read-only afterwards: any number of
// concurrent generation calls against a trained chain are safe.
type Chain struct {
	// model maps each state (including the start sentinel) to its
	// successor table: successor state -> observed adjacency count.
	// The end sentinel never appears as a key.
	model map[state]map[state]int

	// words holds the distinct corpus tokens in first-seen order.
	words []string

	trained  bool
	maxSteps int
	punct    string
	logger   *slog.Logger
}

// Option configures a Chain at construction time.
type Option func(*Chain)

// WithMaxSteps sets the maximum number of tokens a single walk may
// draw before Generate fails with ErrWalkTooLong. Values below 1 are
// ignored.
func WithMaxSteps(n int) Option {
	return func(c *Chain) {
		if n > 0 {
			c.maxSteps = n
		}
	}
}

// WithPunctuation sets the terminal punctuation mark appended by
// GenerateSentence. Default: ".".
func WithPunctuation(p string) Option {
	return func(c *Chain) { c.punct = p }
}

// New creates an empty, untrained Chain. Behavior can be customized
// with Option functions.
func New(opts ...Option) *Chain {
	c := &Chain{
		model:    make(map[state]map[state]int),
		maxSteps: DefaultMaxSteps,
		punct:    DefaultPunctuation,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLogger sets the logger for the Chain. By default, all logs are
// discarded.
func (c *Chain) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Len returns the number of distinct corpus tokens known to the chain.
// Sentinel states are not counted.
func (c *Chain) Len() int {
	return len(c.words)
}

// Contains reports whether tok appeared in the training corpus.
func (c *Chain) Contains(tok string) bool {
	_, ok := c.model[tokenState(tok)]
	return ok
}

func (c *Chain) String() string {
	return fmt.Sprintf("%d known states", c.Len())
}

// RandomToken returns a uniformly random token from the trained
// vocabulary. It fails with ErrNotTrained on an untrained chain.
func (c *Chain) RandomToken() (string, error) {
	if !c.trained {
		return "", ErrNotTrained
	}
	return c.words[rand.IntN(len(c.words))], nil
}
