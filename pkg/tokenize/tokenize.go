// Package tokenize prepares raw text for chain training. It splits a
// stream into whitespace-delimited words, lower-cases them, and strips
// surrounding punctuation, producing the normalized token sequence the
// markov package expects. The chain core never sees raw text.
package tokenize

import (
	"bufio"
	"io"
	"strings"
)

// defaultTrimSet is the punctuation stripped from both ends of a word.
const defaultTrimSet = "!@#$%^&*()_+-={}[]\\|;':\",.<>/?"

// Tokenizer normalizes whitespace-delimited words from a text stream.
// Its behavior can be customized with functional options.
type Tokenizer struct {
	trimSet  string
	keepCase bool
}

// Option Is a function that configures a Tokenizer.
type Option func(*Tokenizer)

// WithTrimSet Sets the characters stripped from the ends of each word.
// Default: common ASCII punctuation.
func WithTrimSet(set string) Option {
	return func(t *Tokenizer) {
		t.trimSet = set
	}
}

// WithKeepCase disables lower-casing of tokens.
func WithKeepCase() Option {
	return func(t *Tokenizer) {
		t.keepCase = true
	}
}

// New creates a tokenizer with default settings, which can be
// overridden by providing one or more Option functions.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		trimSet: defaultTrimSet,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewStream Returns the stream processor for r.
func (t *Tokenizer) NewStream(r io.Reader) *Stream {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Stream{
		scanner:   scanner,
		tokenizer: t,
	}
}

// Split reads r to the end and returns every normalized token in order.
func (t *Tokenizer) Split(r io.Reader) ([]string, error) {
	var tokens []string
	stream := t.NewStream(r)
	for {
		tok, err := stream.Next()
		if err != nil {
			if err == io.EOF {
				return tokens, nil
			}
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// normalize cleans a single raw word. Words that are nothing but
// punctuation normalize to the empty string and are dropped by Next.
func (t *Tokenizer) normalize(word string) string {
	cleaned := strings.Trim(word, t.trimSet)
	if !t.keepCase {
		cleaned = strings.ToLower(cleaned)
	}
	return cleaned
}

// Stream is a stateful tokenizer over a single reader, returning one
// token at a time.
type Stream struct {
	scanner   *bufio.Scanner
	tokenizer *Tokenizer
}

// Next returns the next normalized token from the stream. It returns
// io.EOF as the error when the stream is fully consumed. Any other
// error indicates a problem reading from the underlying stream.
func (s *Stream) Next() (string, error) {
	for s.scanner.Scan() {
		if tok := s.tokenizer.normalize(s.scanner.Text()); tok != "" {
			return tok, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
