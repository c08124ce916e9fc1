package markov

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// newTrainedChain builds and trains a chain over the given tokens,
// failing the test on any error.
func newTrainedChain(t *testing.T, tokens []string, opts ...Option) *Chain {
	t.Helper()
	c := New(opts...)
	if err := c.Train(tokens); err != nil {
		t.Fatalf("Train() failed: %v", err)
	}
	return c
}

// smallCorpus is the canonical four-token corpus used across tests:
// the model it produces is small enough to verify by hand.
func smallCorpus() []string {
	return []string{"hello", "world", "hello", "kitty"}
}

var (
	benchmarkCorpus []string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() []string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				sb.Reset()
				sb.WriteString("this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. ")
				break
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = strings.Fields(strings.ToLower(sb.String()))
	})
	return benchmarkCorpus
}
