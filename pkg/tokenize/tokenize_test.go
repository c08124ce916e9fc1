package tokenize

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		opts  []Option
		want  []string
	}{
		{
			name:  "strips punctuation and lower-cases",
			input: "Hello, world!",
			want:  []string{"hello", "world"},
		},
		{
			name:  "multi-line input keeps order",
			input: "To be or not to be,\nthat is the question.",
			want:  []string{"to", "be", "or", "not", "to", "be", "that", "is", "the", "question"},
		},
		{
			name:  "drops punctuation-only words",
			input: "kitty -- kitty ... kitty",
			want:  []string{"kitty", "kitty", "kitty"},
		},
		{
			name:  "interior punctuation survives",
			input: "don't stop, big-time believers!",
			want:  []string{"don't", "stop", "big-time", "believers"},
		},
		{
			name:  "keep case option",
			input: "Hello Kitty!",
			opts:  []Option{WithKeepCase()},
			want:  []string{"Hello", "Kitty"},
		},
		{
			name:  "custom trim set",
			input: "~hello~ world.",
			opts:  []Option{WithTrimSet("~")},
			want:  []string{"hello", "world."},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.opts...).Split(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("Split() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Split(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestStreamNext(t *testing.T) {
	stream := New().NewStream(strings.NewReader("Say hello."))

	for _, want := range []string{"say", "hello"} {
		tok, err := stream.Next()
		if err != nil {
			t.Fatalf("Next() failed: %v", err)
		}
		if tok != want {
			t.Errorf("Next() = %q, want %q", tok, want)
		}
	}

	if _, err := stream.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() at end of stream = %v, want io.EOF", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestStreamReadError(t *testing.T) {
	stream := New().NewStream(failingReader{})
	if _, err := stream.Next(); err == nil || errors.Is(err, io.EOF) {
		t.Errorf("Next() on failing reader = %v, want a read error", err)
	}
}
