package markov

// marker distinguishes the synthetic chain-boundary states from real
// corpus tokens.
type marker uint8

const (
	markNone marker = iota
	markStart
	markEnd
)

// state is a single node in the transition model. Real tokens carry
// markNone; the start and end sentinels carry a nonzero marker, so a
// corpus word can never compare equal to a sentinel regardless of its
// text.
type state struct {
	word string
	mark marker
}

var (
	startState = state{mark: markStart}
	endState   = state{mark: markEnd}
)

func tokenState(word string) state {
	return state{word: word}
}
