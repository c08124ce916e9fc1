package markov

import "errors"

var (
	// ErrEmptyCorpus is returned by Train when given a zero-length
	// token sequence.
	ErrEmptyCorpus = errors.New("markov: training corpus is empty")

	// ErrAlreadyTrained is returned by Train when a chain is trained a
	// second time. Training is single-shot so that two unrelated
	// corpora can never be silently merged into one model.
	ErrAlreadyTrained = errors.New("markov: chain is already trained")

	// ErrNotTrained is returned by the generation methods when the
	// chain has not been trained yet.
	ErrNotTrained = errors.New("markov: chain has not been trained")

	// ErrDeadEnd indicates an internal-consistency failure: a walk
	// reached a non-terminal state with no recorded successors. Train
	// guarantees every non-end state has at least one, so this should
	// never surface from a correctly built model.
	ErrDeadEnd = errors.New("markov: walk reached a state with no recorded successors")

	// ErrWalkTooLong is returned when a walk does not reach the end
	// state within the configured step cap. Retrying is valid; a fresh
	// walk draws fresh random choices.
	ErrWalkTooLong = errors.New("markov: walk exceeded the maximum step count")

	// ErrUnknownToken is returned by GenerateFrom when the seed token
	// does not appear in the trained model.
	ErrUnknownToken = errors.New("markov: token not present in the trained model")
)
