/*
Package markov builds first-order Markov chains over token sequences
and generates new sequences from them.

A Chain is trained exactly once against a full corpus of pre-normalized
tokens. Training records how often each token was followed by each
other token, bracketed by synthetic start and end states. Generation
then performs a weighted random walk from the start state until the end
state is reached, producing either a raw token slice or a punctuated
pseudo-sentence.

The package owns no I/O; tokenization and corpus handling live with the
caller (see pkg/tokenize and pkg/corpus).
*/
package markov
