package completion

import "context"

// ReadlineCompleter adapts a Completer to readline's AutoCompleter
// interface: Do returns candidate tails (the text after what the user
// already typed) plus the rune length of that typed partial.
type ReadlineCompleter struct {
	completer *Completer
}

// NewReadlineCompleter wraps c for use as a readline AutoCompleter.
func NewReadlineCompleter(c *Completer) *ReadlineCompleter {
	return &ReadlineCompleter{completer: c}
}

// Do implements readline.AutoCompleter.
func (r *ReadlineCompleter) Do(line []rune, pos int) ([][]rune, int) {
	replaceFrom, candidates := r.completer.Complete(context.Background(), string(line), pos)
	if len(candidates) == 0 {
		return nil, 0
	}

	partialLen := pos - replaceFrom
	if partialLen < 0 {
		partialLen = 0
	}

	var tails [][]rune
	for _, cand := range candidates {
		repl := []rune(cand.Replacement)
		if len(repl) <= partialLen {
			continue
		}
		tails = append(tails, repl[partialLen:])
	}
	return tails, partialLen
}
