// Package completion produces tab-completion candidates for the interactive
// shell. Candidates come from a fixed grammar keyed on (command, subcommand,
// argument position); entity-name positions are filled by querying the engine
// on every request, so suggestions always reflect current engine state at the
// cost of one subprocess call per keypress.
package completion

import (
	"context"
	"strings"
	"unicode"

	"github.com/schmitthub/dockhand/internal/engine"
	"github.com/schmitthub/dockhand/internal/logger"
)

// Candidate is a single completion suggestion.
type Candidate struct {
	Display     string
	Replacement string
}

// EntitySource lists live engine entities for name completion. *engine.Client
// satisfies it.
type EntitySource interface {
	ListContainers(ctx context.Context, filters ...string) ([]engine.Container, error)
	ListImages(ctx context.Context, filters ...string) ([]engine.Image, error)
}

// Completer produces completion candidates from partial input lines.
type Completer struct {
	source EntitySource
}

// NewCompleter returns a Completer that fetches entity names from source.
// A nil source disables live name completion but keeps the static grammar.
func NewCompleter(source EntitySource) *Completer {
	return &Completer{source: source}
}

// Complete returns the rune offset of the token being completed and its
// candidates, in vocabulary order. Only the part of line before cursor (a
// rune index) is inspected; a token is complete once whitespace follows it,
// so the trailing unfinished token acts as the prefix filter. A failed live
// entity fetch yields an empty candidate set, never an error.
func (c *Completer) Complete(ctx context.Context, line string, cursor int) (int, []Candidate) {
	runes := []rune(line)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	before := runes[:cursor]

	fields := strings.Fields(string(before))
	endsWithSpace := len(before) > 0 && unicode.IsSpace(before[len(before)-1])

	partial := ""
	completed := len(fields)
	if !endsWithSpace && len(fields) > 0 {
		partial = fields[len(fields)-1]
		completed = len(fields) - 1
	}

	replaceFrom := tokenStart(before)

	var vocab []string
	switch {
	case completed == 0:
		vocab = topCommands
	case completed == 1:
		vocab = subcommands[fields[0]]
	case completed >= 2 && completed <= 4:
		sug, ok := argSuggestions[slot{fields[0], fields[1], completed}]
		if !ok {
			return replaceFrom, nil
		}
		if sug.live != liveNone {
			return replaceFrom, filter(c.fetch(ctx, sug.live), partial)
		}
		vocab = sug.static
	default:
		return cursor, nil
	}

	return replaceFrom, filter(vocab, partial)
}

// tokenStart returns the rune offset just after the last whitespace before
// the cursor, or 0 when there is none.
func tokenStart(before []rune) int {
	for i := len(before) - 1; i >= 0; i-- {
		if unicode.IsSpace(before[i]) {
			return i + 1
		}
	}
	return 0
}

// filter keeps vocabulary entries with the given prefix, preserving the
// vocabulary's declared order. Matching is case-sensitive exact-prefix.
func filter(vocab []string, partial string) []Candidate {
	var out []Candidate
	for _, v := range vocab {
		if strings.HasPrefix(v, partial) {
			out = append(out, Candidate{Display: v, Replacement: v})
		}
	}
	return out
}

// fetch lists live entity names. Engine failures degrade to no candidates;
// completion never surfaces an error at the prompt.
func (c *Completer) fetch(ctx context.Context, kind liveKind) []string {
	if c.source == nil {
		return nil
	}
	switch kind {
	case liveContainers:
		containers, err := c.source.ListContainers(ctx)
		if err != nil {
			logger.Debug().Err(err).Msg("container name completion unavailable")
			return nil
		}
		names := make([]string, 0, len(containers))
		for _, ct := range containers {
			names = append(names, ct.Name)
		}
		return names
	case liveImages:
		images, err := c.source.ListImages(ctx)
		if err != nil {
			logger.Debug().Err(err).Msg("image name completion unavailable")
			return nil
		}
		refs := make([]string, 0, len(images))
		for _, img := range images {
			refs = append(refs, img.Reference())
		}
		return refs
	}
	return nil
}
