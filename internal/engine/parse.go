package engine

import (
	"bufio"
	"bytes"
	"encoding/json"

	"github.com/schmitthub/dockhand/internal/logger"
)

// parseLines decodes line-delimited JSON into a slice of T. The engine CLI
// emits one JSON object per line; a line that fails to decode is logged and
// skipped so one malformed row never loses the rest of the listing.
func parseLines[T any](data []byte, op string) []T {
	var out []T

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			logger.Warn().
				Err(err).
				Str("op", op).
				Str("line", string(line)).
				Msg("skipping unparseable engine output line")
			continue
		}
		out = append(out, item)
	}

	return out
}
