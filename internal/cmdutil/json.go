package cmdutil

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes data as pretty-printed JSON to the given writer.
// Every listing command routes --json and --format json output through
// here. HTML escaping is off because engine data uses literal angle
// brackets (dangling images list as "<none>:<none>").
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
