package engine

import "github.com/docker/go-units"

// MemBytes is a flag value for human readable memory sizes (128m, 2g, ...).
type MemBytes int64

// String returns the string format of the human readable memory bytes.
func (m *MemBytes) String() string {
	// In spf13/pflag, "0" is the zero value while "0B" is not; returning
	// "0" keeps the default hidden from help output.
	if m.Value() != 0 {
		return units.BytesSize(float64(m.Value()))
	}
	return "0"
}

// Set parses a human readable size string into bytes.
func (m *MemBytes) Set(value string) error {
	val, err := units.RAMInBytes(value)
	*m = MemBytes(val)
	return err
}

// Type returns the flag type name shown in help output.
func (m *MemBytes) Type() string {
	return "bytes"
}

// Value returns the limit in bytes.
func (m *MemBytes) Value() int64 {
	return int64(*m)
}
