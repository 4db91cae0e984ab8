package engine

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/docker/go-units"
)

// maxContainerNameLength bounds container names the way the engine does.
const maxContainerNameLength = 63

// ValidateContainerName checks a container name before it reaches the
// engine. Validation failures never spawn a subprocess.
func ValidateContainerName(name string) error {
	if name == "" {
		return errors.New("container name cannot be empty")
	}
	if len(name) > maxContainerNameLength {
		return fmt.Errorf("container name cannot be longer than %d characters", maxContainerNameLength)
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			continue
		}
		return errors.New("container name can only contain letters, digits, hyphens, underscores, and dots")
	}
	return nil
}

// ValidateImageRef checks an image reference (NAME[:TAG]) before it reaches
// the engine.
func ValidateImageRef(ref string) error {
	if ref == "" {
		return errors.New("image reference cannot be empty")
	}
	if strings.Contains(ref, " ") {
		return errors.New("image reference cannot contain spaces")
	}
	return nil
}

// validateMemoryLimit checks that a memory limit string like "512m" or "2g"
// is something the engine will accept.
func validateMemoryLimit(limit string) error {
	if _, err := units.RAMInBytes(limit); err != nil {
		return fmt.Errorf("invalid memory limit %q: %w", limit, err)
	}
	return nil
}
