package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// MaxDepthLimit bounds depth limits and iterative-deepening ceilings
// accepted from users.
const MaxDepthLimit = 10_000

// nameRegex matches problem and node names: a letter or digit followed by
// letters, digits, dot, dash or underscore.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName validates a problem or node name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 128 characters
//   - No control characters
//   - Only letters, digits, '.', '-' and '_' after a leading letter or digit
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains invalid control characters")
		}
	}

	if !nameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid name: %q", name)
	}

	return nil
}

// ValidateDepth validates a depth limit or ceiling. Zero means unset.
func ValidateDepth(depth int) error {
	if depth < 0 {
		return New(ErrCodeInvalidInput, "depth cannot be negative: %d", depth)
	}
	if depth > MaxDepthLimit {
		return New(ErrCodeInvalidInput, "depth %d exceeds the maximum of %d", depth, MaxDepthLimit)
	}
	return nil
}

// ValidateDefinitionFilename validates a problem definition filename: a
// .toml or .json file.
func ValidateDefinitionFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "definition filename cannot be empty")
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml", ".json":
		return nil
	}
	return New(ErrCodeInvalidFormat, "definition file must be .toml or .json: %q", filepath.Base(filename))
}

// ValidateRunID validates a run identifier. Run IDs are UUIDs; anything else
// is rejected before it reaches a storage backend or a file path.
func ValidateRunID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "run ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid run ID %q", id)
	}
	return nil
}

// ValidatePath validates a relative file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
