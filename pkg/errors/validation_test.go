package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "romania", false},
		{"with digits", "grid3x3", false},
		{"dotted", "exercise.a3", false},
		{"dashes and underscores", "hp-fold_20", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"leading dash", "-x", true},
		{"space", "two words", true},
		{"path", "../etc", true},
		{"control char", "foo\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateDepth(t *testing.T) {
	tests := []struct {
		input   int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{MaxDepthLimit, false},
		{-1, true},
		{MaxDepthLimit + 1, true},
	}
	for _, tt := range tests {
		if err := ValidateDepth(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateDepth(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateDefinitionFilename(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"romania.toml", false},
		{"dir/puzzle.JSON", false},
		{"", true},
		{"notes.txt", true},
		{"noext", true},
	}
	for _, tt := range tests {
		if err := ValidateDefinitionFilename(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateDefinitionFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateRunID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"", true},
		{"not-a-uuid", true},
		{"../../etc/passwd", true},
	}
	for _, tt := range tests {
		err := ValidateRunID(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRunID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && GetCode(err) != ErrCodeInvalidInput {
			t.Errorf("ValidateRunID(%q) code = %v", tt.input, GetCode(err))
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "problems/romania.toml", false},
		{"valid filename only", "grid.json", false},
		{"valid with dots", "v1.2.3/exercise.toml", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute path", "/etc/passwd", true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidDefinition,
		ErrCodeInvalidStrategy,
		ErrCodeInvalidState,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeUnsupportedKind,
		ErrCodeNotFound,
		ErrCodeRunNotFound,
		ErrCodeFileNotFound,
		ErrCodeTimeout,
		ErrCodeCancelled,
		ErrCodeStorage,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
