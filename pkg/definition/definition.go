// Package definition loads problem definitions from TOML or JSON files.
//
// A definition names one of the reference problem kinds and carries the
// parameters that instantiate it:
//
//	name = "romania-lite"
//	kind = "graph"
//
//	[graph]
//	start = "S"
//	goals = ["G"]
//	edges = [
//	    { from = "S", to = "A", cost = 2 },
//	    { from = "A", to = "G", cost = 3 },
//	]
//	heuristic = { S = 4, A = 3, G = 0 }
//
// Exactly one section matching the kind must be present. [Definition.Hash]
// gives a stable content hash used in cache keys.
package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wayfinder/pkg/cache"
	"github.com/matzehuels/wayfinder/pkg/errors"
)

// Kind identifies a problem family.
type Kind string

const (
	KindGraph   Kind = "graph"
	KindVacuum  Kind = "vacuum"
	KindPuzzle  Kind = "puzzle"
	KindQueens  Kind = "queens"
	KindFolding Kind = "folding"
)

// Kinds returns every supported kind.
func Kinds() []Kind {
	return []Kind{KindGraph, KindVacuum, KindPuzzle, KindQueens, KindFolding}
}

// Format is the serialization of a definition file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format of %q", filepath.Base(path))
}

// Definition describes one problem instance.
type Definition struct {
	Name        string `toml:"name" json:"name"`
	Kind        Kind   `toml:"kind" json:"kind"`
	Description string `toml:"description" json:"description,omitempty"`

	Graph   *GraphSpec   `toml:"graph" json:"graph,omitempty"`
	Vacuum  *VacuumSpec  `toml:"vacuum" json:"vacuum,omitempty"`
	Puzzle  *PuzzleSpec  `toml:"puzzle" json:"puzzle,omitempty"`
	Queens  *QueensSpec  `toml:"queens" json:"queens,omitempty"`
	Folding *FoldingSpec `toml:"folding" json:"folding,omitempty"`
}

// Load reads and validates a definition file. When the file has no name the
// file's base name is used.
func Load(path string) (*Definition, error) {
	if err := errors.ValidateDefinitionFilename(path); err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition %s", path)
		}
		return nil, fmt.Errorf("read definition: %w", err)
	}

	def, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// Parse decodes and validates a definition.
func Parse(data []byte, format Format) (*Definition, error) {
	def, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func decode(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse TOML definition")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDefinition, "unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse JSON definition")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported definition format %q", format)
	}
	return &def, nil
}

// Validate checks the name, the kind, that exactly the matching section is
// present, and that the section describes a valid instance.
func (d *Definition) Validate() error {
	if err := errors.ValidateName(d.Name); err != nil {
		return err
	}

	sections := map[Kind]bool{
		KindGraph:   d.Graph != nil,
		KindVacuum:  d.Vacuum != nil,
		KindPuzzle:  d.Puzzle != nil,
		KindQueens:  d.Queens != nil,
		KindFolding: d.Folding != nil,
	}
	present, ok := sections[d.Kind]
	if !ok {
		return errors.Wrap(errors.ErrCodeUnsupportedKind, ErrUnknownKind, "%q", d.Kind)
	}
	if !present {
		return errors.New(errors.ErrCodeInvalidDefinition, "kind %q requires a [%s] section", d.Kind, d.Kind)
	}
	for k, set := range sections {
		if set && k != d.Kind {
			return errors.New(errors.ErrCodeInvalidDefinition, "section [%s] does not match kind %q", k, d.Kind)
		}
	}

	var err error
	switch d.Kind {
	case KindGraph:
		_, _, err = d.Graph.Build()
	case KindVacuum:
		_, _, err = d.Vacuum.Build()
	case KindPuzzle:
		_, _, err = d.Puzzle.Build()
	case KindQueens:
		_, _, err = d.Queens.Build()
	case KindFolding:
		_, _, err = d.Folding.Build()
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDefinition, err, "%s %q", d.Kind, d.Name)
	}
	return nil
}

// Hash returns a stable SHA-256 of the definition's content. The name and
// description are excluded so renaming a file keeps its cache entries.
func (d *Definition) Hash() string {
	content := *d
	content.Name = ""
	content.Description = ""
	data, _ := json.Marshal(content)
	return cache.Hash(data)
}

// Marshal encodes the definition in the given format.
func (d *Definition) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(d); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported definition format %q", format)
}
