// Package history records solve runs.
//
// Every solve can be saved as a [Run] with a UUID, the definition it was run
// on and the resulting report. Three backends implement [Store]:
//   - [MemoryStore]: in-process, for tests and the server's default
//   - [FileStore]: one JSON file per run, for the CLI
//   - [MongoStore]: a MongoDB collection, for shared deployments
//
// # Usage
//
//	store, err := history.NewFileStore("")  // ~/.local/share/wayfinder/runs
//	run := history.NewRun(def, report)
//	if err := store.Save(ctx, run); err != nil {
//	    return err
//	}
//	recent, err := store.List(ctx, 10)
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/wayfinder/pkg/definition"
	"github.com/matzehuels/wayfinder/pkg/solve"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("run not found")

// DefaultListLimit caps List when the caller passes zero.
const DefaultListLimit = 50

// Run is one recorded solve.
type Run struct {
	ID             string       `json:"id" bson:"_id"`
	CreatedAt      time.Time    `json:"created_at" bson:"created_at"`
	Problem        string       `json:"problem" bson:"problem"`
	Kind           string       `json:"kind" bson:"kind"`
	DefinitionHash string       `json:"definition_hash" bson:"definition_hash"`
	Report         solve.Report `json:"report" bson:"report"`
}

// NewRun creates a run for report with a fresh ID.
func NewRun(def *definition.Definition, report *solve.Report) *Run {
	return &Run{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		Problem:        def.Name,
		Kind:           string(def.Kind),
		DefinitionHash: def.Hash(),
		Report:         *report,
	}
}

// Store is the interface for run storage backends.
type Store interface {
	// Save stores a run, replacing any run with the same ID.
	Save(ctx context.Context, run *Run) error

	// Get retrieves a run by ID. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns up to limit runs, newest first. A limit of zero means
	// DefaultListLimit.
	List(ctx context.Context, limit int) ([]*Run, error)

	// Close releases backend resources.
	Close() error
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
