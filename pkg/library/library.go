// Package library persists named staircase designs.
//
// A Design wraps a validated spec with identity and timestamps so it
// can be saved, listed, and rendered later by name. The Store
// interface has two implementations:
//   - file: JSON documents under ~/.config/staircast/designs, for CLI use
//   - mongo: a MongoDB collection, for server deployments sharing one library
//
// # Usage
//
//	store, err := library.NewFileStore("")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	d, err := library.New("garage stairs", "rear exit", sp)
//	if err != nil {
//	    return err
//	}
//	if err := store.Put(ctx, d); err != nil {
//	    return err
//	}
package library

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/spec"
)

// Design is a named, persisted staircase spec.
type Design struct {
	ID          string         `json:"id" bson:"_id"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Spec        spec.Staircase `json:"spec" bson:"spec"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for design storage backends.
type Store interface {
	// Get retrieves a design by ID.
	// Returns a DESIGN_NOT_FOUND error if no design has that ID.
	Get(ctx context.Context, id string) (*Design, error)

	// List returns all designs sorted by name.
	List(ctx context.Context) ([]*Design, error)

	// Put stores a design, replacing any existing design with the same ID.
	Put(ctx context.Context, d *Design) error

	// Delete removes a design by ID.
	// Returns a DESIGN_NOT_FOUND error if no design has that ID.
	Delete(ctx context.Context, id string) error

	// Close releases resources held by the backend.
	Close() error
}

// New creates a design around a validated spec, assigning a fresh UUID
// and creation timestamps.
func New(name, description string, s spec.Staircase) (*Design, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New(errors.ErrCodeInvalidName, "design name cannot be empty")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Design{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Spec:        s,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Touch advances the modification timestamp. Call before Put when
// updating an existing design.
func (d *Design) Touch() {
	d.UpdatedAt = time.Now().UTC()
}
