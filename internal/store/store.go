package store

import (
	"context"
	"fmt"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
)

// Store is the persistence collaborator the population engine writes through.
// Create fills the primary key on the passed record; CreateMany bulk-inserts
// a slice of records. WithTransaction runs fn against a transactional view of
// the store; any error from fn rolls the whole run back.
type Store interface {
	Create(ctx context.Context, value interface{}) error
	CreateMany(ctx context.Context, values interface{}) error
	Save(ctx context.Context, value interface{}) error

	// TeamChatUsers returns every user eligible for the team's chats:
	// players on the team, coaches and regional coaches of the team, and
	// parents of untrusted players on the team.
	TeamChatUsers(ctx context.Context, teamID uint) ([]models.User, error)

	// SampleUsers returns up to limit users in random order.
	SampleUsers(ctx context.Context, limit int) ([]models.User, error)

	WithTransaction(ctx context.Context, fn func(Store) error) error
}

// OpError wraps a storage failure with the operation and entity kind that
// produced it, so callers can tell constraint failures apart from the
// engine's own invariant errors.
type OpError struct {
	Op   string
	Kind string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func opErr(op string, value interface{}, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Kind: fmt.Sprintf("%T", value), Err: err}
}
