package gostamp

import (
	"context"
)

// State is the lifecycle state of a tracked entity.
type State int

const (
	Unchanged State = iota
	Added
	Modified
	Deleted
)

func (s State) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Entry represents a tracked entity and its pending state.
type Entry struct {
	Entity any
	State  State
}

// ChangeTracker exposes the entries pending in a save operation.
type ChangeTracker interface {
	Entries() []Entry
}

// Navigator resolves navigation relations of an entity.
type Navigator interface {
	// Relations lists the navigation names declared on entity.
	Relations(entity any) []string
	// LoadRelated loads the relation if it is not loaded yet and returns its current value.
	// A single-valued relation yields at most one element.
	LoadRelated(ctx context.Context, entity any, relation string) ([]any, error)
}

// Session is the persistence context handed to an interceptor on save.
type Session interface {
	ChangeTracker
	Navigator
}

// Interceptor runs around a save operation and returns the (possibly unchanged) result.
type Interceptor interface {
	SaveChangesContext(ctx context.Context, sess Session, result int) (int, error)
}
