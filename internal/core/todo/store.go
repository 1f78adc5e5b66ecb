package todo

import "context"

// Store defines the interface for item list persistence. Implementations read
// and write the whole collection at once.
type Store interface {
	// Load returns the persisted collection, bootstrapping an empty one when
	// nothing has been stored yet.
	Load(ctx context.Context) (List, error)

	// Save overwrites the persisted collection with items.
	Save(ctx context.Context, items List) error
}
