package snapshot

import "context"

// Key is the single entry every backend stores the serialized record
// array under. Absence of the key is the signal to hydrate from the
// remote source.
const Key = "pokemons"

// Store is the persistence port for the catalog snapshot. Reads and
// writes are whole-document: Load returns the complete serialized
// record set (ok reports whether one exists), Save replaces it
// atomically, Clear discards it.
type Store interface {
	Load(ctx context.Context) (data []byte, ok bool, err error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
	Close(ctx context.Context) error
}
