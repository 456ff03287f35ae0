package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"pokedex/internal/snapshot"
)

// Fetcher retrieves the complete record set from the remote source.
// Hydration is all-or-nothing: a Fetcher never returns a partial list.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Record, error)
}

// Catalog owns the local copy of the record set. It reads and writes
// the persisted snapshot through an injected snapshot.Store, hydrates
// from the Fetcher exactly once per cache miss, and applies mutations
// to the full set, persisting it wholesale on every change.
type Catalog struct {
	snap    snapshot.Store
	fetcher Fetcher
	flight  singleflight.Group
}

func New(snap snapshot.Store, fetcher Fetcher) *Catalog {
	return &Catalog{snap: snap, fetcher: fetcher}
}

// Load returns the persisted snapshot if one exists, otherwise
// hydrates from the remote source, persists the result, and returns
// it. When hydration fails and no snapshot exists the catalog stays
// empty and the error wraps ErrSourceUnavailable; nothing partial is
// written. Overlapping calls share a single in-flight load.
func (c *Catalog) Load(ctx context.Context) ([]Record, error) {
	v, err, _ := c.flight.Do("load", func() (any, error) {
		return c.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Record), nil
}

func (c *Catalog) load(ctx context.Context) ([]Record, error) {
	data, ok, err := c.snap.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	if ok {
		return DecodeRecords(data)
	}

	records, err := c.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if err := c.Save(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Save replaces the persisted snapshot with the given record set.
func (c *Catalog) Save(ctx context.Context, records []Record) error {
	data, err := EncodeRecords(records)
	if err != nil {
		return err
	}
	if err := c.snap.Save(ctx, data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Reset discards the persisted snapshot. The next Load re-hydrates
// from the remote source.
func (c *Catalog) Reset(ctx context.Context) error {
	if err := c.snap.Clear(ctx); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}

// Get returns the record with the given id, or ErrNotFound.
func (c *Catalog) Get(ctx context.Context, id int) (Record, error) {
	records, err := c.Load(ctx)
	if err != nil {
		return Record{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
}

// Create validates the draft, assigns the next id (max of existing
// ids plus one), appends the record, persists the full set, and
// returns the new id for post-create navigation.
func (c *Catalog) Create(ctx context.Context, draft Draft) (int, error) {
	var missing []string
	if draft.Name == "" {
		missing = append(missing, "name")
	}
	if len(draft.Types) == 0 {
		missing = append(missing, "type")
	}
	if draft.Height == nil || *draft.Height < 0 {
		missing = append(missing, "height")
	}
	if draft.Weight == nil || *draft.Weight < 0 {
		missing = append(missing, "weight")
	}
	if len(missing) > 0 {
		return 0, &ValidationError{Fields: missing}
	}

	records, err := c.Load(ctx)
	if err != nil {
		return 0, err
	}

	id := 0
	for _, r := range records {
		if r.ID > id {
			id = r.ID
		}
	}
	id++

	sprite := draft.Sprite
	if sprite == "" {
		sprite = DefaultSprite(id)
	}

	records = append(records, Record{
		ID:        id,
		Name:      draft.Name,
		Types:     draft.Types,
		Sprite:    sprite,
		Height:    draft.Height,
		Weight:    draft.Weight,
		Abilities: draft.Abilities,
	})
	if err := c.Save(ctx, records); err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces the mutable fields of the record with the given id
// and persists the full set. Height, weight and abilities are replaced
// only when the patch supplies them; the id never changes.
func (c *Catalog) Update(ctx context.Context, id int, patch Patch) error {
	var missing []string
	if patch.Name == "" {
		missing = append(missing, "name")
	}
	if len(patch.Types) == 0 {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	records, err := c.Load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i, r := range records {
		if r.ID != id {
			continue
		}
		r.Name = patch.Name
		r.Types = patch.Types
		r.Sprite = patch.Sprite
		if patch.Height != nil {
			r.Height = patch.Height
		}
		if patch.Weight != nil {
			r.Weight = patch.Weight
		}
		if patch.Abilities != nil {
			r.Abilities = patch.Abilities
		}
		records[i] = r
		found = true
		break
	}
	if !found {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return c.Save(ctx, records)
}

// Delete removes the record with the given id and persists the reduced
// set. It takes effect only with an affirmative confirmation obtained
// by the caller; without one nothing changes. A missing id is a silent
// no-op, not an error.
func (c *Catalog) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return nil
	}

	records, err := c.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return c.Save(ctx, kept)
}
