package catalog

import (
	"encoding/json"
	"fmt"
)

// The persisted snapshot accumulated two shapes for type and ability
// entries over the source data's history: bare strings and nested
// objects ({"type":{"name":...}}, {"ability":{"name":...}}). Decoding
// accepts both; encoding always emits the canonical bare-string form.
// This package is the only place that branches on shape.

type typeEntry string

func (t *typeEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = typeEntry(s)
		return nil
	}
	var nested struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		return fmt.Errorf("type entry: %w", err)
	}
	*t = typeEntry(nested.Type.Name)
	return nil
}

type abilityEntry string

func (a *abilityEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = abilityEntry(s)
		return nil
	}
	var nested struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		return fmt.Errorf("ability entry: %w", err)
	}
	*a = abilityEntry(nested.Ability.Name)
	return nil
}

type rawRecord struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Types     []typeEntry    `json:"types"`
	Sprite    string         `json:"sprite"`
	Height    *int           `json:"height"`
	Weight    *int           `json:"weight"`
	Abilities []abilityEntry `json:"abilities"`
}

func (r rawRecord) canonical() Record {
	rec := Record{
		ID:     r.ID,
		Name:   r.Name,
		Sprite: r.Sprite,
		Height: r.Height,
		Weight: r.Weight,
		Types:  make([]string, 0, len(r.Types)),
	}
	for _, t := range r.Types {
		rec.Types = append(rec.Types, string(t))
	}
	for _, a := range r.Abilities {
		rec.Abilities = append(rec.Abilities, string(a))
	}
	if rec.Sprite == "" && rec.ID > 0 {
		rec.Sprite = DefaultSprite(rec.ID)
	}
	return rec
}

// DecodeRecords parses a persisted snapshot into canonical records,
// accepting both legacy and canonical field shapes.
func DecodeRecords(data []byte) ([]Record, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, r.canonical())
	}
	return records, nil
}

// EncodeRecords serializes records into the canonical snapshot form.
func EncodeRecords(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// NormalizeDetail maps a remote per-item detail payload into a
// canonical Record.
func NormalizeDetail(data []byte) (Record, error) {
	var detail struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Sprites struct {
			FrontDefault string `json:"front_default"`
		} `json:"sprites"`
		Types     []typeEntry    `json:"types"`
		Abilities []abilityEntry `json:"abilities"`
		Height    *int           `json:"height"`
		Weight    *int           `json:"weight"`
	}
	if err := json.Unmarshal(data, &detail); err != nil {
		return Record{}, fmt.Errorf("decoding detail payload: %w", err)
	}
	if detail.ID <= 0 {
		return Record{}, fmt.Errorf("detail payload has no id")
	}
	if detail.Name == "" {
		return Record{}, fmt.Errorf("detail payload has no name")
	}

	raw := rawRecord{
		ID:        detail.ID,
		Name:      detail.Name,
		Sprite:    detail.Sprites.FrontDefault,
		Types:     detail.Types,
		Abilities: detail.Abilities,
		Height:    detail.Height,
		Weight:    detail.Weight,
	}
	return raw.canonical(), nil
}
