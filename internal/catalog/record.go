package catalog

import "fmt"

// spriteBaseURL is where default sprites are served from when a record
// has no sprite of its own.
const spriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

// Record is the canonical catalog entry. Every inbound shape (remote
// detail payload, persisted snapshot, user input) is normalized into
// this form before it reaches the store or the query engine.
type Record struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Types     []string `json:"types"`
	Sprite    string   `json:"sprite"`
	Height    *int     `json:"height,omitempty"`
	Weight    *int     `json:"weight,omitempty"`
	Abilities []string `json:"abilities,omitempty"`
}

// HasType reports whether the record carries the given type name.
// Matching is exact and case-sensitive.
func (r Record) HasType(name string) bool {
	for _, t := range r.Types {
		if t == name {
			return true
		}
	}
	return false
}

// DefaultSprite returns the sprite URL derived from a record id, used
// when no explicit sprite is supplied.
func DefaultSprite(id int) string {
	return fmt.Sprintf("%s/%d.png", spriteBaseURL, id)
}

// Draft carries the fields for creating a record. Name, at least one
// type, height and weight are required; sprite and abilities are
// optional.
type Draft struct {
	Name      string
	Types     []string
	Sprite    string
	Height    *int
	Weight    *int
	Abilities []string
}

// Patch carries the fields for updating a record. Name, types and
// sprite always replace the stored values; height, weight and
// abilities replace only when non-nil.
type Patch struct {
	Name      string
	Types     []string
	Sprite    string
	Height    *int
	Weight    *int
	Abilities []string
}
