package catalog

import (
	"encoding/json"
	"testing"
)

func TestDecodeRecords(t *testing.T) {
	t.Run("canonical shape", func(t *testing.T) {
		data := []byte(`[{"id":1,"name":"bulbasaur","types":["grass","poison"],"sprite":"s.png"}]`)
		records, err := DecodeRecords(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		r := records[0]
		if r.ID != 1 || r.Name != "bulbasaur" || len(r.Types) != 2 || r.Types[1] != "poison" {
			t.Fatalf("unexpected record: %+v", r)
		}
	})

	t.Run("legacy nested types", func(t *testing.T) {
		data := []byte(`[{"id":4,"name":"charmander","types":[{"slot":1,"type":{"name":"fire","url":"u"}}],"sprite":"s.png"}]`)
		records, err := DecodeRecords(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records[0].Types) != 1 || records[0].Types[0] != "fire" {
			t.Fatalf("expected [fire], got %v", records[0].Types)
		}
	})

	t.Run("mixed shapes in one snapshot", func(t *testing.T) {
		data := []byte(`[
			{"id":1,"name":"a","types":["grass"],"sprite":"s"},
			{"id":2,"name":"b","types":[{"type":{"name":"fire"}}],"sprite":"s"}
		]`)
		records, err := DecodeRecords(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if records[0].Types[0] != "grass" || records[1].Types[0] != "fire" {
			t.Fatalf("unexpected types: %v %v", records[0].Types, records[1].Types)
		}
	})

	t.Run("legacy nested abilities", func(t *testing.T) {
		data := []byte(`[{"id":1,"name":"a","types":["grass"],"sprite":"s","abilities":[{"ability":{"name":"overgrow"}},"chlorophyll"]}]`)
		records, err := DecodeRecords(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got := records[0].Abilities
		if len(got) != 2 || got[0] != "overgrow" || got[1] != "chlorophyll" {
			t.Fatalf("expected [overgrow chlorophyll], got %v", got)
		}
	})

	t.Run("missing sprite defaults from id", func(t *testing.T) {
		data := []byte(`[{"id":7,"name":"squirtle","types":["water"]}]`)
		records, err := DecodeRecords(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if records[0].Sprite != DefaultSprite(7) {
			t.Fatalf("expected default sprite, got %q", records[0].Sprite)
		}
	})

	t.Run("absent height and weight stay unset", func(t *testing.T) {
		data := []byte(`[{"id":1,"name":"a","types":["grass"],"sprite":"s"}]`)
		records, err := DecodeRecords(data)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if records[0].Height != nil || records[0].Weight != nil {
			t.Fatalf("expected unset height and weight, got %+v", records[0])
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := DecodeRecords([]byte(`{`)); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestEncodeRecords(t *testing.T) {
	t.Run("emits canonical bare-string types", func(t *testing.T) {
		height := 7
		data, err := EncodeRecords([]Record{
			{ID: 1, Name: "bulbasaur", Types: []string{"grass"}, Sprite: "s", Height: &height},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		var raw []map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			t.Fatalf("round trip: %v", err)
		}
		types, ok := raw[0]["types"].([]any)
		if !ok || len(types) != 1 || types[0] != "grass" {
			t.Fatalf("expected canonical types, got %v", raw[0]["types"])
		}
		if _, present := raw[0]["abilities"]; present {
			t.Fatal("empty abilities should be omitted")
		}
	})

	t.Run("nil set encodes as empty array", func(t *testing.T) {
		data, err := EncodeRecords(nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(data) != "[]" {
			t.Fatalf("expected [], got %s", data)
		}
	})

	t.Run("decode of encode is identity", func(t *testing.T) {
		height, weight := 7, 69
		in := []Record{{
			ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"},
			Sprite: "s", Height: &height, Weight: &weight,
			Abilities: []string{"overgrow"},
		}}
		data, err := EncodeRecords(in)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		out, err := DecodeRecords(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(out) != 1 || out[0].Name != in[0].Name || *out[0].Height != 7 || out[0].Abilities[0] != "overgrow" {
			t.Fatalf("round trip mismatch: %+v", out)
		}
	})
}

func TestNormalizeDetail(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		payload := []byte(`{
			"id": 1,
			"name": "bulbasaur",
			"sprites": {"front_default": "https://sprites/1.png"},
			"types": [{"slot":1,"type":{"name":"grass"}},{"slot":2,"type":{"name":"poison"}}],
			"abilities": [{"ability":{"name":"overgrow"}},{"ability":{"name":"chlorophyll"}}],
			"height": 7,
			"weight": 69
		}`)
		rec, err := NormalizeDetail(payload)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.ID != 1 || rec.Name != "bulbasaur" {
			t.Fatalf("unexpected identity: %+v", rec)
		}
		if len(rec.Types) != 2 || rec.Types[0] != "grass" || rec.Types[1] != "poison" {
			t.Fatalf("unexpected types: %v", rec.Types)
		}
		if len(rec.Abilities) != 2 || rec.Abilities[0] != "overgrow" {
			t.Fatalf("unexpected abilities: %v", rec.Abilities)
		}
		if rec.Sprite != "https://sprites/1.png" {
			t.Fatalf("unexpected sprite: %q", rec.Sprite)
		}
		if rec.Height == nil || *rec.Height != 7 || rec.Weight == nil || *rec.Weight != 69 {
			t.Fatalf("unexpected stats: %+v", rec)
		}
	})

	t.Run("missing sprite defaults from id", func(t *testing.T) {
		rec, err := NormalizeDetail([]byte(`{"id":25,"name":"pikachu","types":[]}`))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.Sprite != DefaultSprite(25) {
			t.Fatalf("expected default sprite, got %q", rec.Sprite)
		}
	})

	t.Run("missing id rejected", func(t *testing.T) {
		if _, err := NormalizeDetail([]byte(`{"name":"x"}`)); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("missing name rejected", func(t *testing.T) {
		if _, err := NormalizeDetail([]byte(`{"id":3}`)); err == nil {
			t.Fatal("expected error")
		}
	})
}
