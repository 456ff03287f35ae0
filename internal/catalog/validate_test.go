package catalog

import "testing"

func TestValidate(t *testing.T) {
	t.Run("clean catalog has no issues", func(t *testing.T) {
		report := Validate([]Record{
			{ID: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}, Sprite: "s"},
			{ID: 4, Name: "charmander", Types: []string{"fire"}, Sprite: "s"},
		})
		if len(report.Issues) != 0 {
			t.Fatalf("expected no issues, got %v", report.Issues)
		}
		if report.Errors() {
			t.Fatal("expected no errors")
		}
	})

	t.Run("duplicate ids are errors", func(t *testing.T) {
		report := Validate([]Record{
			{ID: 1, Name: "a", Types: []string{"fire"}, Sprite: "s"},
			{ID: 1, Name: "b", Types: []string{"fire"}, Sprite: "s"},
		})
		if !report.Errors() {
			t.Fatal("expected errors")
		}
		found := false
		for _, issue := range report.Issues {
			if issue.Code == "duplicate_id" && issue.Name == "b" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected duplicate_id for b, got %v", report.Issues)
		}
	})

	t.Run("non-positive id is an error", func(t *testing.T) {
		report := Validate([]Record{{ID: 0, Name: "a", Types: []string{"fire"}, Sprite: "s"}})
		if !report.Errors() {
			t.Fatalf("expected errors, got %v", report.Issues)
		}
	})

	t.Run("unknown types warn but do not error", func(t *testing.T) {
		report := Validate([]Record{
			{ID: 1, Name: "a", Types: []string{"shadow"}, Sprite: "s"},
		})
		if report.Errors() {
			t.Fatalf("unknown type must not be an error: %v", report.Issues)
		}
		if len(report.Issues) != 1 || report.Issues[0].Code != "unknown_type" {
			t.Fatalf("expected one unknown_type warning, got %v", report.Issues)
		}
	})

	t.Run("empty name is an error", func(t *testing.T) {
		report := Validate([]Record{{ID: 1, Name: "", Types: []string{"fire"}, Sprite: "s"}})
		if !report.Errors() {
			t.Fatalf("expected errors, got %v", report.Issues)
		}
	})

	t.Run("negative stats are errors", func(t *testing.T) {
		h := -1
		report := Validate([]Record{{ID: 1, Name: "a", Types: []string{"fire"}, Sprite: "s", Height: &h}})
		if !report.Errors() {
			t.Fatalf("expected errors, got %v", report.Issues)
		}
	})

	t.Run("missing sprite and types warn", func(t *testing.T) {
		report := Validate([]Record{{ID: 1, Name: "a"}})
		if report.Errors() {
			t.Fatalf("expected warnings only, got %v", report.Issues)
		}
		if len(report.Issues) != 2 {
			t.Fatalf("expected no_types and missing_sprite, got %v", report.Issues)
		}
	})
}
