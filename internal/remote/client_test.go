package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func detailPayload(id int, name, typeName string) string {
	return fmt.Sprintf(`{
		"id": %d,
		"name": %q,
		"sprites": {"front_default": "https://sprites/%d.png"},
		"types": [{"slot":1,"type":{"name":%q}}],
		"abilities": [{"ability":{"name":"run-away"}}],
		"height": 3,
		"weight": 40
	}`, id, name, id, typeName)
}

func TestFetchAll(t *testing.T) {
	t.Run("fetches details in index order", func(t *testing.T) {
		var srv *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "1000" {
				t.Errorf("expected limit 1000, got %q", got)
			}
			fmt.Fprintf(w, `{"results":[
				{"name":"squirtle","url":"%s/pokemon/7"},
				{"name":"bulbasaur","url":"%s/pokemon/1"}
			]}`, srv.URL, srv.URL)
		})
		mux.HandleFunc("/pokemon/7", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, detailPayload(7, "squirtle", "water"))
		})
		mux.HandleFunc("/pokemon/1", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, detailPayload(1, "bulbasaur", "grass"))
		})
		srv = httptest.NewServer(mux)
		defer srv.Close()

		client := New(srv.URL, 1000)
		records, err := client.FetchAll(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].Name != "squirtle" || records[1].Name != "bulbasaur" {
			t.Fatalf("index order not preserved: %v", records)
		}
		if records[0].ID != 7 || records[0].Types[0] != "water" {
			t.Fatalf("detail not normalized: %+v", records[0])
		}
		if records[0].Abilities[0] != "run-away" || *records[0].Height != 3 {
			t.Fatalf("detail not normalized: %+v", records[0])
		}
	})

	t.Run("one failed detail fails the whole hydration", func(t *testing.T) {
		var srv *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{"results":[
				{"name":"bulbasaur","url":"%s/pokemon/1"},
				{"name":"charmander","url":"%s/pokemon/4"}
			]}`, srv.URL, srv.URL)
		})
		mux.HandleFunc("/pokemon/1", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, detailPayload(1, "bulbasaur", "grass"))
		})
		mux.HandleFunc("/pokemon/4", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		srv = httptest.NewServer(mux)
		defer srv.Close()

		client := New(srv.URL, 1000)
		if _, err := client.FetchAll(context.Background()); !errors.Is(err, ErrRequestFailed) {
			t.Fatalf("expected ErrRequestFailed, got %v", err)
		}
	})

	t.Run("index failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := New(srv.URL, 1000)
		if _, err := client.FetchAll(context.Background()); !errors.Is(err, ErrRequestFailed) {
			t.Fatalf("expected ErrRequestFailed, got %v", err)
		}
	})

	t.Run("malformed index payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "not json")
		}))
		defer srv.Close()

		client := New(srv.URL, 1000)
		if _, err := client.FetchAll(context.Background()); !errors.Is(err, ErrRequestFailed) {
			t.Fatalf("expected ErrRequestFailed, got %v", err)
		}
	})

	t.Run("empty index yields empty set", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"results":[]}`)
		}))
		defer srv.Close()

		client := New(srv.URL, 1000)
		records, err := client.FetchAll(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 0 {
			t.Fatalf("expected no records, got %v", records)
		}
	})
}
