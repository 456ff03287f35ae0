package sqlite

import "testing"

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		want    string
		wantErr bool
	}{
		{
			name: "memory",
			dsn:  "sqlite://:memory:",
			want: ":memory:",
		},
		{
			name: "relative path anchored",
			dsn:  "sqlite://pokedex.db",
			want: "./pokedex.db",
		},
		{
			name: "already anchored relative path",
			dsn:  "sqlite://./pokedex.db",
			want: "./pokedex.db",
		},
		{
			name: "absolute path",
			dsn:  "sqlite:///var/lib/pokedex.db",
			want: "/var/lib/pokedex.db",
		},
		{
			name: "path with query options",
			dsn:  "sqlite://pokedex.db?cache=shared",
			want: "./pokedex.db?cache=shared",
		},
		{
			name: "escaped path",
			dsn:  "sqlite://my%20dex.db",
			want: "./my dex.db",
		},
		{
			name:    "wrong scheme",
			dsn:     "bolt://pokedex.db",
			wantErr: true,
		},
		{
			name:    "empty path",
			dsn:     "sqlite://",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDSN(tt.dsn)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
