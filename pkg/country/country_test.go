package country

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAlpha2 string
		wantErr    bool
	}{
		{name: "full name", input: "Germany", wantAlpha2: "DE"},
		{name: "lower case", input: "canada", wantAlpha2: "CA"},
		{name: "alpha-3 code", input: "USA", wantAlpha2: "US"},
		{name: "surrounding space", input: "  France ", wantAlpha2: "FR"},
		{name: "alpha-2 code", input: "de", wantAlpha2: "DE"},
		{name: "city is not a country", input: "Louisville", wantErr: true},
		{name: "city abbreviation", input: "SF", wantErr: true},
		{name: "constituent country", input: "England", wantErr: true},
		{name: "informal code", input: "UK", wantErr: true},
		{name: "informal name", input: "Britain", wantErr: true},
		{name: "region nickname", input: "Holland", wantErr: true},
		{name: "partial name", input: "Germ", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("Lookup(%q) error = %v, want ErrNotFound", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.input, err)
			}
			if got.Alpha2 != tt.wantAlpha2 {
				t.Errorf("Lookup(%q).Alpha2 = %q, want %q", tt.input, got.Alpha2, tt.wantAlpha2)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) < 200 {
		t.Fatalf("Names() returned %d names, want at least 200", len(names))
	}
}
