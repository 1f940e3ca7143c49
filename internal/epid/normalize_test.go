package epid

import (
	"errors"
	"testing"

	"tertulia/internal/episode"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"EP7", "Ep007"},
		{"Ep 105_a", "Ep105_A"},
		{"Ep12_bonus", "Ep012_Supl"},
		{"ep.0042-B", "Ep042_B"},
		{"Ep105_Supl", "Ep105_Supl"},
		{"Ep200_especial", "Ep200_Supl"},
		{"Ep437", "Ep437"},
		{"Ep1024", "Ep1024"},
		{"  Ep050_A: ", "Ep050_A"},
		{"Ep300_C", "Ep300_C"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeUnparsed(t *testing.T) {
	got, err := Normalize("garbage")
	if !errors.Is(err, ErrUnparsed) {
		t.Fatalf("expected ErrUnparsed, got %v", err)
	}
	if got != "garbage" {
		t.Errorf("unparsed input must pass through trimmed, got %q", got)
	}

	got, err = Normalize("  Especial Navidad  ")
	if !errors.Is(err, ErrUnparsed) {
		t.Fatalf("expected ErrUnparsed, got %v", err)
	}
	if got != "Especial Navidad" {
		t.Errorf("got %q, want trimmed original", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"EP7", "Ep 105_a", "Ep12_bonus"} {
		once, err := Normalize(raw)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", raw, err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", once, err)
		}
		if once != twice {
			t.Errorf("not idempotent: %q -> %q -> %q", raw, once, twice)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in        string
		number    string
		partClass string
		ok        bool
	}{
		{"Ep105_A", "105", episode.PartA, true},
		{"Ep105", "105", episode.PartOnly, true},
		{"Ep050_Supl", "050", episode.PartSupl, true},
		{"Ep1024_B", "1024", episode.PartB, true},
		{"garbage", "", "", false},
		{"Ep7", "", "", false}, // not canonical, must be normalized first
	}
	for _, tt := range tests {
		number, partClass, ok := Split(tt.in)
		if ok != tt.ok || number != tt.number || partClass != tt.partClass {
			t.Errorf("Split(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, number, partClass, ok, tt.number, tt.partClass, tt.ok)
		}
	}
}

func TestEpisodeKey(t *testing.T) {
	if got := EpisodeKey("105"); got != "Ep105" {
		t.Errorf("EpisodeKey = %q, want Ep105", got)
	}
}
