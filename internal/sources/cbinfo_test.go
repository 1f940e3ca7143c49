package sources

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleListing = `Ep250: Agujeros negros primordiales
Cara A:
-La tertulia de hoy (00:10)
-Agujeros negros (15:30)
Contertulios: Héctor Socas, Sara Robisco, Francis Villatoro. Imagen de portada: NASA.

Ep250_B: Continuación
Cara B:
-Más agujeros negros (1:02:10)
Contertulios: Héctor Socas, Sara Robisco.

Ep251: Extracto de la tertulia
Este es un extracto del episodio anterior.
-Tema suelto
`

func writeListing(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cbinfo.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write listing: %v", err)
	}
	return path
}

func TestParseGuestListing(t *testing.T) {
	entries, err := ParseGuestListing(writeListing(t, sampleListing))
	if err != nil {
		t.Fatalf("ParseGuestListing: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.EpisodeID != "Ep250" {
		t.Errorf("episode id = %q, want Ep250", first.EpisodeID)
	}
	if first.EntryType != EntryEpisode {
		t.Errorf("entry type = %q, want %q", first.EntryType, EntryEpisode)
	}
	if first.Cara != "A" {
		t.Errorf("cara = %q, want A", first.Cara)
	}
	if len(first.Topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(first.Topics))
	}
	if first.Topics[1].Title != "Agujeros negros" || first.Topics[1].Timestamp != "15:30" {
		t.Errorf("unexpected topic: %+v", first.Topics[1])
	}
	want := []string{"Héctor Socas", "Sara Robisco", "Francis Villatoro"}
	if len(first.Contertulios) != len(want) {
		t.Fatalf("contertulios = %v, want %v", first.Contertulios, want)
	}
	for i, name := range want {
		if first.Contertulios[i] != name {
			t.Errorf("contertulio[%d] = %q, want %q", i, first.Contertulios[i], name)
		}
	}
	if !first.HasMultipleTimestamps {
		t.Error("expected multiple timestamps flag")
	}

	second := entries[1]
	if second.EpisodeID != "Ep250_B" || second.Cara != "B" {
		t.Errorf("second block id/cara = %q/%q", second.EpisodeID, second.Cara)
	}
	if second.Topics[0].Timestamp != "1:02:10" {
		t.Errorf("timestamp = %q, want 1:02:10", second.Topics[0].Timestamp)
	}
	if second.HasMultipleTimestamps {
		t.Error("single timestamp should not set the flag")
	}

	third := entries[2]
	if third.EntryType != EntryEpisode {
		// Ep251 matches the heading pattern, so it classifies as an episode
		// even though its body mentions "extracto".
		t.Errorf("entry type = %q, want %q", third.EntryType, EntryEpisode)
	}
	if len(third.Topics) != 1 || third.Topics[0].Timestamp != "" {
		t.Errorf("bare topic line parsed wrong: %+v", third.Topics)
	}
}

func TestParseGuestListingPreamble(t *testing.T) {
	entries, err := ParseGuestListing(writeListing(t, "Notas generales del programa.\nEste extracto resume temas.\n\nEp300: Vacunas\nContertulios: Alberto Aparici.\n"))
	if err != nil {
		t.Fatalf("ParseGuestListing: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected preamble + episode, got %d entries", len(entries))
	}
	if entries[0].EntryType != EntryExtract {
		t.Errorf("preamble type = %q, want %q", entries[0].EntryType, EntryExtract)
	}
	if entries[0].EpisodeID != "" {
		t.Errorf("preamble should have no id, got %q", entries[0].EpisodeID)
	}
	if entries[1].EpisodeID != "Ep300" {
		t.Errorf("episode id = %q, want Ep300", entries[1].EpisodeID)
	}
}

func TestParseTopicLine(t *testing.T) {
	tests := []struct {
		line    string
		title   string
		stamp   string
		matched bool
	}{
		{"-Señales de radio (05:12)", "Señales de radio", "05:12", true},
		{"-Cierre (1:59:59)", "Cierre", "1:59:59", true},
		{"-Tema sin marca", "Tema sin marca", "", true},
		{"--separador", "", "", false},
		{"Contertulios: Héctor Socas.", "", "", false},
	}
	for _, tt := range tests {
		topic, ok := parseTopicLine(tt.line)
		if ok != tt.matched {
			t.Errorf("parseTopicLine(%q) matched = %v, want %v", tt.line, ok, tt.matched)
			continue
		}
		if topic.Title != tt.title || topic.Timestamp != tt.stamp {
			t.Errorf("parseTopicLine(%q) = %q/%q, want %q/%q", tt.line, topic.Title, topic.Timestamp, tt.title, tt.stamp)
		}
	}
}

func TestNormalizeGuestIDs(t *testing.T) {
	entries := []GuestEntry{
		{EpisodeID: "Ep250"},
		{EpisodeID: "EP7"},
		{},
	}
	changed, rows := NormalizeGuestIDs(entries)
	if changed != 1 {
		t.Fatalf("changed = %d, want 1", changed)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if entries[1].EpisodeID != "Ep007" {
		t.Errorf("normalized id = %q, want Ep007", entries[1].EpisodeID)
	}
}
