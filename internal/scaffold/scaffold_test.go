package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tertulia/internal/episode"
	"tertulia/internal/logging"
)

func sampleEpisode() episode.Episode {
	return episode.Episode{
		Number:               "050",
		Class:                episode.ClassDual,
		Title:                "Agujeros negros primordiales",
		WebLink:              "https://example.org/ep50",
		RefLinks:             []string{"https://arxiv.org/abs/1"},
		PublicationDate:      "12/01/2024",
		TotalDurationSeconds: 5400,
		Parts: []episode.Part{{
			EpisodeID:      "Ep050_A",
			PartClass:      episode.PartA,
			Date:           "Fri, 12 Jan 2024 10:00:00 +0100",
			Duration:       "01:30:00",
			AudioURL:       "https://example.org/a.mp3",
			Topics:         []episode.Topic{{Title: "Intro", Timestamp: "00:10"}, {Title: "Sin marca"}},
			Contertulios:   []string{"Héctor Socas", "Sara Robisco"},
			RawDescription: "Notas del episodio.\n",
		}},
	}
}

func TestRender(t *testing.T) {
	text := Render(sampleEpisode())

	for _, want := range []string{
		"Ep050 — Agujeros negros primordiales",
		"Publication date: 12/01/2024",
		"Total duration: 1:30:00",
		"Web: https://example.org/ep50",
		"  - https://arxiv.org/abs/1",
		"## Part Ep050_A (A)",
		"Contertulios: Héctor Socas, Sara Robisco",
		"  - (00:10) Intro",
		"  - Sin marca",
		"Notas del episodio.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered document missing %q:\n%s", want, text)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	dir := t.TempDir()
	episodes := []episode.Episode{sampleEpisode()}

	stats, err := Generate(episodes, dir, logging.NewNop())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if stats.Written != 1 || stats.Unchanged != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "Ep050.txt")); err != nil {
		t.Errorf("document missing: %v", err)
	}

	stats, err = Generate(episodes, dir, logging.NewNop())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if stats.Written != 0 || stats.Unchanged != 1 {
		t.Errorf("second run stats = %+v", stats)
	}
}
