package master

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tertulia/internal/decision"
	"tertulia/internal/episode"
	"tertulia/internal/logging"
)

func testEpisodes() []episode.Episode {
	return []episode.Episode{{
		Number:   "050",
		Class:    episode.ClassSingle,
		Title:    "Señal & ruido",
		RefLinks: []string{"https://example.org/a?b=1&c=2"},
		Parts: []episode.Part{{
			EpisodeID: "Ep050",
			PartClass: episode.PartOnly,
		}},
	}}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "master.json"), logging.NewNop())
}

func TestStoreWriteLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	changed, err := store.Write(testEpisodes())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !changed {
		t.Error("first write reported unchanged")
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "Señal & ruido" {
		t.Errorf("round trip lost data: %+v", loaded)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "Señal") || !strings.Contains(text, "&") {
		t.Errorf("non-ASCII or ampersand escaped: %s", text)
	}
	if !strings.Contains(text, `"Episode number": "050"`) {
		t.Errorf("legacy field names lost: %s", text)
	}
}

func TestStoreWriteIfChanged(t *testing.T) {
	store := newTestStore(t)
	episodes := testEpisodes()
	if _, err := store.Write(episodes); err != nil {
		t.Fatalf("Write: %v", err)
	}

	changed, err := store.Write(episodes)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if changed {
		t.Error("identical content reported as changed")
	}
}

func TestStoreLoadRejectsInvalidJSON(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestStoreBackup(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Write(testEpisodes()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := store.Backup(decision.Fixed{}); err != nil {
		t.Fatalf("Backup: %v", err)
	}
	matches, err := filepath.Glob(store.Path() + ".*.bak")
	if err != nil || len(matches) != 1 {
		t.Fatalf("backup files = %v (%v)", matches, err)
	}
}

func TestStoreBackupMissingFileIsNoop(t *testing.T) {
	store := newTestStore(t)
	if err := store.Backup(decision.Fixed{}); err != nil {
		t.Fatalf("Backup of missing master should be a no-op: %v", err)
	}
}

func TestStoreLock(t *testing.T) {
	store := newTestStore(t)
	if err := store.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer store.Release()

	second := NewStore(store.Path(), logging.NewNop())
	if err := second.Acquire(); err == nil {
		second.Release()
		t.Fatal("second acquire should fail while the lock is held")
	}
}

func TestBuildReport(t *testing.T) {
	episodes := []episode.Episode{
		{
			Number:   "001",
			WebLink:  "https://example.org/1",
			RefLinks: []string{"https://arxiv.org/abs/1"},
			Parts: []episode.Part{
				{Date: "Fri, 12 Jan 2024 10:00:00 +0100", ExternalLink: "https://example.org/a", Topics: []episode.Topic{{Title: "T"}}},
				{Contertulios: []string{"Héctor Socas"}},
			},
		},
		{Number: "002", Parts: []episode.Part{{}}},
	}

	report := BuildReport(episodes)
	if report.Episodes != 2 || report.Parts != 3 {
		t.Fatalf("totals = %d/%d", report.Episodes, report.Parts)
	}

	byCategory := make(map[string]ReportRow)
	for _, row := range report.Rows {
		byCategory[row.Category] = row
	}
	if row := byCategory["Episodes with web link"]; row.Complete != 1 || row.Missing != 1 {
		t.Errorf("web link row = %+v", row)
	}
	if row := byCategory["Parts with topics"]; row.Complete != 1 || row.Missing != 2 {
		t.Errorf("topics row = %+v", row)
	}
	if got := byCategory["Episodes with web link"].Percent(); got != "50.0%" {
		t.Errorf("percent = %q", got)
	}
}

func TestReportRowPercentZeroTotal(t *testing.T) {
	if got := (ReportRow{}).Percent(); got != "0.0%" {
		t.Errorf("percent = %q", got)
	}
}
