package names

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contertulios.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}
	return path
}

func TestLoadRegistryCurrentShape(t *testing.T) {
	path := writeRegistry(t, `{
  "raw_uniques": ["Hector Socas", "Héctor Socas", "Sara Robisco"],
  "normalized": ["Héctor Socas", "Sara Robisco"],
  "aliases": {
    "Hector Socas": "Héctor Socas",
    "Héctor Socas": "Héctor Socas",
    "Sara Robisco": "Sara Robisco"
  }
}`)
	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := reg.Canonicals(); !reflect.DeepEqual(got, []string{"Héctor Socas", "Sara Robisco"}) {
		t.Errorf("canonicals = %v", got)
	}
	if got := reg.Aliases("Héctor Socas"); !reflect.DeepEqual(got, []string{"Hector Socas"}) {
		t.Errorf("aliases = %v", got)
	}
	if target, ok := reg.AliasTarget("Hector Socas"); !ok || target != "Héctor Socas" {
		t.Errorf("alias target = %q, %v", target, ok)
	}
	if len(reg.RawUniques()) != 3 {
		t.Errorf("raw uniques = %v", reg.RawUniques())
	}
}

func TestLoadRegistryLegacyShape(t *testing.T) {
	path := writeRegistry(t, `{
  "normalized": ["Héctor Socas", "Sara Robisco"],
  "aliases": [["Hector Socas", "H. Socas"], "Sara R."]
}`)
	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := reg.Aliases("Héctor Socas"); !reflect.DeepEqual(got, []string{"Hector Socas", "H. Socas"}) {
		t.Errorf("aliases = %v", got)
	}
	if target, ok := reg.AliasTarget("Sara R."); !ok || target != "Sara Robisco" {
		t.Errorf("string alias element not handled: %q %v", target, ok)
	}
}

func TestLoadRegistryCanonicalDict(t *testing.T) {
	path := writeRegistry(t, `{
  "canonical_dict": {
    "Héctor Socas": ["Hector Socas"],
    "Sara Robisco": []
  }
}`)
	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := reg.Canonicals(); !reflect.DeepEqual(got, []string{"Héctor Socas", "Sara Robisco"}) {
		t.Errorf("canonicals lost document order: %v", got)
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d canonicals", reg.Len())
	}
}

func TestRegistrySaveRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.SetRawUniques([]string{"Hector Socas", "Sara Robisco"})
	reg.AddAlias("Hector Socas", "Héctor Socas")
	reg.AddAlias("Sara Robisco", "Sara Robisco")

	path := filepath.Join(t.TempDir(), "contertulios.json")
	if err := reg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if target, ok := loaded.AliasTarget("Hector Socas"); !ok || target != "Héctor Socas" {
		t.Errorf("alias lost in round trip: %q %v", target, ok)
	}
	if !loaded.IsCanonical("Sara Robisco") {
		t.Error("self-aliased canonical lost in round trip")
	}
}

func TestUniqueNames(t *testing.T) {
	got := UniqueNames([][]string{
		{"Héctor Socas", " Sara Robisco "},
		{"Héctor Socas", ""},
	})
	want := []string{"Héctor Socas", "Sara Robisco"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueNames = %v, want %v", got, want)
	}
}
