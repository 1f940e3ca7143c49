package main

import (
	"bytes"
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()

	want := []string{"sources", "consolidate", "links", "names", "complete", "refine", "scaffold", "config"}
	have := make(map[string]bool)
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	root := newRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"--help"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected help output")
	}
}
