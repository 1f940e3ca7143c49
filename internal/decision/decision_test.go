package decision

import (
	"strings"
	"testing"
)

func TestFixedReturnsDefaults(t *testing.T) {
	var p Provider = Fixed{}
	if !p.Confirm("remove?", true) {
		t.Error("Confirm should honor default true")
	}
	if p.Confirm("remove?", false) {
		t.Error("Confirm should honor default false")
	}
	if got := p.Select("pick", []string{"a", "b"}, 1); got != 1 {
		t.Errorf("Select = %d, want 1", got)
	}
	if got := p.Input("name", "keep"); got != "keep" {
		t.Errorf("Input = %q, want keep", got)
	}
}

func TestInteractiveConfirm(t *testing.T) {
	tests := []struct {
		answer string
		def    bool
		want   bool
	}{
		{"y\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"sí\n", false, true},
		{"whatever\n", true, true},
	}
	for _, tt := range tests {
		var out strings.Builder
		p := NewInteractiveIO(strings.NewReader(tt.answer), &out)
		if got := p.Confirm("remove link?", tt.def); got != tt.want {
			t.Errorf("Confirm(%q, def=%v) = %v, want %v", tt.answer, tt.def, got, tt.want)
		}
		if !strings.Contains(out.String(), "remove link?") {
			t.Errorf("prompt not written: %q", out.String())
		}
	}
}

func TestInteractiveSelect(t *testing.T) {
	options := []string{"Title uno", "Title dos", "Title tres"}
	tests := []struct {
		answer string
		want   int
	}{
		{"2\n", 1},
		{"\n", 0},
		{"9\n", 0},
		{"abc\n", 0},
	}
	for _, tt := range tests {
		var out strings.Builder
		p := NewInteractiveIO(strings.NewReader(tt.answer), &out)
		if got := p.Select("Select title number", options, 0); got != tt.want {
			t.Errorf("Select(%q) = %d, want %d", tt.answer, got, tt.want)
		}
	}
}

func TestInteractiveInput(t *testing.T) {
	var out strings.Builder
	p := NewInteractiveIO(strings.NewReader("Héctor Socas\n"), &out)
	if got := p.Input("Normalize as", ""); got != "Héctor Socas" {
		t.Errorf("Input = %q", got)
	}

	p = NewInteractiveIO(strings.NewReader("\n"), &out)
	if got := p.Input("Normalize as", "def"); got != "def" {
		t.Errorf("Input empty = %q, want def", got)
	}
}

func TestInteractiveEOF(t *testing.T) {
	var out strings.Builder
	p := NewInteractiveIO(strings.NewReader(""), &out)
	if got := p.Confirm("proceed?", true); got != true {
		t.Error("EOF should fall back to default")
	}
}
