package episode

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1:02:03", 3723},
		{"45:10", 2710},
		{"", 0},
		{"abc", 0},
		{"1:2:3:4", 0},
		{"00:00", 0},
		{" 10:00 ", 600},
	}
	for _, tt := range tests {
		if got := ParseDuration(tt.in); got != tt.want {
			t.Errorf("ParseDuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseDateFormats(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"Thu, 03 Apr 2025 20:41:51 +0200", true, "03/04/2025"},
		{"Thu, 03 Apr 2025 20:41:51", true, "03/04/2025"},
		{"2025-04-03 20:41:51", true, "03/04/2025"},
		{"2025-04-03", true, "03/04/2025"},
		{"3 de abril de 2025", false, ""},
		{"", false, ""},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && FormatDate(got) != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, FormatDate(got), tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{3723, "1:02:03"},
		{2710, "45:10"},
		{59, "0:59"},
		{0, "0:00"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
