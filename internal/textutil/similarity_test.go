package textutil

import "testing"

func TestRatioIdentical(t *testing.T) {
	if got := Ratio("Héctor Socas", "Héctor Socas"); got != 100 {
		t.Errorf("Ratio(identical) = %v, want 100", got)
	}
}

func TestRatioCaseInsensitive(t *testing.T) {
	if got := Ratio("francis villatoro", "Francis Villatoro"); got != 100 {
		t.Errorf("Ratio(case variants) = %v, want 100", got)
	}
}

func TestRatioAccentVariant(t *testing.T) {
	got := Ratio("Hector Socas", "Héctor Socas")
	if got < 70 {
		t.Errorf("Ratio(accent variant) = %v, want >= 70", got)
	}
	if got >= 100 {
		t.Errorf("Ratio(accent variant) = %v, want < 100", got)
	}
}

func TestRatioUnrelated(t *testing.T) {
	if got := Ratio("Pedro", "Héctor Socas"); got >= 70 {
		t.Errorf("Ratio(unrelated) = %v, want < 70", got)
	}
}

func TestRatioSymmetric(t *testing.T) {
	ab := Ratio("Sara Robisco", "Sara Robisco Cavite")
	ba := Ratio("Sara Robisco Cavite", "Sara Robisco")
	if ab != ba {
		t.Errorf("Ratio not symmetric: %v vs %v", ab, ba)
	}
}

func TestTopMatchesOrderAndLimit(t *testing.T) {
	options := []string{"Héctor Socas", "Héctor Vives", "Carlos Westendorp", "Sara Robisco"}
	matches := TopMatches("Hector Socas", options, 3)
	if len(matches) != 3 {
		t.Fatalf("len = %d, want 3", len(matches))
	}
	if matches[0].Value != "Héctor Socas" {
		t.Errorf("best = %q, want Héctor Socas", matches[0].Value)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not sorted descending at %d", i)
		}
	}
}

func TestTopMatchesTieKeepsFirstOption(t *testing.T) {
	matches := TopMatches("ana", []string{"Ana", "ANA"}, 2)
	if matches[0].Value != "Ana" {
		t.Errorf("tie-break = %q, want first-listed Ana", matches[0].Value)
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ep105_A", "Ep105_A"},
		{" Ep105: intro? ", "Ep105- intro"},
		{"a/b\\c", "a-b-c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
