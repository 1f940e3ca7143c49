package decision

// Provider answers the questions the pipeline cannot decide on its own.
// Every method carries a default that non-interactive runs return untouched.
type Provider interface {
	// Confirm asks a yes/no question and returns the answer.
	Confirm(prompt string, def bool) bool
	// Select asks the user to pick one of options by 1-based number and
	// returns the chosen zero-based index. Invalid or empty input returns
	// def.
	Select(prompt string, options []string, def int) int
	// Input asks for a free-text answer; empty input returns def.
	Input(prompt, def string) string
}

// Fixed is a Provider that answers every question with its default. It makes
// the pipeline fully unattended: completion suggestions and link removals are
// accepted, conflicts keep the first-seen value.
type Fixed struct{}

func (Fixed) Confirm(_ string, def bool) bool { return def }

func (Fixed) Select(_ string, _ []string, def int) int { return def }

func (Fixed) Input(_ string, def string) string { return def }
