// Package decision abstracts the human-in-the-loop choices the pipeline
// makes: confirmations, option selections, and free-text answers. Business
// logic only ever talks to the Provider interface; the interactive
// implementation prompts on the terminal while the fixed implementation
// returns the documented defaults so unattended runs never block.
package decision
