package decision

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// Interactive prompts on out and reads answers from in. Construct through
// NewInteractive, which degrades to Fixed when stdin is not a terminal so a
// redirected run never hangs on a prompt.
type Interactive struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractive returns a terminal-backed Provider, or Fixed when stdin is
// not a TTY.
func NewInteractive() Provider {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return Fixed{}
	}
	return &Interactive{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// NewInteractiveIO builds an Interactive over explicit streams. Tests and
// callers that manage their own TTY detection use this directly.
func NewInteractiveIO(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{in: bufio.NewReader(in), out: out}
}

func (p *Interactive) Confirm(prompt string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", prompt, hint)
	answer := strings.ToLower(p.readLine())
	switch answer {
	case "y", "yes", "s", "si", "sí":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

func (p *Interactive) Select(prompt string, options []string, def int) int {
	for i, option := range options {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, option)
	}
	fmt.Fprintf(p.out, "%s [%d]: ", prompt, def+1)
	answer := p.readLine()
	if answer == "" {
		return def
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return def
	}
	return n - 1
}

func (p *Interactive) Input(prompt, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}
	answer := p.readLine()
	if answer == "" {
		return def
	}
	return answer
}

func (p *Interactive) readLine() string {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
