// Package confirm models user confirmation for destructive operations.
// A declined prompt is a normal cancelled outcome, not an error: the
// caller aborts with no side effect.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Decision is the outcome of a confirmation prompt.
type Decision int

const (
	Proceed Decision = iota
	Cancelled
)

// Confirmer asks the user to approve an operation before it runs.
type Confirmer interface {
	Confirm(prompt string) Decision
}

// Func adapts a plain function to Confirmer.
type Func func(prompt string) Decision

// Confirm implements Confirmer.
func (f Func) Confirm(prompt string) Decision {
	return f(prompt)
}

// Terminal prompts interactively on the given streams. Anything but an
// explicit yes cancels.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer with a "[y/N]" prompt.
func (t Terminal) Confirm(prompt string) Decision {
	fmt.Fprintf(t.Out, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil && line == "" {
		return Cancelled
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return Proceed
	default:
		return Cancelled
	}
}
