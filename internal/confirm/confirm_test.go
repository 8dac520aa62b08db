package confirm

import (
	"strings"
	"testing"
)

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  Decision
	}{
		{"y\n", Proceed},
		{"Y\n", Proceed},
		{"yes\n", Proceed},
		{"  y  \n", Proceed},
		{"n\n", Cancelled},
		{"no\n", Cancelled},
		{"\n", Cancelled},
		{"anything else\n", Cancelled},
		{"", Cancelled}, // closed input
	}
	for _, tt := range tests {
		var out strings.Builder
		term := Terminal{In: strings.NewReader(tt.input), Out: &out}
		if got := term.Confirm("Delete it?"); got != tt.want {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.want, got)
		}
		if !strings.Contains(out.String(), "[y/N]") {
			t.Errorf("input %q: expected [y/N] prompt, got %q", tt.input, out.String())
		}
	}
}

func TestFuncAdapter(t *testing.T) {
	var sawPrompt string
	c := Func(func(prompt string) Decision {
		sawPrompt = prompt
		return Cancelled
	})

	if c.Confirm("Overwrite it?") != Cancelled {
		t.Error("expected Cancelled from adapter")
	}
	if sawPrompt != "Overwrite it?" {
		t.Errorf("expected prompt passed through, got %q", sawPrompt)
	}
}
