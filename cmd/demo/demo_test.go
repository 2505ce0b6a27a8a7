package demo

import (
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		var b strings.Builder
		ok, err := Run(&b, verbose)
		if err != nil {
			t.Fatalf("got error: %v", err)
		}
		if !ok {
			t.Fatalf("expected convergence: %s", b.String())
		}
		if !strings.Contains(b.String(), "All correct!") {
			t.Fatalf("bad output: %s", b.String())
		}
		if got := strings.Contains(b.String(), "Epoch 1:"); got != verbose {
			t.Fatalf("expected narration=%t; got %t", verbose, got)
		}
	}
}
