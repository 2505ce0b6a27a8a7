package eval

import (
	"strings"
	"testing"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
)

func TestStats(t *testing.T) {
	lc, err := ml.NewLinearClassifier(0, 2, 0, 1)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	// Zero weights and threshold classify everything as true.
	exs := []ml.Example{
		{X: []float64{0, 0}, Label: true},
		{X: []float64{0, 1}, Label: true},
		{X: []float64{1, 0}, Label: false},
		{X: []float64{1, 1}, Label: true},
	}
	var s stats
	if err := s.eval(lc, exs); err != nil {
		t.Fatalf("got error: %v", err)
	}
	if want := (stats{tp: 3, fp: 1}); s != want {
		t.Fatalf("expected %+v; got %+v", want, s)
	}
	if got := s.accuracy(); got != .75 {
		t.Fatalf("expected %g; got %g", .75, got)
	}
	if got := s.recall(); got != 1 {
		t.Fatalf("expected %g; got %g", 1., got)
	}
	if got := s.precision(); got != .75 {
		t.Fatalf("expected %g; got %g", .75, got)
	}
	var b strings.Builder
	if err := s.print(&b, "test"); err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !strings.Contains(b.String(), "test tp 3\n") {
		t.Fatalf("bad output: %s", b.String())
	}
}

func TestStatsBadDimension(t *testing.T) {
	lc, err := ml.NewLinearClassifier(0, 3, 0, 1)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	var s stats
	if err := s.eval(lc, []ml.Example{{X: []float64{1, 2}}}); err == nil {
		t.Fatalf("expected an error")
	}
}
