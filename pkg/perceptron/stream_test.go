package perceptron

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
)

func sendexs(es ...ml.Example) StreamFunc {
	return func(ctx context.Context, _ <-chan ml.Example, out chan<- ml.Example) error {
		return SendExamples(ctx, out, es...)
	}
}

func countexs(cnt *int) StreamFunc {
	return func(ctx context.Context, in <-chan ml.Example, _ chan<- ml.Example) error {
		return EachExample(ctx, in, func(ml.Example) error {
			*cnt++
			return nil
		})
	}
}

func TestCountExamples(t *testing.T) {
	for _, tc := range []struct {
		examples []ml.Example
		want     int
	}{
		{nil, 0},
		{make([]ml.Example, 100), 100},
		{make([]ml.Example, 10), 10},
	} {
		t.Run(fmt.Sprintf("count %d", tc.want), func(t *testing.T) {
			var count int
			err := Pipe(context.Background(), sendexs(tc.examples...), countexs(&count))
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if count != tc.want {
				t.Fatalf("expected %d; got %d", tc.want, count)
			}
		})
	}
}

func TestCheckLen(t *testing.T) {
	for _, tc := range []struct {
		examples []ml.Example
		wantErr  bool
	}{
		{nil, false},
		{[]ml.Example{{X: []float64{1}}, {X: []float64{2}}}, false},
		{[]ml.Example{{X: []float64{1}}, {X: []float64{2, 3}}}, true},
	} {
		t.Run(fmt.Sprintf("%v", tc.examples), func(t *testing.T) {
			var got []ml.Example
			err := Pipe(context.Background(), sendexs(tc.examples...), CheckLen(), Collect(&got))
			if tc.wantErr {
				if !errors.Is(err, ml.ErrDimensionMismatch) {
					t.Fatalf("expected %v; got %v", ml.ErrDimensionMismatch, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if len(got) != len(tc.examples) {
				t.Fatalf("expected %d; got %d", len(tc.examples), len(got))
			}
		})
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"0,0,1\n0,1,1\n",
		"1,0,0\n",
		"1,1,false\n",
	}
	var paths []string
	for i, content := range files {
		path := filepath.Join(dir, fmt.Sprintf("%d.csv", i))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("got error: %v", err)
		}
		paths = append(paths, path)
	}
	var got []ml.Example
	if err := Pipe(context.Background(), ReadFiles(paths...), CheckLen(), Collect(&got)); err != nil {
		t.Fatalf("got error: %v", err)
	}
	want := []ml.Example{
		{X: []float64{0, 0}, Label: true},
		{X: []float64{0, 1}, Label: true},
		{X: []float64{1, 0}, Label: false},
		{X: []float64{1, 1}, Label: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
	err := Pipe(context.Background(), ReadFiles(filepath.Join(dir, "missing.csv")), Collect(&got))
	if err == nil {
		t.Fatalf("expected an error")
	}
}
