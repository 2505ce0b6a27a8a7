package perceptron

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
)

func TestParseExample(t *testing.T) {
	for _, tc := range []struct {
		test    string
		want    ml.Example
		wantErr bool
	}{
		{"0,1,0,1", ml.Example{X: []float64{0, 1, 0}, Label: true}, false},
		{"1.5, -2, false", ml.Example{X: []float64{1.5, -2}, Label: false}, false},
		{".3,true", ml.Example{X: []float64{.3}, Label: true}, false},
		{"1", ml.Example{}, true},
		{"1,2,yes", ml.Example{}, true},
		{"a,1", ml.Example{}, true},
	} {
		t.Run(tc.test, func(t *testing.T) {
			got, err := ParseExample(tc.test)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v; got %v", tc.want, got)
			}
		})
	}
}

func TestReadExamples(t *testing.T) {
	in := "# x,y,z,label\n0,1,0,1\n\n1,1,1,0\n"
	got, err := ReadExamples(strings.NewReader(in))
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	want := []ml.Example{
		{X: []float64{0, 1, 0}, Label: true},
		{X: []float64{1, 1, 1}, Label: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestReadExamplesBadLength(t *testing.T) {
	_, err := ReadExamples(strings.NewReader("0,1,0,1\n1,1,0\n"))
	if !errors.Is(err, ml.ErrDimensionMismatch) {
		t.Fatalf("expected %v; got %v", ml.ErrDimensionMismatch, err)
	}
}

func TestFormatVector(t *testing.T) {
	for _, tc := range []struct {
		test []float64
		want string
	}{
		{nil, ""},
		{[]float64{1}, "1"},
		{[]float64{0, -1.5, 3}, "0,-1.5,3"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatVector(tc.test); got != tc.want {
				t.Fatalf("expected %q; got %q", tc.want, got)
			}
			if len(tc.test) == 0 {
				return
			}
			x, err := ParseVector(tc.want)
			if err != nil {
				t.Fatalf("got error: %v", err)
			}
			if !reflect.DeepEqual(x, tc.test) {
				t.Fatalf("expected %v; got %v", tc.test, x)
			}
		})
	}
}
