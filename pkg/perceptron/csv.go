package perceptron

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
)

// ReadExamples reads comma separated examples from the given reader.
// Each line holds one example with the label in its last field.
// Empty lines and lines starting with `#` are skipped.  All examples
// must have the same length.
func ReadExamples(in io.Reader) ([]ml.Example, error) {
	var ret []ml.Example
	s := bufio.NewScanner(in)
	var n int
	for s.Scan() {
		n++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := ParseExample(line)
		if err != nil {
			return nil, fmt.Errorf("readExamples: line %d: %v", n, err)
		}
		if len(ret) > 0 && len(ret[0].X) != len(e.X) {
			return nil, fmt.Errorf("readExamples: line %d: %w: expected %d; got %d",
				n, ml.ErrDimensionMismatch, len(ret[0].X), len(e.X))
		}
		ret = append(ret, e)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("readExamples: %v", err)
	}
	return ret, nil
}

// ParseExample parses one example of the form `x1,x2,...,xk,label`.
// The label is parsed using strconv.ParseBool.
func ParseExample(line string) (ml.Example, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return ml.Example{}, fmt.Errorf("parseExample: bad line: %q", line)
	}
	label, err := strconv.ParseBool(strings.TrimSpace(fields[len(fields)-1]))
	if err != nil {
		return ml.Example{}, fmt.Errorf("parseExample: cannot parse label: %q", fields[len(fields)-1])
	}
	x, err := ParseVector(strings.Join(fields[:len(fields)-1], ","))
	if err != nil {
		return ml.Example{}, fmt.Errorf("parseExample: %v", err)
	}
	return ml.Example{X: x, Label: label}, nil
}

// ParseVector parses a comma separated list of floats.
func ParseVector(str string) ([]float64, error) {
	fields := strings.Split(str, ",")
	ret := make([]float64, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("parseVector: cannot parse float: %q", field)
		}
		ret[i] = f
	}
	return ret, nil
}

// FormatVector formats a vector as a comma separated list.
func FormatVector(x []float64) string {
	var b strings.Builder
	for i, f := range x {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return b.String()
}
