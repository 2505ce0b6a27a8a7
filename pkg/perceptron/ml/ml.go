package ml

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Predefined values for true and false.
const (
	False = float64(0)
	True  = float64(1)
)

// Bool converts a bool to a value representing false or true.
func Bool(t bool) float64 {
	if t {
		return True
	}
	return False
}

// Errors returned by the classifier.  Callers should check them with
// errors.Is since they are always wrapped.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Predictor predicts one value for each row of a feature matrix.
type Predictor interface {
	Predict(x *mat.Dense) (*mat.VecDense, error)
}

// Fitter fits a model to the rows of x and the values y and returns
// the final training error.
type Fitter interface {
	Fit(x *mat.Dense, y *mat.VecDense) (float64, error)
}

// Example is a labeled input vector.
type Example struct {
	X     []float64
	Label bool
}

// Examples converts the rows of x and the according values in y into
// a list of examples.  Any value in y that is not 0 is treated as
// true.  The returned examples share their memory with x.
func Examples(x *mat.Dense, y *mat.VecDense) ([]Example, error) {
	r, _ := x.Dims()
	if r != y.Len() {
		return nil, dimErr("examples", y.Len(), r)
	}
	ret := make([]Example, r)
	for i := range ret {
		ret[i] = Example{X: x.RawRowView(i), Label: y.AtVec(i) != False}
	}
	return ret, nil
}
