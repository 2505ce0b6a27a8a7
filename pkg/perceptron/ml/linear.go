package ml

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultMaxEpochs is the default epoch limit of the training loop.
const DefaultMaxEpochs = 1000

// Event describes one visited example during training.  Weights is a
// snapshot taken after any update for the example was applied.
type Event struct {
	Epoch     int
	Weights   []float64
	Threshold float64
	Example   Example
	Predicted bool
	Updated   bool
}

// Observer is called for every example visited during training.
type Observer func(Event)

// LinearClassifier implements a binary perceptron.  It classifies an
// input as true if the dot product of its weights and the input is at
// least its threshold.
//
// A LinearClassifier is not safe for concurrent use.  Train, Classify
// and the update methods must not be called concurrently on the same
// instance without external locking.
type LinearClassifier struct {
	// MaxEpochs limits the number of epochs.  The training loop stops
	// as soon as the epoch counter (starting at 1) reaches MaxEpochs.
	// If MaxEpochs <= 0, DefaultMaxEpochs is used.
	MaxEpochs int
	// Observer is notified about each visited example if not nil.
	Observer Observer

	weights      []float64
	threshold    float64
	learningRate float64
	epochs       int
}

// NewLinearClassifier creates a new classifier with k weights all set
// to initWeight.
func NewLinearClassifier(initWeight float64, k int, threshold, learningRate float64) (*LinearClassifier, error) {
	if k <= 0 {
		return nil, fmt.Errorf("newLinearClassifier: %w: k=%d", ErrInvalidArgument, k)
	}
	if !(learningRate > 0) {
		return nil, fmt.Errorf("newLinearClassifier: %w: learning rate=%g",
			ErrInvalidArgument, learningRate)
	}
	ws := make([]float64, k)
	for i := range ws {
		ws[i] = initWeight
	}
	return &LinearClassifier{
		weights:      ws,
		threshold:    threshold,
		learningRate: learningRate,
	}, nil
}

// Len returns the length of the weight vector.
func (c *LinearClassifier) Len() int {
	return len(c.weights)
}

// Weights returns a copy of the current weights.
func (c *LinearClassifier) Weights() []float64 {
	return append([]float64(nil), c.weights...)
}

// Threshold returns the current threshold.
func (c *LinearClassifier) Threshold() float64 {
	return c.threshold
}

// LearningRate returns the learning rate.
func (c *LinearClassifier) LearningRate() float64 {
	return c.learningRate
}

// Epochs returns the value of the epoch counter at the end of the last
// call to Train.
func (c *LinearClassifier) Epochs() int {
	return c.epochs
}

// Classify classifies the given input vector.
func (c *LinearClassifier) Classify(x []float64) (bool, error) {
	if len(x) != len(c.weights) {
		return false, dimErr("classify", len(c.weights), len(x))
	}
	return c.classify(x), nil
}

func (c *LinearClassifier) classify(x []float64) bool {
	return floats.Dot(c.weights, x) >= c.threshold
}

// AllCorrect returns true if all given examples are classified
// correctly.
func (c *LinearClassifier) AllCorrect(examples []Example) (bool, error) {
	if err := c.check("allCorrect", examples); err != nil {
		return false, err
	}
	return c.allCorrect(examples), nil
}

func (c *LinearClassifier) allCorrect(examples []Example) bool {
	for _, e := range examples {
		if c.classify(e.X) != e.Label {
			return false
		}
	}
	return true
}

// UpdateWeights adjusts the weights after the classification of x.
// If predicted is true but actual is false, the weights of the active
// inputs are lowered.  If predicted is false but actual is true, they
// are raised.  Nothing changes if predicted equals actual.
func (c *LinearClassifier) UpdateWeights(x []float64, predicted, actual bool) error {
	if len(x) != len(c.weights) {
		return dimErr("updateWeights", len(c.weights), len(x))
	}
	c.updateWeights(x, predicted, actual)
	return nil
}

func (c *LinearClassifier) updateWeights(x []float64, predicted, actual bool) {
	d := delta(predicted, actual)
	if d == 0 {
		return
	}
	floats.AddScaled(c.weights, c.learningRate*float64(d), x)
}

// UpdateThreshold adjusts the threshold after a classification.  A
// false positive raises the threshold, a false negative lowers it.
func (c *LinearClassifier) UpdateThreshold(predicted, actual bool) {
	d := delta(predicted, actual)
	if d == 0 {
		return
	}
	c.threshold -= c.learningRate * float64(d)
}

// Train runs the perceptron learning rule over the examples until all
// of them are classified correctly or the epoch limit is reached.  It
// returns true if all examples are classified correctly.  Reaching the
// epoch limit is not an error.  Calling Train again continues with the
// current weights and threshold.
func (c *LinearClassifier) Train(examples []Example) (bool, error) {
	if err := c.check("train", examples); err != nil {
		return false, err
	}
	max := c.MaxEpochs
	if max <= 0 {
		max = DefaultMaxEpochs
	}
	c.epochs = 1
	correct := c.allCorrect(examples)
	for !correct && c.epochs < max {
		for _, e := range examples {
			predicted := c.classify(e.X)
			update := predicted != e.Label
			if update {
				c.updateWeights(e.X, predicted, e.Label)
				c.UpdateThreshold(predicted, e.Label)
			}
			c.notify(e, predicted, update)
		}
		c.epochs++
		correct = c.allCorrect(examples)
	}
	return correct, nil
}

func (c *LinearClassifier) notify(e Example, predicted, updated bool) {
	if c.Observer == nil {
		return
	}
	c.Observer(Event{
		Epoch:     c.epochs,
		Weights:   c.Weights(),
		Threshold: c.threshold,
		Example:   e,
		Predicted: predicted,
		Updated:   updated,
	})
}

// Accuracy returns the fraction of correctly classified examples.
// It returns 0 for an empty list of examples.
func (c *LinearClassifier) Accuracy(examples []Example) (float64, error) {
	if err := c.check("accuracy", examples); err != nil {
		return 0, err
	}
	if len(examples) == 0 {
		return 0, nil
	}
	var n int
	for _, e := range examples {
		if c.classify(e.X) == e.Label {
			n++
		}
	}
	return float64(n) / float64(len(examples)), nil
}

// Predict classifies each row of x and returns True or False for each
// row.
func (c *LinearClassifier) Predict(x *mat.Dense) (*mat.VecDense, error) {
	r, cols := x.Dims()
	if cols != len(c.weights) {
		return nil, dimErr("predict", len(c.weights), cols)
	}
	ret := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		ret.SetVec(i, Bool(c.classify(x.RawRowView(i))))
	}
	return ret, nil
}

// Fit trains the classifier on the rows of x with the labels in y and
// returns the final training error rate.
func (c *LinearClassifier) Fit(x *mat.Dense, y *mat.VecDense) (float64, error) {
	examples, err := Examples(x, y)
	if err != nil {
		return 0, fmt.Errorf("fit: %w", err)
	}
	if _, err := c.Train(examples); err != nil {
		return 0, fmt.Errorf("fit: %w", err)
	}
	acc, err := c.Accuracy(examples)
	if err != nil {
		return 0, fmt.Errorf("fit: %w", err)
	}
	if len(examples) == 0 {
		return 0, nil
	}
	return 1 - acc, nil
}

func (c *LinearClassifier) check(op string, examples []Example) error {
	for i, e := range examples {
		if len(e.X) != len(c.weights) {
			return fmt.Errorf("%s: example %d: %w", op, i+1, dimErr("", len(c.weights), len(e.X)))
		}
	}
	return nil
}

// delta returns actual - predicted with true = 1 and false = 0.
func delta(predicted, actual bool) int {
	return b2i(actual) - b2i(predicted)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func dimErr(op string, want, got int) error {
	if op == "" {
		return fmt.Errorf("%w: expected %d; got %d", ErrDimensionMismatch, want, got)
	}
	return fmt.Errorf("%s: %w: expected %d; got %d", op, ErrDimensionMismatch, want, got)
}
