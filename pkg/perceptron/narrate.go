package perceptron

import (
	"fmt"
	"io"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
)

// Narrator returns an observer that writes the progress of the
// training of the given classifier to w.  For each epoch the weights
// and threshold at the start of the epoch are written, followed by
// the verdict for each visited example.
func Narrator(w io.Writer, c *ml.LinearClassifier) ml.Observer {
	epoch := 0
	weights, threshold := c.Weights(), c.Threshold()
	return func(e ml.Event) {
		if e.Epoch != epoch {
			epoch = e.Epoch
			fmt.Fprintf(w, "Epoch %d:\nWeights: %v\nThreshold: %g\n\n", epoch, weights, threshold)
		}
		fmt.Fprintf(w, "Example %v\nExpected output: %t\nOutput: %t\n",
			e.Example.X, e.Example.Label, e.Predicted)
		if e.Updated {
			fmt.Fprintln(w, "Incorrect - updating weights")
		} else {
			fmt.Fprintln(w, "Correct!")
		}
		weights, threshold = e.Weights, e.Threshold
		fmt.Fprintf(w, "Weights: %v\nThreshold: %g\n\n", weights, threshold)
	}
}

// LogObserver returns an observer that logs one line for each
// misclassified example using Log.
func LogObserver() ml.Observer {
	return func(e ml.Event) {
		if !e.Updated {
			return
		}
		Log("epoch %d: misclassified [%s]: weights=[%s] threshold=%g",
			e.Epoch, FormatVector(e.Example.X), FormatVector(e.Weights), e.Threshold)
	}
}

// Chain combines multiple observers into one.  Nil observers are
// skipped.
func Chain(observers ...ml.Observer) ml.Observer {
	return func(e ml.Event) {
		for _, o := range observers {
			if o != nil {
				o(e)
			}
		}
	}
}
