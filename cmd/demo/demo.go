package demo

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron"
	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
	"github.com/spf13/cobra"
)

func init() {
	CMD.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "narrate the training")
}

var flags = struct {
	verbose bool
}{}

// CMD defines the perceptron demo command.
var CMD = &cobra.Command{
	Use:   "demo",
	Short: "Train a perceptron on a small example set",
	Run:   run,
}

// Examples is the demo's training set.
var Examples = []ml.Example{
	{X: []float64{0, 1, 0}, Label: true},
	{X: []float64{1, 1, 0}, Label: true},
	{X: []float64{1, 0, 0}, Label: true},
	{X: []float64{0, 0, 0}, Label: true},
	{X: []float64{0, 0, 1}, Label: false},
	{X: []float64{1, 1, 1}, Label: false},
}

// Unseen is classified after the training.
var Unseen = ml.Example{X: []float64{1, 0, 1}, Label: false}

func run(_ *cobra.Command, args []string) {
	perceptron.SetLog(flags.verbose)
	ok, err := Run(os.Stdout, flags.verbose)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	if !ok {
		os.Exit(1)
	}
}

// Run trains a perceptron with initial weights and threshold of 0 and
// a learning rate of 1 on the demo examples.  Afterwards the unseen
// example is classified.
func Run(out io.Writer, verbose bool) (bool, error) {
	lc, err := ml.NewLinearClassifier(0, 3, 0, 1)
	if err != nil {
		return false, fmt.Errorf("demo: %w", err)
	}
	if verbose {
		lc.Observer = perceptron.Chain(perceptron.Narrator(out, lc), perceptron.LogObserver())
	}
	ok, err := lc.Train(Examples)
	if err != nil {
		return false, fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintf(out, "Training done after %d epochs.\nWeights: %v\nThreshold: %g\n",
		lc.Epochs(), lc.Weights(), lc.Threshold())
	if ok {
		fmt.Fprintln(out, "All correct!")
	} else {
		fmt.Fprintln(out, "Not all correct, something went wrong!")
	}
	got, err := lc.Classify(Unseen.X)
	if err != nil {
		return false, fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintf(out, "\nPost-training example: %v\nOutput: %t\n", Unseen.X, got)
	if got == Unseen.Label {
		fmt.Fprintln(out, "Correct!")
	} else {
		fmt.Fprintln(out, "Incorrect.")
	}
	return ok, nil
}
