package train

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~flobar/perceptron/cmd/internal"
	"git.sr.ht/~flobar/perceptron/pkg/perceptron"
	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
	"github.com/spf13/cobra"
)

func init() {
	flags.Flags.Init(CMD)
	CMD.Flags().StringArrayVarP(&flags.inputs, "input", "i", nil,
		"classify the given comma separated vector after training (can be repeated)")
}

var flags = struct {
	internal.Flags
	inputs []string
}{}

// CMD defines the perceptron train command.
var CMD = &cobra.Command{
	Use:   "train [FILE...]",
	Short: "Train a perceptron on csv encoded examples",
	Args:  cobra.MinimumNArgs(1),
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Config()
	chk(err)
	perceptron.SetLog(true)
	exs, err := internal.ReadExamples(context.Background(), args...)
	chk(err)
	lc, err := c.NewClassifier(len(exs[0].X))
	chk(err)
	inputs := make([][]float64, len(flags.inputs))
	for i := range flags.inputs {
		inputs[i], err = perceptron.ParseVector(flags.inputs[i])
		chk(err)
	}
	ok, err := Train(os.Stdout, c, lc, exs)
	chk(err)
	for _, x := range inputs {
		got, err := lc.Classify(x)
		chk(err)
		fmt.Printf("Input %v\nOutput: %t\n", x, got)
	}
	if !ok {
		os.Exit(1)
	}
}

// Train trains the classifier and writes a summary of the training
// to out.  If verbose output is configured, the training is narrated.
func Train(out io.Writer, c *internal.Config, lc *ml.LinearClassifier, exs []ml.Example) (bool, error) {
	fmt.Fprintf(out, "Initial Weights: %v\nInitial Threshold: %g\n\n", lc.Weights(), lc.Threshold())
	var narrator ml.Observer
	if c.Verbose {
		narrator = perceptron.Narrator(out, lc)
	}
	lc.Observer = narrator
	perceptron.Log("training on %d examples: k=%d lr=%g max-epochs=%d",
		len(exs), lc.Len(), lc.LearningRate(), c.MaxEpochs)
	ok, err := lc.Train(exs)
	if err != nil {
		return false, fmt.Errorf("train: %w", err)
	}
	perceptron.Log("training done after %d epochs", lc.Epochs())
	fmt.Fprintf(out, "Training done.\nWeights: %v\nThreshold: %g\n\n", lc.Weights(), lc.Threshold())
	for _, e := range exs {
		got, err := lc.Classify(e.X)
		if err != nil {
			return false, fmt.Errorf("train: %w", err)
		}
		fmt.Fprintf(out, "Example %v %t\nOutput: %t\n", e.X, e.Label, got)
	}
	if ok {
		fmt.Fprintln(out, "\nAll correct!")
	} else {
		fmt.Fprintln(out, "\nNot all correct, something went wrong!")
	}
	return ok, nil
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
