package internal

import (
	"context"
	"fmt"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron"
	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
	"github.com/spf13/cobra"
)

// Flags is used to define the standard command-line parameters for
// perceptron sub commands.
type Flags struct {
	Params       string  // Path to the configuration file
	InitWeight   float64 // Initial weight
	Threshold    float64 // Initial threshold
	LearningRate float64 // Learning rate
	MaxEpochs    int     // Epoch limit
	Verbose      bool    // Narrate training
}

// Init initializes the standard commandline arguments for the given
// subcommand.
func (flags *Flags) Init(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flags.Params, "parameters", "P", "",
		"set path to configuration file")
	cmd.Flags().Float64VarP(&flags.InitWeight, "init-weight", "w", 0,
		"set the initial weight (overwrites setting in the configuration file)")
	cmd.Flags().Float64VarP(&flags.Threshold, "threshold", "t", 0,
		"set the initial threshold (overwrites setting in the configuration file)")
	cmd.Flags().Float64VarP(&flags.LearningRate, "learning-rate", "r", 0,
		"set the learning rate (overwrites setting in the configuration file)")
	cmd.Flags().IntVarP(&flags.MaxEpochs, "max-epochs", "e", 0,
		"set the epoch limit (overwrites setting in the configuration file)")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"narrate the training (overwrites setting in the configuration file)")
}

// Config reads the configuration and applies the command line
// parameters.
func (flags *Flags) Config() (*Config, error) {
	c, err := ReadConfig(flags.Params)
	if err != nil {
		return nil, err
	}
	UpdateInConfig(&c.InitWeight, flags.InitWeight)
	UpdateInConfig(&c.Threshold, flags.Threshold)
	UpdateInConfig(&c.LearningRate, flags.LearningRate)
	UpdateInConfig(&c.MaxEpochs, flags.MaxEpochs)
	UpdateInConfig(&c.Verbose, flags.Verbose)
	return c, nil
}

// ReadExamples reads all examples from the given csv files.
func ReadExamples(ctx context.Context, paths ...string) ([]ml.Example, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("readExamples: no input files")
	}
	var exs []ml.Example
	err := perceptron.Pipe(ctx,
		perceptron.ReadFiles(paths...),
		perceptron.CheckLen(),
		perceptron.Collect(&exs))
	if err != nil {
		return nil, fmt.Errorf("readExamples: %w", err)
	}
	if len(exs) == 0 {
		return nil, fmt.Errorf("readExamples: no examples")
	}
	return exs, nil
}
