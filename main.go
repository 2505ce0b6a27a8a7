package main

import (
	"git.sr.ht/~flobar/perceptron/cmd/demo"
	"git.sr.ht/~flobar/perceptron/cmd/eval"
	"git.sr.ht/~flobar/perceptron/cmd/train"
	"git.sr.ht/~flobar/perceptron/cmd/version"
	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:   "perceptron",
	Short: "Train and apply binary linear classifiers",
}

func init() {
	root.AddCommand(
		demo.CMD,
		eval.CMD,
		train.CMD,
		version.CMD,
	)
}

func main() {
	root.Execute()
}
