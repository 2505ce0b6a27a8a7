package version

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// CMD defines the perceptron version command.
var CMD = &cobra.Command{
	Use:   "version",
	Short: "Print perceptron's version",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	fmt.Printf("%s version: %s [%s/%s]\n", os.Args[0], version, runtime.GOOS, runtime.GOARCH)
}
