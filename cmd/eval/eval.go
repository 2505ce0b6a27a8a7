package eval

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
	"gonum.org/v1/gonum/mat"
)

func init() {
	flags.Flags.Init(CMD)
	CMD.Flags().StringVarP(&flags.training, "training", "T", "",
		"set the path to the csv training file")
	CMD.MarkFlagRequired("training")
}

var flags = struct {
	internal.Flags
	training string
}{}

// CMD defines the perceptron eval command.
var CMD = &cobra.Command{
	Use:   "eval [FILE...]",
	Short: "Train a perceptron and evaluate it on test files",
	Args:  cobra.MinimumNArgs(1),
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Config()
	chk(err)
	perceptron.SetLog(c.Verbose)
	ctx := context.Background()
	train, err := internal.ReadExamples(ctx, flags.training)
	chk(err)
	lc, err := c.NewClassifier(len(train[0].X))
	chk(err)
	lc.Observer = perceptron.LogObserver()
	x, y := matrix(train)
	rate, err := lc.Fit(x, y)
	chk(err)
	log.Printf("eval: trained on %d examples in %d epochs, error rate %f",
		len(train), lc.Epochs(), rate)
	for _, arg := range args {
		test, err := internal.ReadExamples(ctx, arg)
		chk(err)
		var s stats
		chk(s.eval(lc, test))
		chk(s.print(os.Stdout, arg))
	}
}

func matrix(exs []ml.Example) (*mat.Dense, *mat.VecDense) {
	k := len(exs[0].X)
	xs := make([]float64, 0, len(exs)*k)
	ys := make([]float64, len(exs))
	for i, e := range exs {
		xs = append(xs, e.X...)
		ys[i] = ml.Bool(e.Label)
	}
	return mat.NewDense(len(exs), k, xs), mat.NewVecDense(len(exs), ys)
}

type stats struct {
	tn, tp, fn, fp int
}

type typ int

const (
	tp typ = iota
	tn
	fp
	fn
)

func (s *stats) eval(p ml.Predictor, exs []ml.Example) error {
	x, y := matrix(exs)
	ps, err := p.Predict(x)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	for i := 0; i < y.Len(); i++ {
		s.add(y.AtVec(i), ps.AtVec(i))
	}
	return nil
}

func (s *stats) add(y, p float64) typ {
	if y == ml.True {
		if y == p {
			s.tp++
			return tp
		}
		s.fn++
		return fn
	}
	if y == p {
		s.tn++
		return tn
	}
	s.fp++
	return fp
}

func (s *stats) accuracy() float64 {
	n := s.tp + s.tn + s.fp + s.fn
	if n == 0 {
		return 0
	}
	return float64(s.tp+s.tn) / float64(n)
}

func (s *stats) recall() float64 {
	if s.tp == 0 && s.fn == 0 {
		return 0
	}
	return float64(s.tp) / float64(s.tp+s.fn)
}

func (s *stats) precision() float64 {
	if s.tp == 0 && s.fp == 0 {
		return 0
	}
	return float64(s.tp) / float64(s.tp+s.fp)
}

func (s *stats) f1() float64 {
	p, r := s.precision(), s.recall()
	if p == 0 && r == 0 {
		return 0
	}
	return (2 * p * r) / (p + r)
}

func (s *stats) print(out io.Writer, name string) error {
	f := formater{out: out}
	f.printf("%s tp %d\n", name, s.tp)
	f.printf("%s fp %d\n", name, s.fp)
	f.printf("%s tn %d\n", name, s.tn)
	f.printf("%s fn %d\n", name, s.fn)
	f.printf("%s ac %f\n", name, s.accuracy())
	f.printf("%s pr %f\n", name, s.precision())
	f.printf("%s re %f\n", name, s.recall())
	f.printf("%s f1 %f\n", name, s.f1())
	return f.err
}

type formater struct {
	out io.Writer
	err error
}

func (f *formater) printf(format string, args ...interface{}) {
	if f.err != nil {
		return
	}
	_, err := fmt.Fprintf(f.out, format, args...)
	f.err = err
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
