package perceptron

import (
	"context"
	"fmt"
	"os"

	"git.sr.ht/~flobar/perceptron/pkg/perceptron/ml"
	"golang.org/x/sync/errgroup"
)

// StreamFunc is a type def for stream funcs.  A stream func reads
// examples from in and writes examples to out.  The out channel is
// closed after the function returns.  The first function in a pipe is
// called with a nil input channel.
type StreamFunc func(ctx context.Context, in <-chan ml.Example, out chan<- ml.Example) error

// Pipe pipes multiple stream funcs together and waits for all of them
// to finish.  It returns the first error encountered.
func Pipe(ctx context.Context, fns ...StreamFunc) error {
	if len(fns) == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	var in chan ml.Example
	for _, fn := range fns {
		out := make(chan ml.Example)
		func(fn StreamFunc, in <-chan ml.Example, out chan<- ml.Example) {
			g.Go(func() error {
				defer close(out)
				return fn(gctx, in, out)
			})
		}(fn, in, out)
		in = out
	}
	// Drain the last stage.
	g.Go(func() error {
		for range in {
		}
		return nil
	})
	return g.Wait()
}

// EachExample iterates over the examples in the input channel and
// calls the callback function for each example.
func EachExample(ctx context.Context, in <-chan ml.Example, f func(ml.Example) error) error {
	for {
		e, ok, err := ReadExample(ctx, in)
		if err != nil {
			return fmt.Errorf("eachExample: %v", err)
		}
		if !ok {
			return nil
		}
		if err := f(e); err != nil {
			return fmt.Errorf("eachExample: %w", err)
		}
	}
}

// ReadExample reads one example from the given channel.
func ReadExample(ctx context.Context, in <-chan ml.Example) (ml.Example, bool, error) {
	select {
	case e, ok := <-in:
		if !ok {
			return e, false, nil
		}
		return e, true, nil
	case <-ctx.Done():
		return ml.Example{}, false, fmt.Errorf("readExample: %v", ctx.Err())
	}
}

// SendExamples writes examples into the given output channel.
func SendExamples(ctx context.Context, out chan<- ml.Example, es ...ml.Example) error {
	for _, e := range es {
		select {
		case out <- e:
		case <-ctx.Done():
			return fmt.Errorf("sendExamples: %v", ctx.Err())
		}
	}
	return nil
}

// ReadFiles returns a stream func that reads the examples from the
// given csv files.  The files are read in parallel but the examples
// are sent in the order of the files.
func ReadFiles(paths ...string) StreamFunc {
	return func(ctx context.Context, _ <-chan ml.Example, out chan<- ml.Example) error {
		g, gctx := errgroup.WithContext(ctx)
		exs := make([][]ml.Example, len(paths))
		for i := range paths {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return fmt.Errorf("readFiles: %v", err)
				}
				e, err := readFile(paths[i])
				if err != nil {
					return fmt.Errorf("readFiles: %w", err)
				}
				exs[i] = e
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for i := range exs {
			Log("read %d examples from %s", len(exs[i]), paths[i])
			if err := SendExamples(ctx, out, exs[i]...); err != nil {
				return fmt.Errorf("readFiles: %v", err)
			}
		}
		return nil
	}
}

func readFile(path string) ([]ml.Example, error) {
	is, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readFile %s: %v", path, err)
	}
	defer is.Close()
	exs, err := ReadExamples(is)
	if err != nil {
		return nil, fmt.Errorf("readFile %s: %w", path, err)
	}
	return exs, nil
}

// CheckLen returns a stream func that makes sure that all examples
// have the same length as the first one.
func CheckLen() StreamFunc {
	return func(ctx context.Context, in <-chan ml.Example, out chan<- ml.Example) error {
		k := -1
		return EachExample(ctx, in, func(e ml.Example) error {
			if k == -1 {
				k = len(e.X)
			}
			if len(e.X) != k {
				return fmt.Errorf("checkLen: %w: expected %d; got %d",
					ml.ErrDimensionMismatch, k, len(e.X))
			}
			return SendExamples(ctx, out, e)
		})
	}
}

// Collect returns a stream func that appends all examples to the
// given slice.
func Collect(exs *[]ml.Example) StreamFunc {
	return func(ctx context.Context, in <-chan ml.Example, _ chan<- ml.Example) error {
		return EachExample(ctx, in, func(e ml.Example) error {
			*exs = append(*exs, e)
			return nil
		})
	}
}
