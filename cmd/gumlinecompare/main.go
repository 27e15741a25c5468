// gumlinecompare measures how far one or more source gumlines lie from a
// target gumline.
//
// Gumlines are OBJ files whose "v" lines list the curve points in traversal
// order; the curve is closed from the last point back to the first. The
// distance is the length-weighted mean gap from the source to the target and
// is not symmetric; -both also reports the reverse direction and the mean.
// -closest writes the source points moved onto the target as a gumline file.
//
// Usage:
//
//	gumlinecompare -s source.obj -t target.obj [-both] [-closest out.obj] [-workers n] [more sources...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/fatih/color"

	"github.com/orthotools/segkit/curve"
	"github.com/orthotools/segkit/meshio"
)

func main() {
	check(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gumlinecompare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		source  = fs.String("s", "", "source gumline")
		target  = fs.String("t", "", "target gumline")
		both    = fs.Bool("both", false, "also report target->source and the mean")
		workers = fs.Int("workers", runtime.NumCPU(), "closest-point query goroutines")
		closest = fs.String("closest", "", "write the source projected onto the target to this path")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *source == "" || *target == "" {
		return errors.New("-s and -t are required")
	}
	sources := append([]string{*source}, fs.Args()...)
	if *closest != "" && len(sources) > 1 {
		return errors.New("-closest takes a single source")
	}
	opts := []curve.Option{curve.WithWorkers(*workers)}

	logger := log.New(stdout, "", 0)

	tgt, err := meshio.LoadGumline(*target)
	if err != nil {
		return err
	}
	ix, err := curve.NewIndex(tgt)
	if err != nil {
		return fmt.Errorf("%s: %w", *target, err)
	}

	for _, path := range sources {
		src, err := meshio.LoadGumline(path)
		if err != nil {
			return err
		}
		prefix := ""
		if len(sources) > 1 {
			prefix = path + " "
		}

		if *both {
			cmp, err := curve.CompareTo(src, ix, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Printf("%sDist = %.6g, reverse = %.6g, mean = %.6g", prefix, cmp.Forward, cmp.Backward, cmp.Mean)
		} else {
			d, err := curve.DistanceTo(src, ix, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Printf("%sDist = %.6g", prefix, d)
		}

		if *closest != "" {
			proj, err := curve.Project(src, ix)
			if err != nil {
				return err
			}
			if err := meshio.SaveGumline(*closest, proj); err != nil {
				return fmt.Errorf("cannot write %s: %w", *closest, err)
			}
		}
	}
	return nil
}

func check(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(os.Stderr, red("gumlinecompare: "+err.Error()))
	os.Exit(1)
}
