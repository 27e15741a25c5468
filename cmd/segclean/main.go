// segclean removes small, isolated label islands from the per-vertex labels
// of a triangle mesh.
//
// Every vertex of a component smaller than min(-threshold, largest component
// of its label) takes the label of the nearest differently-labeled vertex
// around the component. The cleaned labels are written to -out; for JSON
// label files every member other than "labels" is copied from the input.
//
// Usage:
//
//	segclean -mesh scan.obj -labels scan.json -out scan_clean.json [-threshold 30] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/orthotools/segkit/meshio"
	"github.com/orthotools/segkit/segclean"
)

const defaultThreshold = 30

func main() {
	check(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("segclean", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		meshPath   = fs.String("mesh", "", "input triangle mesh (.obj)")
		labelsPath = fs.String("labels", "", "input per-vertex labels (.json, or one label per line)")
		outPath    = fs.String("out", "", "output labels path")
		threshold  = fs.Int("threshold", defaultThreshold, "component size threshold in vertices")
		verbose    = fs.Bool("v", false, "log every cleaned component")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	switch {
	case *meshPath == "" || *labelsPath == "" || *outPath == "":
		return errors.New("-mesh, -labels and -out are required")
	case *threshold <= 0:
		return fmt.Errorf("-threshold must be positive, got %d", *threshold)
	}

	logger := log.New(stdout, "", 0)

	m, err := meshio.LoadOBJ(*meshPath)
	if err != nil {
		return fmt.Errorf("cannot read mesh: %w", err)
	}
	logger.Printf("Load mesh: V = %d, F = %d", m.NumVertices(), m.NumFaces())

	lf, err := meshio.LoadLabels(*labelsPath)
	if err != nil {
		return fmt.Errorf("cannot read labels: %w", err)
	}

	if *verbose {
		st := m.Stats()
		logger.Printf("  edges = %d, boundary edges = %d, isolated vertices = %d",
			st.Edges, st.BoundaryEdges, st.Isolated)
	}

	opts := []segclean.Option{
		segclean.WithOnExtract(func(comps []segclean.Component) {
			logger.Printf("Found %d connected components by label", len(comps))
		}),
	}
	if *verbose {
		opts = append(opts, segclean.WithOnClean(func(ev segclean.CleanEvent) {
			if ev.Skipped() {
				logger.Printf("  label %d at vertex %d: %d vertices, no other label around, kept",
					ev.Component.Label, ev.Component.Seed(), ev.Component.Size())
				return
			}
			logger.Printf("  label %d at vertex %d: %d vertices < %d, %d relabeled",
				ev.Component.Label, ev.Component.Seed(), ev.Component.Size(), ev.Cap, ev.Relabeled)
		}))
	}
	rep, err := segclean.Run(m, lf.Labels, *threshold, opts...)
	if err != nil {
		return fmt.Errorf("failed to clean labels: %w", err)
	}
	logger.Printf("Cleaned %d small components.", rep.Cleaned)
	logger.Printf("Relabeled %d vertices, kept %d isolated components, %d labels, mean component size %.2f",
		rep.Relabeled, rep.Skipped, rep.Labels, rep.MeanSize)

	if err := meshio.SaveLabels(*outPath, lf); err != nil {
		return fmt.Errorf("cannot write labels: %w", err)
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
	fmt.Fprintln(os.Stderr, red("segclean: "+err.Error()))
	os.Exit(1)
}
