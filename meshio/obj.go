// SPDX-License-Identifier: MIT

package meshio

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/orthotools/segkit/mesh"
)

// maxLine bounds a single text line.
const maxLine = 1 << 20

// scanLines calls fn for every line of r with its 1-based number.
// Anything after a '#' is dropped and the rest is trimmed; blank lines are skipped.
func scanLines(r io.Reader, name string, fn func(no int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	no := 0
	for sc.Scan() {
		no++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := fn(no, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return formatError(name, no+1, "%v", err)
	}
	return nil
}

// parseVec reads three finite floats from fields.
func parseVec(fields []string) (r3.Vec, bool) {
	if len(fields) < 3 {
		return r3.Vec{}, false
	}
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return r3.Vec{}, false
		}
		xyz[i] = f
	}
	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, true
}

// ReadOBJ parses a Wavefront OBJ mesh from r. name is used in error messages.
// Non-triangle faces fail with mesh.ErrNonTriangleFace; topological problems
// with mesh.ErrInvalidMesh.
func ReadOBJ(r io.Reader, name string) (*mesh.Mesh, error) {
	var (
		vertices []r3.Vec
		polygons [][]int
	)
	err := scanLines(r, name, func(no int, line string) error {
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, ok := parseVec(fields[1:])
			if !ok {
				return formatError(name, no, "bad vertex %q", line)
			}
			vertices = append(vertices, p)
		case "f":
			if len(fields) < 4 {
				return formatError(name, no, "face needs at least 3 corners")
			}
			poly := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				idx, err := faceIndex(tok, len(vertices))
				if err != nil {
					return formatError(name, no, "face corner %q: %v", tok, err)
				}
				poly = append(poly, idx)
			}
			polygons = append(polygons, poly)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mesh.FromPolygons(vertices, polygons)
}

// faceIndex converts an OBJ face corner ("7", "7/2", "7/2/5", "7//5", "-1")
// into a 0-based vertex index given the number of vertices read so far.
func faceIndex(tok string, seen int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	switch {
	case n > 0:
		return n - 1, nil
	case n < 0:
		if seen+n < 0 {
			return 0, strconv.ErrRange
		}
		return seen + n, nil
	}
	return 0, strconv.ErrSyntax
}

// LoadOBJ reads the OBJ mesh at path.
func LoadOBJ(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(err)
	}
	defer f.Close()
	return ReadOBJ(f, path)
}
