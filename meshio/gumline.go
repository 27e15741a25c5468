// SPDX-License-Identifier: MIT

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadGumline returns the "v x y z" points of r in file order.
// Every other statement is ignored. A vertex line without three finite numbers
// fails with ErrFileFormat.
func ReadGumline(r io.Reader, name string) ([]r3.Vec, error) {
	var pts []r3.Vec
	err := scanLines(r, name, func(no int, line string) error {
		fields := strings.Fields(line)
		if fields[0] != "v" {
			return nil
		}
		p, ok := parseVec(fields[1:])
		if !ok {
			return formatError(name, no, "bad vertex %q", line)
		}
		pts = append(pts, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pts, nil
}

// LoadGumline reads the gumline at path.
func LoadGumline(path string) ([]r3.Vec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(err)
	}
	defer f.Close()
	return ReadGumline(f, path)
}

// WriteGumline writes pts as OBJ vertices followed by one closed polyline
// statement joining them in order.
func WriteGumline(w io.Writer, pts []r3.Vec) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	if len(pts) > 1 {
		bw.WriteString("l")
		for i := range pts {
			bw.WriteString(" " + strconv.Itoa(i+1))
		}
		bw.WriteString(" 1\n")
	}
	return bw.Flush()
}

// SaveGumline writes pts to path.
func SaveGumline(path string, pts []r3.Vec) error {
	f, err := os.Create(path)
	if err != nil {
		return openError(err)
	}
	if err := WriteGumline(f, pts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
