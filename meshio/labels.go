// SPDX-License-Identifier: MIT

package meshio

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// labelsKey is the JSON member holding the per-vertex labels.
const labelsKey = "labels"

// LabelFile is a per-vertex label array together with the rest of the JSON
// document it came from, so that writing it back changes only the labels.
type LabelFile struct {
	Labels []int

	fields map[string]json.RawMessage
}

// NewLabelFile wraps labels in a document without other members.
func NewLabelFile(labels []int) *LabelFile {
	return &LabelFile{Labels: labels}
}

// ReadLabelsJSON decodes a JSON label document from r.
func ReadLabelsJSON(r io.Reader, name string) (*LabelFile, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return nil, formatError(name, 0, "%v", err)
	}
	raw, ok := fields[labelsKey]
	if !ok {
		return nil, formatError(name, 0, "missing %q member", labelsKey)
	}
	var labels []int
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, formatError(name, 0, "%q: %v", labelsKey, err)
	}
	for i, l := range labels {
		if l < 0 {
			return nil, formatError(name, 0, "negative label %d at vertex %d", l, i)
		}
	}
	delete(fields, labelsKey)
	return &LabelFile{Labels: labels, fields: fields}, nil
}

// ReadLabelsText reads one non-negative integer label per line.
func ReadLabelsText(r io.Reader, name string) (*LabelFile, error) {
	var labels []int
	err := scanLines(r, name, func(no int, line string) error {
		l, err := strconv.Atoi(line)
		if err != nil || l < 0 {
			return formatError(name, no, "bad label %q", line)
		}
		labels = append(labels, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &LabelFile{Labels: labels}, nil
}

// WriteJSON encodes the document with its current labels.
func (lf *LabelFile) WriteJSON(w io.Writer) error {
	doc := make(map[string]any, len(lf.fields)+1)
	for k, v := range lf.fields {
		doc[k] = v
	}
	labels := lf.Labels
	if labels == nil {
		labels = []int{}
	}
	doc[labelsKey] = labels
	return json.NewEncoder(w).Encode(doc)
}

// WriteText writes one label per line.
func (lf *LabelFile) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, l := range lf.Labels {
		bw.WriteString(strconv.Itoa(l))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// isJSON reports whether path names a JSON label document.
func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// LoadLabels reads the label file at path; .json files are decoded as JSON
// documents, anything else as plain text.
func LoadLabels(path string) (*LabelFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(err)
	}
	defer f.Close()
	if isJSON(path) {
		return ReadLabelsJSON(f, path)
	}
	return ReadLabelsText(f, path)
}

// SaveLabels writes lf to path in the format its extension selects.
func SaveLabels(path string, lf *LabelFile) error {
	f, err := os.Create(path)
	if err != nil {
		return openError(err)
	}
	if isJSON(path) {
		err = lf.WriteJSON(f)
	} else {
		err = lf.WriteText(f)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
