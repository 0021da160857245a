// Package yamlfile reads and writes the YAML documents of the parcopy
// command: copy batches, sequentialized results, control-flow graphs and
// their depth-first numbering.
//
// Registers and nodes are written as integers and a copy or an edge as a
// two-element sequence [from, to]:
//
//	batches:
//	  - name: b1->b3
//	    spare: 9
//	    copies: [[1, 2], [2, 3], [3, 1]]
//
//	root: 0
//	edges: [[0, 1], [1, 2], [2, 1]]
package yamlfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingSpare indicates a batch without a spare register and no
	// default to fall back on.
	ErrMissingSpare = errors.New("yamlfile: batch has no spare register")

	// ErrBadPair indicates a copy or edge that is not a [from, to] pair.
	ErrBadPair = errors.New("yamlfile: expected a [from, to] pair")
)

// decode reads exactly one YAML document from r into out, rejecting
// unknown fields.
func decode(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("yamlfile: empty document")
		}

		return fmt.Errorf("yamlfile: decode: %w", err)
	}

	return nil
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yamlfile: encode: %w", err)
	}

	return enc.Close()
}

// pair validates a [from, to] sequence.
func pair(p []uint32, what string, i int) (uint32, uint32, error) {
	if len(p) != 2 {
		return 0, 0, fmt.Errorf("%w: %s %d has %d elements", ErrBadPair, what, i, len(p))
	}

	return p[0], p[1], nil
}
