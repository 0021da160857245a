package yamlfile

import (
	"fmt"
	"io"

	"github.com/bboissin/thesis-bboissin/parcopy"
)

// BatchFile is the document holding parallel copy batches.
type BatchFile struct {
	Batches []BatchEntry `yaml:"batches"`
}

// BatchEntry is one batch as written in YAML. Spare may be omitted when the
// caller supplies a default.
type BatchEntry struct {
	Name   string     `yaml:"name,omitempty"`
	Spare  *uint32    `yaml:"spare,omitempty"`
	Copies [][]uint32 `yaml:"copies,flow"`
}

// DecodeBatches reads a BatchFile from r and converts it into batches.
// Batches without a spare use defaultSpare; if that is nil as well the
// batch is rejected with ErrMissingSpare. Unnamed batches are called
// batch-<index>.
func DecodeBatches(r io.Reader, defaultSpare *parcopy.Register) ([]parcopy.Batch, error) {
	var f BatchFile
	if err := decode(r, &f); err != nil {
		return nil, err
	}

	batches := make([]parcopy.Batch, 0, len(f.Batches))
	for i, entry := range f.Batches {
		b := parcopy.Batch{Name: entry.Name}
		if b.Name == "" {
			b.Name = fmt.Sprintf("batch-%d", i)
		}

		switch {
		case entry.Spare != nil:
			b.Spare = parcopy.Register(*entry.Spare)
		case defaultSpare != nil:
			b.Spare = *defaultSpare
		default:
			return nil, fmt.Errorf("%w: %q", ErrMissingSpare, b.Name)
		}

		b.Copies = make([]parcopy.RegisterCopy, 0, len(entry.Copies))
		for j, p := range entry.Copies {
			src, dst, err := pair(p, "copy", j)
			if err != nil {
				return nil, fmt.Errorf("batch %q: %w", b.Name, err)
			}
			b.Copies = append(b.Copies, parcopy.RegisterCopy{
				Source:      parcopy.Register(src),
				Destination: parcopy.Register(dst),
			})
		}
		batches = append(batches, b)
	}

	return batches, nil
}

// ResultFile is the document written for sequentialized batches.
type ResultFile struct {
	Results []ResultEntry `yaml:"results"`
}

// ResultEntry is one sequentialized batch as written in YAML.
type ResultEntry struct {
	Name      string     `yaml:"name"`
	Evictions int        `yaml:"evictions"`
	Copies    [][]uint32 `yaml:"copies,flow"`
}

// EncodeResults writes results to w as a ResultFile.
func EncodeResults(w io.Writer, results []parcopy.Result) error {
	f := ResultFile{Results: make([]ResultEntry, 0, len(results))}
	for _, res := range results {
		entry := ResultEntry{
			Name:      res.Name,
			Evictions: res.Evictions,
			Copies:    make([][]uint32, 0, len(res.Copies)),
		}
		for _, c := range res.Copies {
			entry.Copies = append(entry.Copies, []uint32{uint32(c.Source), uint32(c.Destination)})
		}
		f.Results = append(f.Results, entry)
	}

	return encode(w, f)
}
