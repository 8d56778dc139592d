package convert

import (
	"io"

	"github.com/Faultbox/blsconv/internal/brick"
	"github.com/Faultbox/blsconv/pkg/formats"
)

// Source yields brick records in save order. Next returns io.EOF after
// the last record.
type Source interface {
	Next() (brick.Record, error)
}

// Sizer is implemented by sources that know roughly how many records
// they hold. The count drives progress reporting only.
type Sizer interface {
	Len() int
}

// BLSSource adapts a save reader.
type BLSSource struct {
	r *formats.BLSReader
}

// NewBLSSource wraps a save reader whose header has been read.
func NewBLSSource(r *formats.BLSReader) *BLSSource {
	return &BLSSource{r: r}
}

// Next returns the next brick of the save.
func (s *BLSSource) Next() (brick.Record, error) {
	b, err := s.r.Next()
	if err != nil {
		return brick.Record{}, err
	}
	return brick.FromBLS(b), nil
}

// Len returns the declared brick count.
func (s *BLSSource) Len() int {
	return s.r.LineCount
}

// Palette returns the save's palette.
func (s *BLSSource) Palette() brick.Palette {
	return brick.PaletteFromBLS(s.r.Colors)
}

type sliceSource struct {
	records []brick.Record
	next    int
}

// Records returns a source over a fixed list of records.
func Records(records ...brick.Record) Source {
	return &sliceSource{records: records}
}

func (s *sliceSource) Next() (brick.Record, error) {
	if s.next >= len(s.records) {
		return brick.Record{}, io.EOF
	}
	r := s.records[s.next]
	s.next++
	return r, nil
}

func (s *sliceSource) Len() int {
	return len(s.records)
}
