package rbxlx

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/Faultbox/blsconv/internal/scene"
)

// Compression selects how an output file is compressed.
type Compression string

// Supported compressions.
const (
	CompressNone Compression = "none"
	CompressGzip Compression = "gzip"
	CompressZstd Compression = "zstd"
)

// ErrUnknownCompression is returned for unsupported compression names.
var ErrUnknownCompression = errors.New("unknown compression")

// ParseCompression parses a compression name. The empty string means none.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(s); c {
	case "", CompressNone:
		return CompressNone, nil
	case CompressGzip, CompressZstd:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

// Extension returns the file suffix conventionally added for c.
func (c Compression) Extension() string {
	switch c {
	case CompressGzip:
		return ".gz"
	case CompressZstd:
		return ".zst"
	}
	return ""
}

// compressedFile closes the compressor before the file.
type compressedFile struct {
	io.WriteCloser
	f *os.File
}

func (c *compressedFile) Close() error {
	err := c.WriteCloser.Close()
	if cerr := c.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Create creates path for writing, wrapped in the given compression.
func Create(path string, c Compression) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}

	var w io.WriteCloser
	switch c {
	case "", CompressNone:
		return f, nil
	case CompressGzip:
		w = gzip.NewWriter(f)
	case CompressZstd:
		w, err = zstd.NewWriter(f)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	return &compressedFile{WriteCloser: w, f: f}, nil
}

// WriteFile encodes nodes as a place and writes it to path.
func WriteFile(path string, nodes []*scene.Node, c Compression) error {
	w, err := Create(path, c)
	if err != nil {
		return err
	}
	if err := NewEncoder(w).Encode(nodes); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}
