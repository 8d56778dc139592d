// Package formats provides parsers for Blockland file formats.
// BLS (Blockland save) text format reader.
package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/blsconv/pkg/encoding"
)

// BLS format errors.
var (
	ErrInvalidBLSHeader = errors.New("invalid BLS header")
	ErrTruncatedBLS     = errors.New("truncated BLS data")
	ErrInvalidBrickLine = errors.New("invalid BLS brick line")
)

// BLSPaletteSize is the number of entries in a save's color palette.
const BLSPaletteSize = 64

const blsHeaderPrefix = "This is a Blockland save file."

// BLSColor is an RGBA palette entry with components in [0, 1].
type BLSColor [4]float32

// BLSBrick is a single brick placement from a save file.
type BLSBrick struct {
	UIName      string     // Brick datablock UI name, e.g. "2x4" or "45° Ramp 2x"
	Position    [3]float32 // Grid position (z is up)
	Angle       uint8      // Quantized facing 0-3
	IsBaseplate bool
	ColorIndex  uint8 // Index into the palette
	Print       string
	ColorFx     uint8
	ShapeFx     uint8
	Raycasting  bool
	Collision   bool
	Rendering   bool
}

// BLSReader streams bricks from a BLS save. The header (description,
// palette and line count) is read eagerly by NewBLSReader.
type BLSReader struct {
	r           *bufio.Reader
	closer      io.Closer
	line        int
	Description []string
	Colors      [BLSPaletteSize]BLSColor
	LineCount   int // Declared brick count, a hint only
}

// NewBLSReader reads the save header from r.
func NewBLSReader(r io.Reader) (*BLSReader, error) {
	br := &BLSReader{r: bufio.NewReader(r)}
	if err := br.readHeader(); err != nil {
		return nil, err
	}
	return br, nil
}

// OpenBLSFile opens a BLS save from disk. Close must be called when done.
func OpenBLSFile(path string) (*BLSReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening BLS file: %w", err)
	}
	br, err := NewBLSReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	br.closer = f
	return br, nil
}

// Close closes the underlying file, if the reader owns one.
func (br *BLSReader) Close() error {
	if br.closer == nil {
		return nil
	}
	return br.closer.Close()
}

func (br *BLSReader) readLine() (string, error) {
	raw, err := br.r.ReadBytes('\n')
	if err == io.EOF && len(raw) > 0 {
		err = nil
	}
	if err != nil {
		return "", err
	}
	br.line++
	return encoding.TrimLineEnding(encoding.Windows1252ToUTF8(raw)), nil
}

// mustLine reads a header line, mapping EOF to ErrTruncatedBLS.
func (br *BLSReader) mustLine() (string, error) {
	line, err := br.readLine()
	if err == io.EOF {
		return "", fmt.Errorf("%w: line %d", ErrTruncatedBLS, br.line+1)
	}
	return line, err
}

func (br *BLSReader) readHeader() error {
	line, err := br.mustLine()
	if err != nil {
		return err
	}
	if !strings.HasPrefix(line, blsHeaderPrefix) {
		return fmt.Errorf("%w: unexpected first line %q", ErrInvalidBLSHeader, line)
	}

	line, err = br.mustLine()
	if err != nil {
		return err
	}
	descLines, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || descLines < 0 {
		return fmt.Errorf("%w: bad description line count %q", ErrInvalidBLSHeader, line)
	}
	for i := 0; i < descLines; i++ {
		line, err = br.mustLine()
		if err != nil {
			return err
		}
		br.Description = append(br.Description, line)
	}

	for i := 0; i < BLSPaletteSize; i++ {
		line, err = br.mustLine()
		if err != nil {
			return err
		}
		c, err := parseBLSColor(line)
		if err != nil {
			return fmt.Errorf("%w: palette entry %d: %v", ErrInvalidBLSHeader, i, err)
		}
		br.Colors[i] = c
	}

	line, err = br.mustLine()
	if err != nil {
		return err
	}
	count, ok := strings.CutPrefix(line, "Linecount ")
	if !ok {
		return fmt.Errorf("%w: expected Linecount, got %q", ErrInvalidBLSHeader, line)
	}
	br.LineCount, err = strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return fmt.Errorf("%w: bad Linecount %q", ErrInvalidBLSHeader, count)
	}
	return nil
}

func parseBLSColor(line string) (BLSColor, error) {
	var c BLSColor
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return c, fmt.Errorf("expected 4 components, got %d", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return c, err
		}
		c[i] = float32(v)
	}
	return c, nil
}

// Next returns the next brick. It returns io.EOF after the last brick.
// Attribute lines ("+-OWNER", "+-EVENT", ...) are skipped.
func (br *BLSReader) Next() (*BLSBrick, error) {
	for {
		line, err := br.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" || strings.HasPrefix(line, "+-") {
			continue
		}
		brick, err := ParseBLSBrickLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", br.line, err)
		}
		return brick, nil
	}
}

// ParseBLSBrickLine parses a brick line of the form
//
//	name" x y z angle isBaseplate colorIndex print colorFx shapeFx raycasting collision rendering
//
// The print field may be empty.
func ParseBLSBrickLine(line string) (*BLSBrick, error) {
	quote := strings.LastIndexByte(line, '"')
	if quote < 0 {
		return nil, fmt.Errorf("%w: missing name terminator", ErrInvalidBrickLine)
	}
	fields := strings.Split(strings.TrimPrefix(line[quote+1:], " "), " ")
	if len(fields) < 12 {
		return nil, fmt.Errorf("%w: expected 12 fields, got %d", ErrInvalidBrickLine, len(fields))
	}
	head := fields[:6]
	tail := fields[len(fields)-5:]

	b := &BLSBrick{
		UIName: line[:quote],
		Print:  strings.Join(fields[6:len(fields)-5], " "),
	}

	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(head[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: position: %v", ErrInvalidBrickLine, err)
		}
		b.Position[i] = float32(v)
	}

	ints := make([]uint64, 0, 8)
	for _, f := range append([]string{head[3], head[4], head[5]}, tail...) {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBrickLine, err)
		}
		ints = append(ints, v)
	}
	if ints[0] > 3 {
		return nil, fmt.Errorf("%w: angle %d out of range", ErrInvalidBrickLine, ints[0])
	}
	if ints[2] >= BLSPaletteSize {
		return nil, fmt.Errorf("%w: color index %d out of range", ErrInvalidBrickLine, ints[2])
	}

	b.Angle = uint8(ints[0])
	b.IsBaseplate = ints[1] != 0
	b.ColorIndex = uint8(ints[2])
	b.ColorFx = uint8(ints[3])
	b.ShapeFx = uint8(ints[4])
	b.Raycasting = ints[5] != 0
	b.Collision = ints[6] != 0
	b.Rendering = ints[7] != 0
	return b, nil
}

// ReadAll reads every remaining brick.
func (br *BLSReader) ReadAll() ([]*BLSBrick, error) {
	bricks := make([]*BLSBrick, 0, br.LineCount)
	for {
		b, err := br.Next()
		if err == io.EOF {
			return bricks, nil
		}
		if err != nil {
			return nil, err
		}
		bricks = append(bricks, b)
	}
}
