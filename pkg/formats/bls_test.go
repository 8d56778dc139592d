package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTestBLS builds a minimal save with the given brick lines.
// Lines are written as Windows-1252, so "\xb0" is the degree sign.
func createTestBLS(description []string, bricks ...string) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("This is a Blockland save file.  You probably shouldn't modify it cause you'll screw it up.\r\n")
	fmt.Fprintf(buf, "%d\r\n", len(description))
	for _, d := range description {
		buf.WriteString(d + "\r\n")
	}
	for i := 0; i < BLSPaletteSize; i++ {
		fmt.Fprintf(buf, "%f %f %f %f\r\n", float32(i)/63, 0.5, 0.0, 1.0)
	}
	fmt.Fprintf(buf, "Linecount %d\r\n", len(bricks))
	for _, b := range bricks {
		buf.WriteString(b + "\r\n")
	}
	return buf.Bytes()
}

func TestNewBLSReader_Header(t *testing.T) {
	data := createTestBLS([]string{"My build", "second line"})

	br, err := NewBLSReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewBLSReader failed: %v", err)
	}

	if len(br.Description) != 2 || br.Description[0] != "My build" {
		t.Errorf("unexpected description %q", br.Description)
	}
	if br.Colors[0] != (BLSColor{0, 0.5, 0, 1}) {
		t.Errorf("palette[0] = %v", br.Colors[0])
	}
	if br.Colors[63][0] != 1 {
		t.Errorf("palette[63].r = %v, want 1", br.Colors[63][0])
	}
	if br.LineCount != 0 {
		t.Errorf("expected line count 0, got %d", br.LineCount)
	}
}

func TestBLSReader_Next(t *testing.T) {
	data := createTestBLS(nil,
		`2x4" 0 0 0.3 0 1 5  0 0 1 1 1`,
		"+-OWNER 12345",
		"-45\xb0 Ramp Corner\" 1.5 -2 0.6 3 0 63  0 0 1 0 0",
		`1x1 Print" 0.25 0.25 0.3 1 0 2 Letters/A 0 0 1 1 1`,
	)

	br, err := NewBLSReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewBLSReader failed: %v", err)
	}

	b, err := br.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if b.UIName != "2x4" || b.Position != [3]float32{0, 0, 0.3} || b.ColorIndex != 5 {
		t.Errorf("unexpected first brick %+v", b)
	}
	if !b.IsBaseplate || !b.Collision || !b.Rendering || b.Print != "" {
		t.Errorf("unexpected flags on first brick %+v", b)
	}

	b, err = br.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if b.UIName != "-45° Ramp Corner" {
		t.Errorf("expected decoded name, got %q", b.UIName)
	}
	if b.Angle != 3 || b.ColorIndex != 63 || b.Collision || b.Rendering {
		t.Errorf("unexpected second brick %+v", b)
	}

	b, err = br.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if b.Print != "Letters/A" {
		t.Errorf("expected print Letters/A, got %q", b.Print)
	}

	if _, err := br.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestNewBLSReader_InvalidHeader(t *testing.T) {
	_, err := NewBLSReader(strings.NewReader("not a save\r\n"))
	if !errors.Is(err, ErrInvalidBLSHeader) {
		t.Errorf("expected ErrInvalidBLSHeader, got %v", err)
	}
}

func TestNewBLSReader_Truncated(t *testing.T) {
	lines := bytes.SplitAfter(createTestBLS(nil), []byte("\n"))
	// Stop after ten palette lines.
	data := bytes.Join(lines[:12], nil)
	_, err := NewBLSReader(bytes.NewReader(data))
	if !errors.Is(err, ErrTruncatedBLS) {
		t.Errorf("expected ErrTruncatedBLS, got %v", err)
	}
}

func TestParseBLSBrickLine_Invalid(t *testing.T) {
	tests := []string{
		`no terminator 0 0 0 0 0 0 0 0 0 0 0`,
		`2x4" 0 0 0`,
		`2x4" a 0 0 0 1 5  0 0 1 1 1`,
		`2x4" 0 0 0 4 1 5  0 0 1 1 1`,
		`2x4" 0 0 0 0 1 64  0 0 1 1 1`,
	}
	for _, line := range tests {
		if _, err := ParseBLSBrickLine(line); !errors.Is(err, ErrInvalidBrickLine) {
			t.Errorf("ParseBLSBrickLine(%q): expected ErrInvalidBrickLine, got %v", line, err)
		}
	}
}

func TestOpenBLSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.bls")
	data := createTestBLS(nil, `1x1" 0 0 0.1 0 0 0  0 0 1 1 1`, `1x1" 0.5 0 0.1 0 0 0  0 0 1 1 1`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write save: %v", err)
	}

	br, err := OpenBLSFile(path)
	if err != nil {
		t.Fatalf("OpenBLSFile failed: %v", err)
	}
	defer br.Close()

	bricks, err := br.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(bricks) != 2 {
		t.Errorf("expected 2 bricks, got %d", len(bricks))
	}
}
