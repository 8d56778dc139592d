package rbxlx

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/blsconv/internal/scene"
)

func TestParseCompression(t *testing.T) {
	for in, want := range map[string]Compression{"": CompressNone, "none": CompressNone, "gzip": CompressGzip, "zstd": CompressZstd} {
		got, err := ParseCompression(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseCompression("lzma")
	assert.ErrorIs(t, err, ErrUnknownCompression)

	assert.Equal(t, ".gz", CompressGzip.Extension())
	assert.Equal(t, ".zst", CompressZstd.Extension())
	assert.Equal(t, "", CompressNone.Extension())
}

func readBack(t *testing.T, path string, c Compression) string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var r io.Reader = f
	switch c {
	case CompressGzip:
		gz, err := gzip.NewReader(f)
		require.NoError(t, err)
		defer gz.Close()
		r = gz
	case CompressZstd:
		zr, err := zstd.NewReader(f)
		require.NoError(t, err)
		defer zr.Close()
		r = zr
	}
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestWriteFile(t *testing.T) {
	nodes := []*scene.Node{testPart()}
	for _, c := range []Compression{CompressNone, CompressGzip, CompressZstd} {
		t.Run(string(c), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "place.rbxlx"+c.Extension())
			require.NoError(t, WriteFile(path, nodes, c))

			out := readBack(t, path, c)
			assert.True(t, strings.HasPrefix(out, "<roblox "))
			assert.True(t, strings.HasSuffix(out, "</roblox>\n"))
			assert.Contains(t, out, `<Item class="Part"`)
		})
	}
}

func TestCreateUnknownCompression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "place.rbxlx")
	_, err := Create(path, Compression("lzma"))
	assert.ErrorIs(t, err, ErrUnknownCompression)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
