package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/blsconv/internal/brick"
	"github.com/Faultbox/blsconv/internal/metrics"
	"github.com/Faultbox/blsconv/internal/special"
	"github.com/Faultbox/blsconv/pkg/formats"
	"github.com/Faultbox/blsconv/pkg/math"
)

func rec(name string, x float32, facing math.Facing) brick.Record {
	return brick.Record{
		Name:      name,
		Position:  mgl32.Vec3{x, 0, 0.3},
		Facing:    facing,
		Rendering: true,
		Collision: true,
	}
}

func mixedRecords() []brick.Record {
	return []brick.Record{
		rec("2x4", 0, 0),
		rec("45° Ramp 2x", 1, 1),
		rec("Bogus Shape", 2, 0),
		rec("Castle Wall", 3, 2),
		rec("Bogus Shape", 4, 0),
		rec("Another Thing", 5, 0),
		rec("-25° Ramp Corner", 6, 3),
		rec("2x2x2 Cone", 7, 0),
	}
}

func TestRunMixed(t *testing.T) {
	c := New(brick.Palette{}, Options{})
	res, err := c.Run(context.Background(), Records(mixedRecords()...))
	require.NoError(t, err)

	assert.Equal(t, 8, res.Bricks)
	assert.Equal(t, []string{"Another Thing", "Bogus Shape"}, res.Unknown)
	assert.Equal(t, Counts{Regular: 1, Ramp: 1, RampCorner: 1, Special: 2, Unknown: 3}, res.Counts)
	// 1 + 3 + 1 + 5 + 1
	assert.Len(t, res.Nodes, 11)
}

func TestRunUnknownOnly(t *testing.T) {
	c := New(brick.Palette{}, Options{})
	res, err := c.Run(context.Background(), Records(rec("Bogus Shape", 0, 0)))
	require.NoError(t, err)
	assert.Empty(t, res.Nodes)
	assert.Equal(t, []string{"Bogus Shape"}, res.Unknown)
}

func TestRunEmpty(t *testing.T) {
	c := New(brick.Palette{}, Options{Workers: 4})
	res, err := c.Run(context.Background(), Records())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Bricks)
	assert.Empty(t, res.Nodes)
	assert.Empty(t, res.Unknown)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	var records []brick.Record
	for i := 0; i < 25; i++ {
		for _, r := range mixedRecords() {
			r.Position = r.Position.Add(mgl32.Vec3{0, float32(i), 0})
			records = append(records, r)
		}
	}

	seq, err := New(brick.Palette{}, Options{Scale: 0.5}).Run(context.Background(), Records(records...))
	require.NoError(t, err)

	cache := special.NewCache()
	par, err := New(brick.Palette{}, Options{Scale: 0.5, Workers: 8, Cache: cache}).Run(context.Background(), Records(records...))
	require.NoError(t, err)

	assert.Equal(t, seq, par)
	assert.Equal(t, int64(2), cache.Stats().Misses)
}

func TestRunMalformedAborts(t *testing.T) {
	records := []brick.Record{rec("2x4", 0, 0), rec("30° Ramp 2x", 1, 0), rec("2x4", 2, 0)}
	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			c := New(brick.Palette{}, Options{Workers: workers})
			res, err := c.Run(context.Background(), Records(records...))
			assert.ErrorIs(t, err, brick.ErrMalformedBrick)
			assert.Contains(t, err.Error(), "brick 2")
			assert.Nil(t, res)
		})
	}
}

type failingSource struct {
	n   int
	err error
}

func (s *failingSource) Next() (brick.Record, error) {
	if s.n == 0 {
		return brick.Record{}, s.err
	}
	s.n--
	return rec("1x1", 0, 0), nil
}

func TestRunStreamError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	for _, workers := range []int{1, 4} {
		c := New(brick.Palette{}, Options{Workers: workers})
		_, err := c.Run(context.Background(), &failingSource{n: 3, err: errBroken})
		assert.ErrorIs(t, err, errBroken)
		assert.Contains(t, err.Error(), "reading brick 4")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		c := New(brick.Palette{}, Options{Workers: workers})
		_, err := c.Run(ctx, Records(mixedRecords()...))
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestRunLogsProgress(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := New(brick.Palette{}, Options{Logger: zap.New(core)})

	records := make([]brick.Record, 20)
	for i := range records {
		records[i] = rec("1x1", float32(i), 0)
	}
	_, err := c.Run(context.Background(), Records(records...))
	require.NoError(t, err)

	progress := logs.FilterMessage("bricks processed").All()
	require.Len(t, progress, 10)
	for i, entry := range progress {
		assert.Equal(t, int64((i+1)*10), entry.ContextMap()["percent"])
	}
	assert.Equal(t, 1, logs.FilterMessage("conversion finished").Len())
}

func TestRunRecordsMetrics(t *testing.T) {
	m := metrics.New()
	c := New(brick.Palette{}, Options{Metrics: m})
	_, err := c.Run(context.Background(), Records(mixedRecords()...))
	require.NoError(t, err)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	found := make(map[string]bool)
	for _, f := range families {
		found[f.GetName()] = true
	}
	assert.True(t, found["blsconv_bricks_total"])
	assert.True(t, found["blsconv_conversion_duration_seconds"])
}

const testSave = "This is a Blockland save file.  You probably shouldn't modify it cause you'll screw it up.\r\n" +
	"1\r\ntest\r\n"

func TestBLSSource(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(testSave)
	for i := 0; i < formats.BLSPaletteSize; i++ {
		sb.WriteString("1.000000 0.000000 0.000000 1.000000\r\n")
	}
	sb.WriteString("Linecount 2\r\n")
	sb.WriteString("2x4\" 0 0 0.3 1 1 0  0 0 1 1 1\r\n")
	sb.WriteString("+-OWNER 1\r\n")
	sb.WriteString("Bogus Shape\" 1 0 0.3 0 1 0  0 0 1 1 1\r\n")

	br, err := formats.NewBLSReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	src := NewBLSSource(br)
	assert.Equal(t, 2, src.Len())

	palette := src.Palette()
	assert.Equal(t, [4]float32{1, 0, 0, 1}, palette[0])

	res, err := New(palette, Options{}).Run(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Bricks)
	assert.Len(t, res.Nodes, 1)
	assert.Equal(t, []string{"Bogus Shape"}, res.Unknown)
}
