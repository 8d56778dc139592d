// Package assemble turns brick records into scene nodes.
package assemble

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blsconv/internal/brick"
	"github.com/Faultbox/blsconv/internal/scene"
	"github.com/Faultbox/blsconv/internal/special"
	"github.com/Faultbox/blsconv/pkg/math"
)

// ErrUnknownBrick is returned for bricks that match no shape grammar and
// no special shape. It is not fatal to a conversion.
var ErrUnknownBrick = errors.New("unknown brick type")

// Output is the assembly of one brick.
type Output struct {
	Kind    brick.Kind    // Unrecognized for special shapes
	Special special.Shape // Set for special shapes
	Nodes   []*scene.Node
}

// Builder assembles bricks at a fixed scale with a save's palette.
// It is safe for concurrent use if the cache is.
type Builder struct {
	scale   float32
	palette *brick.Palette
	cache   *special.Cache
	grammar *brick.Grammar
}

// NewBuilder creates a builder. A nil cache gets a private one.
func NewBuilder(scale float32, palette brick.Palette, cache *special.Cache) *Builder {
	if cache == nil {
		cache = special.NewCache()
	}
	return &Builder{
		scale:   scale,
		palette: &palette,
		cache:   cache,
		grammar: brick.Shapes,
	}
}

// Scale returns the builder's world scale.
func (b *Builder) Scale() float32 {
	return b.scale
}

// Build assembles a brick into its top-level nodes.
func (b *Builder) Build(r brick.Record) ([]*scene.Node, error) {
	out, err := b.Assemble(r)
	return out.Nodes, err
}

// Assemble assembles a brick and reports how it was recognized.
func (b *Builder) Assemble(r brick.Record) (Output, error) {
	d, err := b.grammar.Classify(r, b.scale)
	if err != nil {
		return Output{}, err
	}

	out := Output{Kind: d.Kind}
	switch d.Kind {
	case brick.Regular:
		out.Nodes = []*scene.Node{b.regular(d)}
	case brick.Ramp:
		out.Nodes = b.ramp(d, r.Facing)
	case brick.RampCorner:
		out.Nodes = b.rampCorner(d, r.Facing)
	default:
		key, ok := special.Lookup(r.Name)
		if !ok {
			return Output{}, fmt.Errorf("%w: %q", ErrUnknownBrick, r.Name)
		}
		out.Special = key.Shape
		out.Nodes = []*scene.Node{b.special(r, key)}
	}

	appearance := b.palette.Appearance(r)
	for _, n := range out.Nodes {
		n.ApplyAppearance(appearance)
	}
	return out, nil
}

func (b *Builder) regular(d brick.Descriptor) *scene.Node {
	part := scene.NewPart(scene.Part, d.Size, d.Pose)
	if d.Mesh == brick.Round {
		part.Add(scene.New(scene.CylinderMesh))
	}
	return part
}

// flip returns v, negated for inverted bricks.
func flip(v float32, inverted bool) float32 {
	if inverted {
		return -v
	}
	return v
}

func (b *Builder) ramp(d brick.Descriptor, f math.Facing) []*scene.Node {
	s := b.scale
	lip := brick.LipHeight * s
	size := d.Size
	fwd := f.Forward()
	front := fwd.Mul(s * 0.5)

	wedge := scene.NewPart(scene.WedgePart,
		size.Sub(mgl32.Vec3{0, lip, 0}),
		d.Pose.Add(mgl32.Vec3{0, flip(lip/2, d.Inverted), 0}).Add(front))

	// The lip fills the gap under the slope.
	base := scene.NewPart(scene.Part,
		mgl32.Vec3{size.X(), lip, size.Z()},
		d.Pose.Add(mgl32.Vec3{0, flip(-size.Y()/2+lip/2, d.Inverted), 0}).Add(front))

	back := scene.NewPart(scene.Part,
		mgl32.Vec3{size.X(), size.Y(), s},
		d.Pose.Sub(fwd.Mul(size.Z()/2)))

	return []*scene.Node{wedge, base, back}
}

func (b *Builder) rampCorner(d brick.Descriptor, f math.Facing) []*scene.Node {
	s := b.scale
	lip := brick.LipHeight * s
	size := d.Size
	fwd, right := f.Forward(), f.Right()
	offset := mgl32.Vec3{0, flip(lip/2, d.Inverted), 0}
	slope := size.Y() - lip

	// Steps toward the front/right edge and toward the far back/left edge.
	near := fwd.Mul(s * 0.5).Add(right.Mul(s * 0.5))
	farFwd := fwd.Mul(-size.X()/2 + s*0.5)
	farRight := right.Mul(-size.Z()/2 + s*0.5)

	corner := scene.NewPart(scene.CornerWedgePart,
		mgl32.Vec3{size.X() - s, slope, size.Z() - s},
		d.CornerPose.Add(near).Add(offset))

	filler := scene.NewPart(scene.Part,
		mgl32.Vec3{s, slope, s},
		d.CornerPose.Add(farFwd).Add(farRight).Add(offset))

	side1 := scene.NewPart(scene.WedgePart,
		mgl32.Vec3{s, slope, size.Z() - s},
		d.WedgePose1.Add(farFwd).Add(right.Mul(s*0.5)).Add(offset))

	side2 := scene.NewPart(scene.WedgePart,
		mgl32.Vec3{s, slope, size.Z() - s},
		d.WedgePose2.Add(fwd.Mul(s*0.5)).Add(farRight).Add(offset))

	base := scene.NewPart(scene.Part,
		mgl32.Vec3{size.X(), lip, size.Z()},
		d.CornerPose.Add(mgl32.Vec3{0, flip(-size.Y()/2+lip/2, d.Inverted), 0}))

	return []*scene.Node{corner, filler, side1, side2, base}
}

func (b *Builder) special(r brick.Record, key special.Key) *scene.Node {
	m := b.cache.Template(key)
	m.PlaceAt(math.FrameFromGrid(r.Position, r.Facing, false, b.scale), mgl32.Vec3{b.scale, b.scale, b.scale})
	m.Set(scene.PropName, scene.String(r.Name))
	return m
}
