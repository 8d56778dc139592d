package brick

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blsconv/pkg/math"
)

// Brick dimensions in studs at scale 1.
const (
	UnitHeight  float32 = 1.2  // Height of a regular brick
	PlateHeight float32 = 0.4  // Height of a plate ("F" or "Base")
	LipHeight   float32 = 0.15 // Thin slab under a ramp's sloped face
)

// ErrMalformedBrick is returned when a name matches a shape grammar but
// one of its fields is not valid for it. It aborts a conversion run.
var ErrMalformedBrick = errors.New("malformed brick name")

// Kind tags a Descriptor.
type Kind int

const (
	Unrecognized Kind = iota
	Regular
	Ramp
	RampCorner
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Regular:
		return "Regular"
	case Ramp:
		return "Ramp"
	case RampCorner:
		return "RampCorner"
	default:
		return "Unrecognized"
	}
}

// Mesh selects the silhouette of a regular brick.
type Mesh int

const (
	Block Mesh = iota
	Round
)

// Descriptor is the structural shape of a brick.
// Which fields are meaningful depends on Kind.
type Descriptor struct {
	Kind     Kind
	Size     mgl32.Vec3
	Pose     math.Pose // Regular and Ramp
	Mesh     Mesh      // Regular
	Inverted bool      // Ramp and RampCorner

	// RampCorner poses: the corner itself and its two side wedges.
	CornerPose math.Pose
	WedgePose1 math.Pose
	WedgePose2 math.Pose
}

// RampAngle describes the geometry of a ramp slope.
type RampAngle struct {
	Degrees    int
	Depth      float32 // Sloped depth of a straight ramp, in studs
	HeightMult float32 // Height in brick units
	CornerSize float32 // Plan size of a corner ramp
}

// Height returns the ramp height in studs at scale 1.
func (a RampAngle) Height() float32 {
	return UnitHeight * a.HeightMult
}

// RampAngles lists the supported slopes.
var RampAngles = map[int]RampAngle{
	25: {Degrees: 25, Depth: 2, HeightMult: 1, CornerSize: 3},
	45: {Degrees: 45, Depth: 1, HeightMult: 1, CornerSize: 2},
	72: {Degrees: 72, Depth: 1, HeightMult: 3, CornerSize: 2},
	80: {Degrees: 80, Depth: 1, HeightMult: 5, CornerSize: 2},
}

// ParseRampAngle looks up a slope by its literal.
func ParseRampAngle(s string) (RampAngle, error) {
	deg, err := strconv.Atoi(s)
	if err != nil {
		return RampAngle{}, fmt.Errorf("%w: angle %q", ErrMalformedBrick, s)
	}
	a, ok := RampAngles[deg]
	if !ok {
		return RampAngle{}, fmt.Errorf("%w: unknown ramp angle %d°", ErrMalformedBrick, deg)
	}
	return a, nil
}

// Grammar holds the compiled shape grammars, tried in field order.
type Grammar struct {
	Tall       *regexp.Regexp
	Regular    *regexp.Regexp
	Ramp       *regexp.Regexp
	RampCorner *regexp.Regexp
}

// Shapes is the grammar set used by Classify. It is read-only.
var Shapes = &Grammar{
	Tall:       regexp.MustCompile(`^(\d+)x(\d+)x(\d+)( Print)?$`),
	Regular:    regexp.MustCompile(`^(\d+?)x(\d+)(F| Base)?( Round)?( Print)?$`),
	Ramp:       regexp.MustCompile(`^(-)?(\d+)° Ramp (\d+)x(?: Print)?$`),
	RampCorner: regexp.MustCompile(`^(-)?(\d+)° Ramp Corner$`),
}

// Matches returns how many grammars accept name.
func (g *Grammar) Matches(name string) int {
	n := 0
	for _, re := range []*regexp.Regexp{g.Tall, g.Regular, g.Ramp, g.RampCorner} {
		if re.MatchString(name) {
			n++
		}
	}
	return n
}

// Classify determines the structural shape of a brick using Shapes.
func Classify(r Record, scale float32) (Descriptor, error) {
	return Shapes.Classify(r, scale)
}

// Classify determines the structural shape of a brick. Names matching no
// grammar yield an Unrecognized descriptor and no error.
//
// A trailing " Print" turns tall and regular bricks one extra quarter:
// printed faces sit on the other axis in the source game.
func (g *Grammar) Classify(r Record, scale float32) (Descriptor, error) {
	if m := g.Tall.FindStringSubmatch(r.Name); m != nil {
		x, z, y := atof(m[1]), atof(m[2]), atof(m[3])*UnitHeight
		return Descriptor{
			Kind: Regular,
			Size: mgl32.Vec3{x, y, z}.Mul(scale),
			Pose: math.FrameFromGrid(r.Position, r.Facing.Add(printTurn(m[4])), false, scale),
			Mesh: Block,
		}, nil
	}

	if m := g.Regular.FindStringSubmatch(r.Name); m != nil {
		x, z := atof(m[1]), atof(m[2])
		y := UnitHeight
		if m[3] != "" {
			y = PlateHeight
		}
		mesh := Block
		if m[4] != "" {
			mesh = Round
		}
		return Descriptor{
			Kind: Regular,
			Size: mgl32.Vec3{x, y, z}.Mul(scale),
			Pose: math.FrameFromGrid(r.Position, r.Facing.Add(printTurn(m[5])), false, scale),
			Mesh: mesh,
		}, nil
	}

	if m := g.Ramp.FindStringSubmatch(r.Name); m != nil {
		angle, err := ParseRampAngle(m[2])
		if err != nil {
			return Descriptor{}, fmt.Errorf("%q: %w", r.Name, err)
		}
		inverted := m[1] != ""
		return Descriptor{
			Kind:     Ramp,
			Size:     mgl32.Vec3{atof(m[3]), angle.Height(), angle.Depth}.Mul(scale),
			Pose:     math.FrameFromGrid(r.Position, r.Facing, inverted, scale),
			Inverted: inverted,
		}, nil
	}

	if m := g.RampCorner.FindStringSubmatch(r.Name); m != nil {
		angle, err := ParseRampAngle(m[2])
		if err != nil {
			return Descriptor{}, fmt.Errorf("%q: %w", r.Name, err)
		}
		inverted := m[1] != ""
		cornerTurn := 2
		if inverted {
			cornerTurn = 3
		}
		plan := angle.CornerSize
		return Descriptor{
			Kind:       RampCorner,
			Size:       mgl32.Vec3{plan, angle.Height(), plan}.Mul(scale),
			Inverted:   inverted,
			CornerPose: math.FrameFromGrid(r.Position, r.Facing.Add(cornerTurn), inverted, scale),
			WedgePose1: math.FrameFromGrid(r.Position, r.Facing.Add(1), inverted, scale),
			WedgePose2: math.FrameFromGrid(r.Position, r.Facing, inverted, scale),
		}, nil
	}

	return Descriptor{Kind: Unrecognized}, nil
}

func printTurn(suffix string) int {
	if suffix != "" {
		return 1
	}
	return 0
}

// atof parses a digit run already validated by a grammar.
func atof(s string) float32 {
	v, _ := strconv.ParseFloat(s, 32)
	return float32(v)
}
