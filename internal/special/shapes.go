// Package special generates composite models for bricks that no single
// structural shape can represent, and caches them per parameter set.
package special

import (
	"fmt"
	stdmath "math"
	"regexp"
	"strconv"

	"github.com/Faultbox/blsconv/internal/brick"
	"github.com/Faultbox/blsconv/internal/scene"
)

// Shape identifies a special shape generator.
type Shape int

const (
	Cone Shape = iota + 1
	CastleWall
	SpawnPoint
	Window
	Crest
	CrestCorner
	CrestEnd
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case Cone:
		return "Cone"
	case CastleWall:
		return "CastleWall"
	case SpawnPoint:
		return "SpawnPoint"
	case Window:
		return "Window"
	case Crest:
		return "Crest"
	case CrestCorner:
		return "CrestCorner"
	case CrestEnd:
		return "CrestEnd"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Key identifies a template: a shape plus its parameters. Unused
// parameters are zero.
type Key struct {
	Shape  Shape
	Size   float32 // Cone diameter in studs
	Height float32 // Crest height class in brick units
	Length int     // Crest run length in studs
}

// String returns a stable textual form of the key.
func (k Key) String() string {
	return fmt.Sprintf("%s/%g/%g/%d", k.Shape, k.Size, k.Height, k.Length)
}

// Generate builds the template for key in the canonical local frame,
// centered on the brick anchor at scale 1.
func Generate(k Key) *scene.Node {
	var m *scene.Node
	switch k.Shape {
	case Cone:
		m = GenerateCone(k.Size, ConeResolution)
	case CastleWall:
		m = generateCastleWall()
	case SpawnPoint:
		m = generateSpawnPoint()
	case Window:
		m = generateWindow()
	case Crest:
		m = generateCrest(k.Height, k.Length)
	case CrestCorner:
		m = generateCrestCorner(k.Height)
	case CrestEnd:
		m = generateCrestEnd(k.Height)
	default:
		panic(fmt.Sprintf("special: no generator for %s", k.Shape))
	}
	m.Set(scene.PropName, scene.String(k.Shape.String()))
	return m
}

// crestHeight maps a ramp angle to the crest height class.
func crestHeight(degrees int) (float32, bool) {
	switch degrees {
	case 25:
		return 2.0 / 3.0, true
	case 45:
		return brick.RampAngles[45].HeightMult, true
	}
	return 0, false
}

var catalog = map[string]Key{
	"2x2x2 Cone":   {Shape: Cone, Size: 2},
	"1x1 Cone":     {Shape: Cone, Size: 1},
	"Castle Wall":  {Shape: CastleWall},
	"Spawn Point":  {Shape: SpawnPoint},
	"1x4x5 Window": {Shape: Window},
}

var (
	crestRunRE  = regexp.MustCompile(`^(\d+)° Crest (\d+)x$`)
	crestPartRE = regexp.MustCompile(`^(\d+)° Crest (Corner|End)$`)
)

// Lookup returns the template key for a special brick name.
func Lookup(name string) (Key, bool) {
	if k, ok := catalog[name]; ok {
		return k, true
	}
	if m := crestRunRE.FindStringSubmatch(name); m != nil {
		deg, _ := strconv.Atoi(m[1])
		h, ok := crestHeight(deg)
		length, err := strconv.Atoi(m[2])
		if !ok || err != nil || length <= 0 {
			return Key{}, false
		}
		return Key{Shape: Crest, Height: h, Length: length}, true
	}
	if m := crestPartRE.FindStringSubmatch(name); m != nil {
		deg, _ := strconv.Atoi(m[1])
		h, ok := crestHeight(deg)
		if !ok {
			return Key{}, false
		}
		shape := CrestCorner
		if m[2] == "End" {
			shape = CrestEnd
		}
		return Key{Shape: shape, Height: h}, true
	}
	return Key{}, false
}

const (
	pi     = float32(stdmath.Pi)
	halfPi = float32(stdmath.Pi / 2)
)
