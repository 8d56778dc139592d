// Package brick classifies Blockland bricks into structural shapes.
package brick

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blsconv/internal/scene"
	"github.com/Faultbox/blsconv/pkg/formats"
	"github.com/Faultbox/blsconv/pkg/math"
)

// Record is a single brick placement.
type Record struct {
	Name       string
	Position   mgl32.Vec3 // Grid position, z up
	Facing     math.Facing
	ColorIndex uint8
	Rendering  bool
	Collision  bool
}

// FromBLS converts a parsed save brick.
func FromBLS(b *formats.BLSBrick) Record {
	return Record{
		Name:       b.UIName,
		Position:   mgl32.Vec3(b.Position),
		Facing:     math.Facing(b.Angle),
		ColorIndex: b.ColorIndex,
		Rendering:  b.Rendering,
		Collision:  b.Collision,
	}
}

// Palette is the indexed color table of a save.
type Palette [formats.BLSPaletteSize][4]float32

// PaletteFromBLS copies a save's palette.
func PaletteFromBLS(colors [formats.BLSPaletteSize]formats.BLSColor) Palette {
	var p Palette
	for i, c := range colors {
		p[i] = c
	}
	return p
}

// Appearance returns the look a record's parts get from the palette.
// Non-rendering bricks are fully transparent.
func (p *Palette) Appearance(r Record) scene.Appearance {
	color := scene.ColorFromFloats(p[int(r.ColorIndex)%len(p)])
	transparency := color.Transparency()
	if !r.Rendering {
		transparency = 1
	}
	return scene.Appearance{
		Color:        color,
		Transparency: transparency,
		CanCollide:   r.Collision,
	}
}
