package special

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blsconv/internal/brick"
	"github.com/Faultbox/blsconv/internal/scene"
	"github.com/Faultbox/blsconv/pkg/math"
)

// Generator constants, in studs or brick units at scale 1.
const (
	ConeResolution = 32   // Facets around a cone
	ConeWallWidth  = 0.01 // Thickness of cone walls and caps
	SpawnHeight    = 0.2  // Spawn pad height, brick units
	WindowRimWidth = 0.1  // Window frame width

	// LipFraction is the crest lip height in brick units.
	LipFraction = brick.LipHeight / brick.UnitHeight
)

const bh = brick.UnitHeight

var up = mgl32.Vec3{0, 1, 0}

// Facet holds the sample points bounding one cone facet.
type Facet struct {
	OuterStart, OuterEnd mgl32.Vec3 // On the base rim
	InnerStart, InnerEnd mgl32.Vec3 // On the tapered top rim
}

// coneSample returns the rim and tapered points at the given fraction of
// a full turn, relative to the cone base center.
func coneSample(percent, size float32) (outer, inner mgl32.Vec3) {
	outer = mgl32.Rotate3DY(percent * 2 * pi).Mul3x1(mgl32.Vec3{0, 0, size / 2})
	inner = outer.Mul(0.5).Add(mgl32.Vec3{0, size * bh, 0})
	return outer, inner
}

// FacetEdge returns the samples bounding facet i of a cone with n facets.
// The end points are the start points turned by one facet.
func FacetEdge(i, n int, size float32) Facet {
	var f Facet
	f.OuterStart, f.InnerStart = coneSample(float32(i)/float32(n), size)
	step := mgl32.Rotate3DY(2 * pi / float32(n))
	f.OuterEnd = step.Mul3x1(f.OuterStart)
	f.InnerEnd = step.Mul3x1(f.InnerStart)
	return f
}

// coneWedge builds one wall wedge of facet f. The outer wedge leans from
// the start samples; the shifted inner wedge leans from the end samples,
// rolled over, and half as wide.
func coneWedge(f Facet, size, width float32, shifted bool, resolution int) *scene.Node {
	mid := f.OuterStart.Add(f.InnerStart).Mul(0.5)

	outer, inner := f.OuterStart, f.InnerStart
	var roll, offset float32
	if shifted {
		outer, inner = f.OuterEnd, f.InnerEnd
		roll, offset = pi, 1/float32(resolution)
	}
	towards := inner.Sub(outer)

	rot := math.FaceTowards(towards, up).
		Mul3(mgl32.Rotate3DZ(halfPi)).
		Mul3(mgl32.Rotate3DX(halfPi + roll)).
		Mul3(mgl32.Rotate3DY(offset * pi * pi))

	return scene.NewPart(scene.WedgePart,
		mgl32.Vec3{ConeWallWidth, towards.Len(), pi * width / float32(resolution)},
		math.Pose{Position: mid.Sub(mgl32.Vec3{0, size / 2 * bh, 0}), Rotation: rot},
	)
}

// GenerateCone builds a cone of the given base diameter from resolution
// facets. Each facet is an outer and an inner wedge; a round cap closes
// each end.
func GenerateCone(size float32, resolution int) *scene.Node {
	m := scene.New(scene.Model)
	for i := 0; i < resolution; i++ {
		f := FacetEdge(i, resolution, size)
		m.Add(
			coneWedge(f, size, size, false, resolution),
			coneWedge(f, size, size/2, true, resolution),
		)
	}

	half := size / 2
	bottom := scene.NewPart(scene.Part, mgl32.Vec3{size, ConeWallWidth, size}, math.At(0, -bh*half, 0))
	bottom.Add(scene.New(scene.CylinderMesh))
	top := scene.NewPart(scene.Part, mgl32.Vec3{half, ConeWallWidth, half}, math.At(0, bh*half, 0))
	top.Add(scene.New(scene.CylinderMesh))
	return m.Add(bottom, top)
}

func generateCastleWall() *scene.Node {
	wall := func(z float32) *scene.Node {
		return scene.NewPart(scene.Part, mgl32.Vec3{1, 5.0 / 3 * bh, 1}, math.At(0, 5.0/6*bh, z))
	}
	corner := func(z, yaw float32) *scene.Node {
		return scene.NewPart(scene.WedgePart, mgl32.Vec3{1, bh / 3, 1.0 / 3}, math.Pose{
			Position: mgl32.Vec3{0, 1.5 * bh, z},
			Rotation: mgl32.Rotate3DX(pi).Mul3(mgl32.Rotate3DY(yaw)),
		})
	}
	return scene.New(scene.Model).Add(
		scene.NewPart(scene.Part, mgl32.Vec3{1, 3 * bh, 3}, math.At(0, -1.5*bh, 0)),
		wall(1),
		wall(-1),
		corner(2.0/6, pi),
		corner(-2.0/6, 0),
		scene.NewPart(scene.Part, mgl32.Vec3{1, 4.0 / 3 * bh, 3}, math.At(0, 7.0/3*bh, 0)),
	)
}

func generateSpawnPoint() *scene.Node {
	pad := scene.NewPart(scene.SpawnLocation, mgl32.Vec3{3, SpawnHeight * bh, 3}, math.Pose{
		Position: mgl32.Vec3{0, (-2.5 + SpawnHeight/2) * bh, 0},
		Rotation: mgl32.Rotate3DY(halfPi),
	})
	cover := scene.NewPart(scene.Part, mgl32.Vec3{3, (5 - SpawnHeight) * bh, 3}, math.At(0, SpawnHeight/2*bh, 0))
	cover.Pin(scene.PropTransparency, scene.Float(0.5))
	cover.Pin(scene.PropCanCollide, scene.Bool(false))
	return scene.New(scene.Model).Add(pad, cover)
}

func generateWindow() *scene.Node {
	innerHeight := (5 - WindowRimWidth*2) * bh
	horizontal := func(y float32) *scene.Node {
		return scene.NewPart(scene.Part, mgl32.Vec3{4, WindowRimWidth * bh, 1}, math.At(0, y, 0))
	}
	vertical := func(x float32) *scene.Node {
		return scene.NewPart(scene.Part, mgl32.Vec3{WindowRimWidth, innerHeight, 1}, math.At(x, 0, 0))
	}
	pane := scene.NewPart(scene.Part, mgl32.Vec3{4 - WindowRimWidth*2, innerHeight, 1}, math.Identity())
	pane.Pin(scene.PropTransparency, scene.Float(0.5))
	return scene.New(scene.Model).Add(
		horizontal((-5+WindowRimWidth)*bh/2),
		horizontal((5-WindowRimWidth)*bh/2),
		vertical((4-WindowRimWidth)/2),
		vertical((-4+WindowRimWidth)/2),
		pane,
	)
}

func crestLip(x, z float32) *scene.Node {
	return scene.NewPart(scene.Part, mgl32.Vec3{x, LipFraction * bh, z}, math.At(0, (-1+LipFraction)*bh/2, 0))
}

// crestPart is a sloped piece of a crest. height is in brick units.
func crestPart(class scene.Class, width, height, x, z, yaw float32) *scene.Node {
	return scene.NewPart(class, mgl32.Vec3{width, (height - LipFraction) * bh, 1}, math.Pose{
		Position: mgl32.Vec3{x, (-1 + LipFraction + height) * bh / 2, z},
		Rotation: mgl32.Rotate3DY(yaw),
	})
}

func generateCrest(height float32, length int) *scene.Node {
	l := float32(length)
	return scene.New(scene.Model).Add(
		crestPart(scene.WedgePart, l, height, 0, 0.5, pi),
		crestPart(scene.WedgePart, l, height, 0, -0.5, 0),
		crestLip(l, 2),
	)
}

func generateCrestCorner(height float32) *scene.Node {
	return scene.New(scene.Model).Add(
		crestPart(scene.WedgePart, 1, height, 0.5, 0.5, pi),
		crestPart(scene.WedgePart, 1, height, 0.5, -0.5, 0),
		crestPart(scene.WedgePart, 1, height, -0.5, 0.5, halfPi),
		crestPart(scene.WedgePart, 1, height, 0.5, 0.5, 3*halfPi),
		crestPart(scene.CornerWedgePart, 1, height, -0.5, -0.5, -halfPi),
		crestLip(2, 2),
	)
}

func generateCrestEnd(height float32) *scene.Node {
	return scene.New(scene.Model).Add(
		crestPart(scene.CornerWedgePart, 1, height, 0, 0.5, halfPi),
		crestPart(scene.CornerWedgePart, 1, height, 0, -0.5, -pi),
		crestLip(1, 2),
	)
}
