package math

import "github.com/go-gl/mathgl/mgl32"

// Pose is a rigid transform: a translation plus a rotation.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Mat3
}

// Identity returns the pose at the origin with no rotation.
func Identity() Pose {
	return Pose{Rotation: mgl32.Ident3()}
}

// At returns an unrotated pose at position.
func At(x, y, z float32) Pose {
	return Pose{Position: mgl32.Vec3{x, y, z}, Rotation: mgl32.Ident3()}
}

// Rotated returns an origin pose with rotation r.
func Rotated(r mgl32.Mat3) Pose {
	return Pose{Rotation: r}
}

// Compose returns p followed by other. Rotations multiply; translations
// add in world space (p's rotation is not applied to other's translation).
func (p Pose) Compose(other Pose) Pose {
	return Pose{
		Position: p.Position.Add(other.Position),
		Rotation: p.Rotation.Mul3(other.Rotation),
	}
}

// Add translates p by v in world space.
func (p Pose) Add(v mgl32.Vec3) Pose {
	p.Position = p.Position.Add(v)
	return p
}

// Sub translates p by -v in world space.
func (p Pose) Sub(v mgl32.Vec3) Pose {
	p.Position = p.Position.Sub(v)
	return p
}

// Place positions a pose given in p's local frame: its translation is
// scaled component-wise, rotated into p's frame and then composed.
func (p Pose) Place(local Pose, scale mgl32.Vec3) Pose {
	offset := mgl32.Vec3{
		local.Position.X() * scale.X(),
		local.Position.Y() * scale.Y(),
		local.Position.Z() * scale.Z(),
	}
	return p.Compose(Pose{
		Position: p.Rotation.Mul3x1(offset),
		Rotation: local.Rotation,
	})
}

// ApproxEqual reports whether every component of both poses differs by
// at most threshold.
func (p Pose) ApproxEqual(other Pose, threshold float32) bool {
	for i := range p.Position {
		if abs(p.Position[i]-other.Position[i]) > threshold {
			return false
		}
	}
	for i := range p.Rotation {
		if abs(p.Rotation[i]-other.Rotation[i]) > threshold {
			return false
		}
	}
	return true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// FrameFromGrid computes the world pose of a brick from its grid position.
// The grid's vertical axis (z) becomes world Y and grid y becomes world -Z.
func FrameFromGrid(pos mgl32.Vec3, facing Facing, inverted bool, scale float32) Pose {
	rot := facing.Yaw()
	if inverted {
		rot = rot.Mul3(Roll())
	}
	return Pose{
		Position: mgl32.Vec3{
			pos.X() * 2 * scale,
			pos.Z() * 2 * scale,
			-pos.Y() * 2 * scale,
		},
		Rotation: rot,
	}
}

// FaceTowards returns the rotation that maps +Z onto dir, keeping +Y as
// close to up as possible. dir and up must not be parallel.
func FaceTowards(dir, up mgl32.Vec3) mgl32.Mat3 {
	z := dir.Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return mgl32.Mat3FromCols(x, y, z)
}
