// Package math provides the coordinate frame algebra used to place bricks.
package math

import "github.com/go-gl/mathgl/mgl32"

// Facing is one of the four quantized 90° yaw orientations of a brick.
// Facing 0 points along -Z; each increment turns a quarter to the right.
type Facing uint8

// Number of distinct facings.
const Facings = 4

// Add returns the facing turned n quarter turns, wrapping around.
func (f Facing) Add(n int) Facing {
	v := (int(f%Facings) + n) % Facings
	if v < 0 {
		v += Facings
	}
	return Facing(v)
}

// Forward returns the unit vector the facing points along.
func (f Facing) Forward() mgl32.Vec3 {
	switch f % Facings {
	case 0:
		return mgl32.Vec3{0, 0, -1}
	case 1:
		return mgl32.Vec3{1, 0, 0}
	case 2:
		return mgl32.Vec3{0, 0, 1}
	default:
		return mgl32.Vec3{-1, 0, 0}
	}
}

// Right returns the unit vector to the right of Forward.
func (f Facing) Right() mgl32.Vec3 {
	switch f % Facings {
	case 0:
		return mgl32.Vec3{1, 0, 0}
	case 1:
		return mgl32.Vec3{0, 0, 1}
	case 2:
		return mgl32.Vec3{-1, 0, 0}
	default:
		return mgl32.Vec3{0, 0, -1}
	}
}

// cos and sin of -f*90°, exact.
var quarterTurns = [Facings][2]float32{
	{1, 0},
	{0, -1},
	{-1, 0},
	{0, 1},
}

// Yaw returns the rotation about +Y by -f*90°.
// Entries are exact so that composed frames never pick up trig noise.
func (f Facing) Yaw() mgl32.Mat3 {
	cs := quarterTurns[f%Facings]
	c, s := cs[0], cs[1]
	return mgl32.Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// Roll returns the 180° rotation about +Z used for inverted bricks.
func Roll() mgl32.Mat3 {
	return mgl32.Mat3{
		-1, 0, 0,
		0, -1, 0,
		0, 0, 1,
	}
}
