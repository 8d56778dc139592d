package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blsconv/pkg/math"
)

// Value is a typed property value. Tag names the element used to
// serialize it.
type Value interface {
	Tag() string
}

type (
	// Bool is a boolean property.
	Bool bool
	// Float is a 32-bit float property.
	Float float32
	// Token is an enumerated property.
	Token uint32
	// Int is an integer property.
	Int int64
	// String is a text property.
	String string
	// Vector3 is a 3-vector property, used for sizes and velocities.
	Vector3 mgl32.Vec3
	// CFrame is a pose property.
	CFrame math.Pose
	// PhysicalProperties toggles custom physics on a part.
	PhysicalProperties struct {
		CustomPhysics bool
	}
)

func (Bool) Tag() string               { return "bool" }
func (Float) Tag() string              { return "float" }
func (Token) Tag() string              { return "token" }
func (Int) Tag() string                { return "int" }
func (String) Tag() string             { return "string" }
func (Vector3) Tag() string            { return "Vector3" }
func (CFrame) Tag() string             { return "CoordinateFrame" }
func (Color) Tag() string              { return "Color3uint8" }
func (PhysicalProperties) Tag() string { return "PhysicalProperties" }
