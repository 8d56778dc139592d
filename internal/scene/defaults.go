package scene

import "github.com/go-gl/mathgl/mgl32"

// Surface tokens.
const (
	SurfaceSmooth Token = 0
	SurfaceStuds  Token = 3
	SurfaceInlet  Token = 4
)

// MaterialPlastic is the default part material token.
const MaterialPlastic Token = 256

// partDefaults holds the surface and material properties every part
// carries unless overridden. Values are immutable, so the map is only
// ever read and copied.
var partDefaults = map[string]Value{
	"Anchored":                 Bool(true),
	"BackParamA":               Float(-0.5),
	"BackParamB":               Float(0.5),
	"BackSurface":              SurfaceSmooth,
	"BackSurfaceInput":         Token(0),
	"BottomParamA":             Float(-0.5),
	"BottomParamB":             Float(0.5),
	"BottomSurface":            SurfaceInlet,
	"BottomSurfaceInput":       Token(0),
	"CanCollide":               Bool(true),
	"CustomPhysicalProperties": PhysicalProperties{},
	"Elasticity":               Float(0.5),
	"Friction":                 Float(0.5),
	"FrontParamA":              Float(0.5),
	"FrontParamB":              Float(0.5),
	"FrontSurface":             SurfaceSmooth,
	"FrontSurfaceInput":        Token(0),
	"LeftParamA":               Float(0.5),
	"LeftParamB":               Float(0.5),
	"LeftSurface":              SurfaceSmooth,
	"LeftSurfaceInput":         Token(0),
	"Locked":                   Bool(false),
	"Material":                 MaterialPlastic,
	"Reflectance":              Float(0),
	"RightParamA":              Float(0.5),
	"RightParamB":              Float(0.5),
	"RightSurface":             SurfaceSmooth,
	"RightSurfaceInput":        Token(0),
	"RotVelocity":              Vector3(mgl32.Vec3{}),
	"TopParamA":                Float(-0.5),
	"TopParamB":                Float(0.5),
	"TopSurface":               SurfaceStuds,
	"TopSurfaceInput":          Token(0),
	"Transparency":             Float(0),
	"Velocity":                 Vector3(mgl32.Vec3{}),
	"formFactorRaw":            Token(1),
	"shape":                    Token(1),
}

// DefaultPartProperties returns a fresh copy of the part defaults.
func DefaultPartProperties() map[string]Value {
	props := make(map[string]Value, len(partDefaults)+4)
	for k, v := range partDefaults {
		props[k] = v
	}
	return props
}
