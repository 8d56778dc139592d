package math

import (
	stdmath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrameFromGridAxisRemap(t *testing.T) {
	p := FrameFromGrid(mgl32.Vec3{1, 2, 3}, 0, false, 0.5)
	want := mgl32.Vec3{1, 3, -2}
	if p.Position != want {
		t.Errorf("Position = %v, want %v", p.Position, want)
	}

	p = FrameFromGrid(mgl32.Vec3{-0.25, 0.75, 0.1}, 2, true, 1)
	want = mgl32.Vec3{-0.5, 0.2, -1.5}
	if !near(p.Position, want, 1e-6) {
		t.Errorf("Position = %v, want %v", p.Position, want)
	}
}

func TestPoseAddSub(t *testing.T) {
	p := At(1, 2, 3)
	v := mgl32.Vec3{0.5, -1, 2}
	if got := p.Add(v).Sub(v); got != p {
		t.Errorf("Add then Sub = %v, want %v", got, p)
	}
	if got := p.Add(v).Position; got != (mgl32.Vec3{1.5, 1, 5}) {
		t.Errorf("Add = %v", got)
	}
}

func TestPoseComposeDoesNotRotateTranslation(t *testing.T) {
	a := Pose{Position: mgl32.Vec3{1, 0, 0}, Rotation: Facing(1).Yaw()}
	b := At(0, 0, -1)
	got := a.Compose(b)
	if got.Position != (mgl32.Vec3{1, 0, -1}) {
		t.Errorf("Compose position = %v, want (1,0,-1)", got.Position)
	}
	if got.Rotation != a.Rotation {
		t.Errorf("Compose rotation = %v, want %v", got.Rotation, a.Rotation)
	}
}

func TestPoseComposeAssociative(t *testing.T) {
	a := Pose{Position: mgl32.Vec3{1, 2, 3}, Rotation: Facing(1).Yaw()}
	b := Pose{Position: mgl32.Vec3{-1, 0, 4}, Rotation: Roll()}
	c := Pose{Position: mgl32.Vec3{0, 5, 0}, Rotation: Facing(3).Yaw()}

	left := a.Compose(b).Compose(c)
	right := a.Compose(b.Compose(c))
	if !left.ApproxEqual(right, 1e-6) {
		t.Errorf("(ab)c = %v, a(bc) = %v", left, right)
	}
}

func TestPosePlace(t *testing.T) {
	outer := Pose{Position: mgl32.Vec3{10, 0, 0}, Rotation: Facing(1).Yaw()}
	local := Pose{Position: mgl32.Vec3{0, 1, -1}, Rotation: mgl32.Rotate3DY(float32(stdmath.Pi))}

	got := outer.Place(local, mgl32.Vec3{2, 2, 2})
	// (0,2,-2) turned a quarter right is (2,2,0).
	want := mgl32.Vec3{12, 2, 0}
	if !near(got.Position, want, 1e-5) {
		t.Errorf("Place position = %v, want %v", got.Position, want)
	}
	if !got.ApproxEqual(Pose{Position: got.Position, Rotation: outer.Rotation.Mul3(local.Rotation)}, 1e-6) {
		t.Errorf("Place rotation = %v", got.Rotation)
	}
}

func TestFaceTowards(t *testing.T) {
	dir := mgl32.Vec3{1, 1, 0}
	r := FaceTowards(dir, mgl32.Vec3{0, 1, 0})

	got := r.Mul3x1(mgl32.Vec3{0, 0, 1})
	if !near(got, dir.Normalize(), 1e-6) {
		t.Errorf("FaceTowards maps +Z to %v, want %v", got, dir.Normalize())
	}
	if d := r.Det(); stdmath.Abs(float64(d-1)) > 1e-5 {
		t.Errorf("det = %v, want 1", d)
	}
	if x := r.Col(0); x.Y() != 0 {
		t.Errorf("x axis %v leaves the horizontal plane", x)
	}
}

func TestPoseApproxEqualNearZero(t *testing.T) {
	a := At(1e-7, 0, 1)
	b := At(0, -1e-7, 1)
	if !a.ApproxEqual(b, 1e-6) {
		t.Errorf("%v and %v should be approximately equal", a, b)
	}
	if a.ApproxEqual(At(0, 0, 1.1), 1e-6) {
		t.Error("poses 0.1 apart should differ")
	}
}

// near reports whether a and b are within eps of each other.
func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}
