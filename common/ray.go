package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line from Origin along Direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// View is the slice of a camera needed to turn a pixel into a world ray.
type View struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	FovY     float64
	Width    float64
	Height   float64
}

// Aspect returns width over height, or 1 before the first layout.
func (v View) Aspect() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// ScreenRay casts a ray from the camera through pixel (px, py). Pixel (0, 0) is
// the top-left corner. ok is false for an empty viewport.
func ScreenRay(v View, px, py float64) (Ray, bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return Ray{}, false
	}
	ndcX := 2*px/v.Width - 1
	ndcY := 1 - 2*py/v.Height

	tanHalf := math.Tan(v.FovY / 2)

	right := v.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	up := v.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
	forward := v.Rotation.Rotate(mgl64.Vec3{0, 0, -1})

	dir := forward.
		Add(right.Mul(ndcX * tanHalf * v.Aspect())).
		Add(up.Mul(ndcY * tanHalf))
	return Ray{Origin: v.Position, Direction: dir}, true
}

// IntersectGround returns where r crosses the plane Y = 0. ok is false when the
// ray is parallel to the plane, points away from it, or the result is not finite.
func (r Ray) IntersectGround() (mgl64.Vec3, bool) {
	if r.Direction[1] == 0 {
		return mgl64.Vec3{}, false
	}
	t := -r.Origin[1] / r.Direction[1]
	if t < 0 || !Finite(t) {
		return mgl64.Vec3{}, false
	}
	p := r.Origin.Add(r.Direction.Mul(t))
	p[1] = 0
	if !FiniteVec3(p) {
		return mgl64.Vec3{}, false
	}
	return p, true
}

// Project maps a world point to pixel coordinates. depth is the distance along the
// view direction; ok is false for points at or behind the camera.
func (v View) Project(p mgl64.Vec3) (px, py, depth float64, ok bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0, 0, false
	}
	local := v.Rotation.Conjugate().Rotate(p.Sub(v.Position))
	depth = -local[2]
	if depth <= 0 {
		return 0, 0, 0, false
	}
	tanHalf := math.Tan(v.FovY / 2)
	ndcX := local[0] / (depth * tanHalf * v.Aspect())
	ndcY := local[1] / (depth * tanHalf)
	px = (ndcX + 1) / 2 * v.Width
	py = (1 - ndcY) / 2 * v.Height
	return px, py, depth, Finite(px, py)
}

// PixelsPerUnit is the on-screen size of one world unit at depth.
func (v View) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return v.Height / (2 * depth * math.Tan(v.FovY/2))
}
