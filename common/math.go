package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Finite reports whether every component of v is neither NaN nor infinite.
func Finite(v ...float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func FiniteVec3(v mgl64.Vec3) bool {
	return Finite(v[0], v[1], v[2])
}

func FiniteQuat(q mgl64.Quat) bool {
	return Finite(q.W, q.V[0], q.V[1], q.V[2])
}

// LookRotation returns the rotation whose forward (-Z) points along dir with the
// given up hint. ok is false when dir is zero or parallel to up.
func LookRotation(dir, up mgl64.Vec3) (mgl64.Quat, bool) {
	if dir.Len() == 0 || up.Len() == 0 {
		return mgl64.QuatIdent(), false
	}
	f := dir.Normalize()
	r := f.Cross(up)
	if r.Len() < 1e-9 {
		return mgl64.QuatIdent(), false
	}
	r = r.Normalize()
	u := r.Cross(f)

	m := mgl64.Mat3FromCols(r, u, f.Mul(-1))
	q := mgl64.Mat4ToQuat(m.Mat4()).Normalize()
	if !FiniteQuat(q) {
		return mgl64.QuatIdent(), false
	}
	return q, true
}

// YawToward returns a rotation about world +Y that turns forward (-Z) from "from"
// toward "to", ignoring height.
func YawToward(from, to mgl64.Vec3) (mgl64.Quat, bool) {
	dir := to.Sub(from)
	dir[1] = 0
	return LookRotation(dir, mgl64.Vec3{0, 1, 0})
}

// RotateByAngular composes the rotation swept by angular (axis * rad/s) over dt onto q.
func RotateByAngular(q mgl64.Quat, angular mgl64.Vec3, dt float64) mgl64.Quat {
	rate := angular.Len()
	if rate == 0 || dt == 0 {
		return q
	}
	step := mgl64.QuatRotate(rate*dt, angular.Mul(1/rate))
	return step.Mul(q).Normalize()
}
