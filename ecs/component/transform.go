package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an entity in world space. Forward is -Z in local space.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

var TransformComponent = NewComponent[Transform]()

// NewTransform returns an unrotated, unit-scale transform at translation.
func NewTransform(translation mgl64.Vec3) Transform {
	return Transform{
		Translation: translation,
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

func (t Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

func (t Transform) Up() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
}
