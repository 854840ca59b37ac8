package component

import "github.com/go-gl/mathgl/mgl64"

// Velocity is the per-entity rate of change of a Transform.
//
// Linear is in world units per second. Angular encodes the rotation axis as its
// direction and the rate in radians per second as its length.
type Velocity struct {
	Linear  mgl64.Vec3
	Angular mgl64.Vec3
}

var VelocityComponent = NewComponent[Velocity]()
