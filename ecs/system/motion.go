package system

import (
	"github.com/milk9111/snowfield/common"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
)

// MotionSystem applies every Velocity to its Transform. It must run after all
// controllers so their writes take effect in the same tick.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaSeconds()
	ecs.ForEach2(w, component.TransformComponent, component.VelocityComponent,
		func(_ ecs.Entity, transform *component.Transform, vel *component.Velocity) {
			Integrate(transform, *vel, dt)
		})
}

// Integrate advances transform by vel over dt seconds.
func Integrate(transform *component.Transform, vel component.Velocity, dt float64) {
	transform.Translation = transform.Translation.Add(vel.Linear.Mul(dt))
	transform.Rotation = common.RotateByAngular(transform.Rotation, vel.Angular, dt)
}
