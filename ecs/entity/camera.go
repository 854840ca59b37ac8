package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/snowfield/common"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/prefabs"
)

// NewCamera places the camera StartingDistance above the origin, looking at LookAt.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	transform := component.NewTransform(mgl64.Vec3{0, spec.StartingDistance, 0})
	rot, ok := common.LookRotation(spec.LookAt.Vec3().Sub(transform.Translation), spec.Up.Vec3())
	if !ok {
		return 0, fmt.Errorf("camera: look at %v with up %v is degenerate", spec.LookAt.Vec3(), spec.Up.Vec3())
	}
	transform.Rotation = rot
	if err := ecs.Add(w, camera, component.TransformComponent, &transform); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.VelocityComponent, &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("camera: add velocity: %w", err)
	}

	cam := component.Camera{FovY: spec.FovY()}
	ApplyCameraTuning(&cam, spec)
	if err := ecs.Add(w, camera, component.CameraComponent, &cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}

// ApplyCameraTuning copies the rig tuning from spec, leaving viewport and
// transform alone so it can run on a live camera.
func ApplyCameraTuning(cam *component.Camera, spec prefabs.CameraSpec) {
	cam.FovY = spec.FovY()
	cam.MinDistance = spec.MinDistance
	cam.MaxDistance = spec.MaxDistance
	cam.ZoomRate = spec.ZoomRate
	cam.PanRate = spec.PanRate
}
