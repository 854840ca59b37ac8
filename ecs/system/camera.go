package system

import (
	"math"

	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/logger"
	"github.com/sirupsen/logrus"
)

// CameraFollowSystem moves the camera in lockstep with the player by copying
// the player's linear velocity.
type CameraFollowSystem struct {
	player singleton
	camera singleton
	log    logrus.FieldLogger
}

func NewCameraFollowSystem(log logrus.FieldLogger) *CameraFollowSystem {
	return &CameraFollowSystem{
		player: playerQuery(),
		camera: cameraQuery(),
		log:    logger.OrStandard(log).WithField("system", "camera_follow"),
	}
}

func (c *CameraFollowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := c.player.resolve(w, c.log)
	if !ok {
		return
	}
	camera, ok := c.camera.resolve(w, c.log)
	if !ok {
		return
	}
	playerVel, ok := ecs.Get(w, player, component.VelocityComponent)
	if !ok {
		return
	}
	camVel, ok := ecs.Get(w, camera, component.VelocityComponent)
	if !ok {
		return
	}
	camVel.Linear = playerVel.Linear
}

// CameraPanSystem slides the camera over the ground while AllowLook is held.
type CameraPanSystem struct {
	player singleton
	camera singleton
	log    logrus.FieldLogger
}

func NewCameraPanSystem(log logrus.FieldLogger) *CameraPanSystem {
	return &CameraPanSystem{
		player: playerQuery(),
		camera: cameraQuery(),
		log:    logger.OrStandard(log).WithField("system", "camera_pan"),
	}
}

// Update writes the camera position directly; pan does not go through velocity.
func (c *CameraPanSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := c.player.resolve(w, c.log)
	if !ok {
		return
	}
	camera, ok := c.camera.resolve(w, c.log)
	if !ok {
		return
	}
	state, ok := ecs.Get(w, player, component.ActionStateComponent)
	if !ok || !state.Pressed(component.ActionAllowLook) {
		return
	}
	transform, ok := ecs.Get(w, camera, component.TransformComponent)
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camera, component.CameraComponent)
	if !ok {
		return
	}

	look := state.AxisPair(component.ActionLook)
	transform.Translation[0] += cam.PanRate * look[0]
	transform.Translation[2] += cam.PanRate * look[1]
}

// CameraZoomSystem drives the camera height from the zoom axis and springs it
// back once it leaves [MinDistance, MaxDistance].
type CameraZoomSystem struct {
	player singleton
	camera singleton
	log    logrus.FieldLogger
}

func NewCameraZoomSystem(log logrus.FieldLogger) *CameraZoomSystem {
	return &CameraZoomSystem{
		player: playerQuery(),
		camera: cameraQuery(),
		log:    logger.OrStandard(log).WithField("system", "camera_zoom"),
	}
}

func (c *CameraZoomSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := c.player.resolve(w, c.log)
	if !ok {
		return
	}
	camera, ok := c.camera.resolve(w, c.log)
	if !ok {
		return
	}
	state, ok := ecs.Get(w, player, component.ActionStateComponent)
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, camera, component.TransformComponent)
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camera, component.CameraComponent)
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, camera, component.VelocityComponent)
	if !ok {
		return
	}

	zoom := state.Value(component.ActionZoom)
	vel.Linear[1] = ZoomVelocity(transform.Translation[1], zoom, *cam)
}

// ZoomVelocity returns the camera's vertical velocity for height y. Inside the
// bounds the zoom input passes through; outside them the input is ignored and the
// camera is pushed back at twice the zoom rate per unit of (rounded) overshoot.
// Negative zoom moves the camera down (in), positive moves it up (out).
func ZoomVelocity(y, zoom float64, cam component.Camera) float64 {
	maxExcess := math.Round(y - cam.MaxDistance)
	minExcess := math.Round(cam.MinDistance - y)

	switch {
	case maxExcess <= 0 && minExcess <= 0:
		return zoom * cam.ZoomRate
	case maxExcess > 0:
		return -maxExcess * cam.ZoomRate * 2
	default:
		return minExcess * cam.ZoomRate * 2
	}
}
