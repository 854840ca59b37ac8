package system

import (
	"github.com/milk9111/snowfield/common"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/logger"
	"github.com/sirupsen/logrus"
)

// CursorSystem projects the pointer through the camera onto the ground plane.
type CursorSystem struct {
	player singleton
	camera singleton
	log    logrus.FieldLogger
}

func NewCursorSystem(log logrus.FieldLogger) *CursorSystem {
	return &CursorSystem{
		player: playerQuery(),
		camera: cameraQuery(),
		log:    logger.OrStandard(log).WithField("system", "cursor"),
	}
}

// Update leaves the previous cursor position in place when the ray misses the ground.
func (c *CursorSystem) Update(w *ecs.World) {
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
	cursor, ok := ecs.Get(w, player, component.CursorWorldPositionComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camera, component.TransformComponent)
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camera, component.CameraComponent)
	if !ok {
		return
	}

	ray, ok := common.ScreenRay(common.View{
		Position: camTransform.Translation,
		Rotation: camTransform.Rotation,
		FovY:     cam.FovY,
		Width:    cam.ViewportWidth,
		Height:   cam.ViewportHeight,
	}, state.Pointer[0], state.Pointer[1])
	if !ok {
		return
	}
	hit, ok := ray.IntersectGround()
	if !ok {
		c.log.WithField("ray", ray).Debug("cursor ray misses ground")
		return
	}
	cursor.Position = hit
	cursor.Valid = true
}
