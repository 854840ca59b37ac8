package system

import (
	"github.com/milk9111/snowfield/ecs"
	"github.com/sirupsen/logrus"
)

// NewPipeline builds the per-tick chain. Order matters: input, then the player
// controllers, then camera follow before pan and zoom, and motion last.
func NewPipeline(source ActionSource, log logrus.FieldLogger) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(source, log),
		NewPlayerMoveSystem(log),
		NewCursorSystem(log),
		NewPlayerAimSystem(log),
		NewCameraFollowSystem(log),
		NewCameraPanSystem(log),
		NewCameraZoomSystem(log),
		NewMotionSystem(),
	)
}
