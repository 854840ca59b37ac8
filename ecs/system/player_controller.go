package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/logger"
	"github.com/sirupsen/logrus"
)

// PlayerMoveSystem turns directional actions into planar player velocity.
type PlayerMoveSystem struct {
	player singleton
	log    logrus.FieldLogger
}

func NewPlayerMoveSystem(log logrus.FieldLogger) *PlayerMoveSystem {
	return &PlayerMoveSystem{
		player: playerQuery(),
		log:    logger.OrStandard(log).WithField("system", "player_move"),
	}
}

func (p *PlayerMoveSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := p.player.resolve(w, p.log)
	if !ok {
		return
	}
	state, ok := ecs.Get(w, player, component.ActionStateComponent)
	if !ok {
		return
	}
	ctrl, ok := ecs.Get(w, player, component.PlayerComponent)
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, player, component.VelocityComponent)
	if !ok {
		return
	}
	vel.Linear = MoveVelocity(state, ctrl.Speed)
}

// MoveVelocity sums a unit step per held direction and scales it per axis.
// Up+Right gives (speed, 0, speed): diagonals are not normalised.
func MoveVelocity(state *component.ActionState, speed float64) mgl64.Vec3 {
	var dir mgl64.Vec2
	if state.Pressed(component.ActionUp) {
		dir[1]++
	}
	if state.Pressed(component.ActionDown) {
		dir[1]--
	}
	if state.Pressed(component.ActionLeft) {
		dir[0]--
	}
	if state.Pressed(component.ActionRight) {
		dir[0]++
	}
	// TODO: decide whether diagonals should be clamped to Speed.
	return mgl64.Vec3{dir[0] * speed, 0, dir[1] * speed}
}
