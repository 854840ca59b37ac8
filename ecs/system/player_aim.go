package system

import (
	"github.com/milk9111/snowfield/common"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/logger"
	"github.com/sirupsen/logrus"
)

// PlayerAimSystem yaws the player to face the cursor on the ground.
type PlayerAimSystem struct {
	player singleton
	log    logrus.FieldLogger
}

func NewPlayerAimSystem(log logrus.FieldLogger) *PlayerAimSystem {
	return &PlayerAimSystem{
		player: playerQuery(),
		log:    logger.OrStandard(log).WithField("system", "player_aim"),
	}
}

func (p *PlayerAimSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := p.player.resolve(w, p.log)
	if !ok {
		return
	}
	cursor, ok := ecs.Get(w, player, component.CursorWorldPositionComponent)
	if !ok || !cursor.Valid {
		return
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return
	}

	// no rotation when the cursor sits on the player or the result is not finite
	rot, ok := common.YawToward(transform.Translation, cursor.Position)
	if !ok || !common.FiniteQuat(rot) {
		return
	}
	transform.Rotation = rot
}
