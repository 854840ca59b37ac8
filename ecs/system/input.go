package system

import (
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/logger"
	"github.com/sirupsen/logrus"
)

// ActionSource produces one input snapshot per tick.
type ActionSource interface {
	Snapshot() component.ActionState
}

type InputSystem struct {
	source ActionSource
	player singleton
	log    logrus.FieldLogger
}

func NewInputSystem(source ActionSource, log logrus.FieldLogger) *InputSystem {
	return &InputSystem{
		source: source,
		player: playerQuery(),
		log:    logger.OrStandard(log).WithField("system", "input"),
	}
}

// Update copies this tick's snapshot onto the player's ActionState.
func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}
	player, ok := i.player.resolve(w, i.log)
	if !ok {
		return
	}
	state, ok := ecs.Get(w, player, component.ActionStateComponent)
	if !ok {
		return
	}
	*state = i.source.Snapshot()
}
