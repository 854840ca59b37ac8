package system

import (
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/sirupsen/logrus"
)

// singleton resolves an entity that must be unique. A failed lookup is logged once
// and stays quiet until a lookup succeeds again.
type singleton struct {
	kinds    []component.Kind
	reported bool
}

func newSingleton(kinds ...component.Kind) singleton {
	return singleton{kinds: kinds}
}

func (s *singleton) resolve(w *ecs.World, log logrus.FieldLogger) (ecs.Entity, bool) {
	e, err := w.Single(s.kinds...)
	if err != nil {
		if !s.reported {
			log.WithError(err).Warn("skipping tick")
			s.reported = true
		}
		return 0, false
	}
	s.reported = false
	return e, true
}

func playerQuery() singleton {
	return newSingleton(component.PlayerTagComponent)
}

func cameraQuery() singleton {
	return newSingleton(component.CameraTagComponent)
}
