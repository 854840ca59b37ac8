package component

import "image/color"

// Model names the scene asset an entity is drawn with.
type Model struct {
	Name   string
	Color  color.RGBA
	Radius float64
}

var ModelComponent = NewComponent[Model]()

type Ground struct {
	Width float64
	Depth float64
	Color color.RGBA
}

var GroundComponent = NewComponent[Ground]()
