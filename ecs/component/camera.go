package component

// Camera holds projection parameters and the rig tuning used by the camera systems.
type Camera struct {
	FovY           float64 // radians
	ViewportWidth  float64
	ViewportHeight float64

	MinDistance float64
	MaxDistance float64
	ZoomRate    float64
	PanRate     float64
}

var CameraComponent = NewComponent[Camera]()

