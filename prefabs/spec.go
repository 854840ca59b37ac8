package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/snowfield/ecs/component"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// GameFile is the prefab holding every tunable of the prototype.
const GameFile = "game.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

type GameSpec struct {
	Window  WindowSpec                   `yaml:"window"`
	Player  PlayerSpec                   `yaml:"player"`
	Camera  CameraSpec                   `yaml:"camera"`
	Enemies []ActorSpec                  `yaml:"enemies"`
	Ground  GroundSpec                   `yaml:"ground"`
	Input   map[string]BindingSpec `yaml:"input"`
}

type WindowSpec struct {
	Title      string    `yaml:"title"`
	ClearColor YAMLColor `yaml:"clear_color"`
	TPS        int       `yaml:"tps"`
}

// ActorSpec describes anything spawned with a model and a starting velocity.
type ActorSpec struct {
	Name      string    `yaml:"name"`
	Model     string    `yaml:"model"`
	Color     YAMLColor `yaml:"color"`
	Radius    float64   `yaml:"radius"`
	Transform Vec3Spec  `yaml:"transform"`
	Velocity  Vec3Spec  `yaml:"velocity"`
}

type PlayerSpec struct {
	ActorSpec `yaml:",inline"`
	Speed     float64 `yaml:"speed"`
}

type CameraSpec struct {
	FovYDegrees      float64  `yaml:"fov_y_degrees"`
	StartingDistance float64  `yaml:"starting_distance"`
	MinDistance      float64  `yaml:"min_distance"`
	MaxDistance      float64  `yaml:"max_distance"`
	ZoomRate         float64  `yaml:"zoom_rate"`
	PanRate          float64  `yaml:"pan_rate"`
	LookAt           Vec3Spec `yaml:"look_at"`
	Up               Vec3Spec `yaml:"up"`
}

type GroundSpec struct {
	Width float64   `yaml:"width"`
	Depth float64   `yaml:"depth"`
	Color YAMLColor `yaml:"color"`
}

// BindingSpec is the YAML shape of one action binding. Key and button names stay
// strings here and are resolved against the device by the input package.
type BindingSpec struct {
	Keys         []string `yaml:"keys"`
	MouseButtons []string `yaml:"mouse_buttons"`
	Axis         string   `yaml:"axis"`
	Scale        *float64 `yaml:"scale"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadGameSpec reads and validates game.yaml.
func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseGameSpec decodes and validates a game spec held in memory.
func ParseGameSpec(data []byte) (*GameSpec, error) {
	var spec GameSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", GameFile, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate enforces max > starting > min and other ranges the systems rely on.
func (s *GameSpec) Validate() error {
	c := s.Camera
	if !(c.MaxDistance > c.StartingDistance && c.StartingDistance > c.MinDistance) {
		return fmt.Errorf("%w: camera distances must satisfy max > starting > min, got max=%v starting=%v min=%v",
			ErrInvalidSpec, c.MaxDistance, c.StartingDistance, c.MinDistance)
	}
	if c.ZoomRate <= 0 {
		return fmt.Errorf("%w: camera zoom_rate must be positive, got %v", ErrInvalidSpec, c.ZoomRate)
	}
	if c.FovYDegrees <= 0 || c.FovYDegrees >= 180 {
		return fmt.Errorf("%w: camera fov_y_degrees must be in (0, 180), got %v", ErrInvalidSpec, c.FovYDegrees)
	}
	if c.Up.Vec3().Len() == 0 {
		return fmt.Errorf("%w: camera up must be non-zero", ErrInvalidSpec)
	}
	if s.Player.Speed < 0 {
		return fmt.Errorf("%w: player speed must not be negative, got %v", ErrInvalidSpec, s.Player.Speed)
	}
	if s.Ground.Width < 0 || s.Ground.Depth < 0 {
		return fmt.Errorf("%w: ground size must not be negative", ErrInvalidSpec)
	}
	if s.Window.TPS < 0 {
		return fmt.Errorf("%w: window tps must not be negative, got %v", ErrInvalidSpec, s.Window.TPS)
	}
	for name := range s.Input {
		if _, ok := component.ParseAction(name); !ok {
			return fmt.Errorf("%w: input binds unknown action %q", ErrInvalidSpec, name)
		}
	}
	return nil
}

func (c CameraSpec) FovY() float64 {
	return c.FovYDegrees * math.Pi / 180
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name such as "silver".
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.RGBA = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
