package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PlayerFile  = "player.yaml"
	FieldFile   = "field.yaml"
	SpawnerFile = "spawner.yaml"
	RunFile     = "run.yaml"
	ScrollsFile = "scrolls.yaml"
)

// LoadSpec reads filename (disk first, then the embedded copy) and decodes it.
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

type PlayerSpec struct {
	Name        string     `yaml:"name"`
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	Mass        float64    `yaml:"mass"`
	MaxSpeed    float64    `yaml:"max_speed"`
	Damping     float64    `yaml:"damping"`
	Restitution float64    `yaml:"restitution"`
	Charge      ChargeSpec `yaml:"charge"`
	Dash        DashSpec   `yaml:"dash"`
	Start       StartSpec  `yaml:"start"`
	Color       *YAMLColor `yaml:"color"`
}

type ChargeSpec struct {
	Max          float64 `yaml:"max"`
	MinMagnitude float64 `yaml:"min_magnitude"`
	Step         float64 `yaml:"step"`
	Start        float64 `yaml:"start"`
}

type DashSpec struct {
	MaxCharges int     `yaml:"max_charges"`
	Distance   float64 `yaml:"distance"`
}

type StartSpec struct {
	XFraction float64 `yaml:"x_fraction"`
	YFraction float64 `yaml:"y_fraction"`
	VX        float64 `yaml:"vx"`
	VY        float64 `yaml:"vy"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: player size must be positive, got %vx%v", PlayerFile, spec.Width, spec.Height)
	}
	if spec.Charge.MinMagnitude <= 0 || spec.Charge.Max < spec.Charge.MinMagnitude {
		return nil, fmt.Errorf("prefabs: %s: charge limits out of order (min %v, max %v)", PlayerFile, spec.Charge.MinMagnitude, spec.Charge.Max)
	}
	return &spec, nil
}

const (
	FieldPolicyRandom = "random"
	FieldPolicyScript = "script"
)

type FieldSpec struct {
	Policy        string  `yaml:"policy"`
	Script        string  `yaml:"script"`
	MaxElectric   float64 `yaml:"max_electric"`
	VerticalScale float64 `yaml:"vertical_scale"`
	MaxMagnetic   float64 `yaml:"max_magnetic"`
	Interval      float64 `yaml:"interval"`
	LaserChance   float64 `yaml:"laser_chance"`
}

func LoadFieldSpec() (*FieldSpec, error) {
	spec, err := LoadSpec[FieldSpec](FieldFile)
	if err != nil {
		return nil, err
	}
	switch spec.Policy {
	case "", FieldPolicyRandom:
		spec.Policy = FieldPolicyRandom
	case FieldPolicyScript:
		if strings.TrimSpace(spec.Script) == "" {
			return nil, fmt.Errorf("prefabs: %s: script policy needs a script", FieldFile)
		}
	default:
		return nil, fmt.Errorf("prefabs: %s: unknown field policy %q", FieldFile, spec.Policy)
	}
	return &spec, nil
}

type SpawnerSpec struct {
	Laser  LaserSpawnSpec  `yaml:"laser"`
	Scroll ScrollSpawnSpec `yaml:"scroll"`
}

type LaserSpawnSpec struct {
	FirstInterval float64    `yaml:"first_interval"`
	MinInterval   float64    `yaml:"min_interval"`
	MaxInterval   float64    `yaml:"max_interval"`
	MinSpeed      float64    `yaml:"min_speed"`
	SpeedJitter   int        `yaml:"speed_jitter"`
	Length        float64    `yaml:"length"`
	Thickness     float64    `yaml:"thickness"`
	Color         *YAMLColor `yaml:"color"`
}

type ScrollSpawnSpec struct {
	FirstInterval float64    `yaml:"first_interval"`
	FirstJitter   int        `yaml:"first_jitter"`
	MinInterval   float64    `yaml:"min_interval"`
	MaxInterval   float64    `yaml:"max_interval"`
	MaxOnScreen   int        `yaml:"max_on_screen"`
	Size          float64    `yaml:"size"`
	Margin        float64    `yaml:"margin"`
	Color         *YAMLColor `yaml:"color"`
}

func LoadSpawnerSpec() (*SpawnerSpec, error) {
	spec, err := LoadSpec[SpawnerSpec](SpawnerFile)
	if err != nil {
		return nil, err
	}
	if spec.Laser.MaxInterval < spec.Laser.MinInterval || spec.Scroll.MaxInterval < spec.Scroll.MinInterval {
		return nil, fmt.Errorf("prefabs: %s: max_interval below min_interval", SpawnerFile)
	}
	return &spec, nil
}

type RunSpec struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	RequiredDistance float64 `yaml:"required_distance"`
	ScrollSpeed      float64 `yaml:"scroll_speed"`
	DistanceScale    float64 `yaml:"distance_scale"`
	MasterVolume     float64 `yaml:"master_volume"`
}

func LoadRunSpec() (*RunSpec, error) {
	spec, err := LoadSpec[RunSpec](RunFile)
	if err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s RunSpec) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("prefabs: %s: arena size must be positive, got %vx%v", RunFile, s.Width, s.Height)
	}
	return nil
}

type ScrollText struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type ScrollsSpec struct {
	Scrolls []ScrollText `yaml:"scrolls"`
}

func LoadScrollsSpec() (*ScrollsSpec, error) {
	spec, err := LoadSpec[ScrollsSpec](ScrollsFile)
	if err != nil {
		return nil, err
	}
	if len(spec.Scrolls) == 0 {
		return nil, fmt.Errorf("prefabs: %s: no scrolls defined", ScrollsFile)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// Or returns c, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
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

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
