package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownProjectileClass = errors.New("prefabs: unknown projectile class")

// LoadSpec reads and decodes a prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, src, err := LoadWithSource(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if src == SourceDisk {
		log.Printf("prefabs: %s loaded from %s/", filename, Dir)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec names the prefabs that make up the boss arena.
type SceneSpec struct {
	Name          string `yaml:"name"`
	Boss          string `yaml:"boss"`
	Camera        string `yaml:"camera"`
	BulletCounter string `yaml:"bullet_counter"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Boss == "" {
		spec.Boss = "boss.yaml"
	}
	if spec.Camera == "" {
		spec.Camera = "camera.yaml"
	}
	if spec.BulletCounter == "" {
		spec.BulletCounter = "bullet_counter.yaml"
	}
	return &spec, nil
}

type BossSpec struct {
	Name          string          `yaml:"name"`
	Transform     TransformSpec   `yaml:"transform"`
	Shape         ShapeSpec       `yaml:"shape"`
	RenderLayer   RenderLayerSpec `yaml:"render_layer"`
	FirePoint     PointSpec       `yaml:"fire_point"`
	MoveSpeed     float64         `yaml:"move_speed"`
	RotationSpeed float64         `yaml:"rotation_speed"`
	ModeDuration  float64         `yaml:"mode_duration"`
	TotalDuration float64         `yaml:"total_duration"`
	Circular      CircularSpec    `yaml:"circular"`
	Barrier       BarrierSpec     `yaml:"barrier"`
	Spiral        SpiralSpec      `yaml:"spiral"`
}

type CircularSpec struct {
	Target     *PointSpec `yaml:"target"`
	FireRate   float64    `yaml:"fire_rate"`
	Count      int        `yaml:"count"`
	Step       float64    `yaml:"step"`
	Projectile string     `yaml:"projectile"`
}

type BarrierSpec struct {
	FireRate      float64  `yaml:"fire_rate"`
	HalfWidth     int      `yaml:"half_width"`
	Spacing       float64  `yaml:"spacing"`
	Heading       *float64 `yaml:"heading"`
	SwayAmplitude float64  `yaml:"sway_amplitude"`
	SwayFrequency float64  `yaml:"sway_frequency"`
	Projectile    string   `yaml:"projectile"`
}

type SpiralSpec struct {
	FireRate   float64 `yaml:"fire_rate"`
	Spin       float64 `yaml:"spin"`
	Projectile string  `yaml:"projectile"`
}

func LoadBossSpec(filename string) (*BossSpec, error) {
	spec, err := LoadSpec[BossSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.ApplyDefaults()
	return &spec, nil
}

// ApplyDefaults fills every zero tuning value with the stock encounter.
func (s *BossSpec) ApplyDefaults() {
	if s.MoveSpeed == 0 {
		s.MoveSpeed = 1
	}
	if s.RotationSpeed == 0 {
		s.RotationSpeed = 30
	}
	if s.ModeDuration <= 0 {
		s.ModeDuration = 10
	}
	if s.TotalDuration <= 0 {
		s.TotalDuration = 30
	}

	if s.Circular.Target == nil {
		s.Circular.Target = &PointSpec{X: 0, Y: 6.5}
	}
	if s.Circular.FireRate <= 0 {
		s.Circular.FireRate = 0.5
	}
	if s.Circular.Count <= 0 {
		s.Circular.Count = 8
	}
	if s.Circular.Step == 0 {
		s.Circular.Step = 45
	}
	if s.Circular.Projectile == "" {
		s.Circular.Projectile = "bullet_small.yaml"
	}

	if s.Barrier.FireRate <= 0 {
		s.Barrier.FireRate = 0.5
	}
	if s.Barrier.HalfWidth <= 0 {
		s.Barrier.HalfWidth = 3
	}
	if s.Barrier.Spacing == 0 {
		s.Barrier.Spacing = 1.5
	}
	if s.Barrier.Heading == nil {
		heading := 180.0
		s.Barrier.Heading = &heading
	}
	if s.Barrier.SwayAmplitude == 0 {
		s.Barrier.SwayAmplitude = 5
	}
	if s.Barrier.SwayFrequency == 0 {
		s.Barrier.SwayFrequency = s.RotationSpeed
	}
	if s.Barrier.Projectile == "" {
		s.Barrier.Projectile = "bullet_medium.yaml"
	}

	if s.Spiral.FireRate <= 0 {
		s.Spiral.FireRate = 0.5
	}
	if s.Spiral.Spin == 0 {
		s.Spiral.Spin = 2
	}
	if s.Spiral.Projectile == "" {
		s.Spiral.Projectile = "bullet_big.yaml"
	}
}

type ProjectileSpec struct {
	Name        string          `yaml:"name"`
	Class       string          `yaml:"class"`
	Speed       float64         `yaml:"speed"`
	Radius      float64         `yaml:"radius"`
	Color       *YAMLColor      `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	TTLFrames   int             `yaml:"ttl_frames"`
}

func LoadProjectileSpec(filename string) (*ProjectileSpec, error) {
	spec, err := LoadSpec[ProjectileSpec](filename)
	if err != nil {
		return nil, err
	}
	switch spec.Class {
	case "small", "medium", "big":
	default:
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownProjectileClass, spec.Class, filename)
	}
	if spec.Speed == 0 {
		spec.Speed = 5
	}
	if spec.Radius <= 0 {
		spec.Radius = 0.15
	}
	return &spec, nil
}

type CameraSpec struct {
	Name       string        `yaml:"name"`
	Transform  TransformSpec `yaml:"transform"`
	HalfHeight float64       `yaml:"half_height"`
}

func LoadCameraSpec(filename string) (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.HalfHeight <= 0 {
		spec.HalfHeight = 8
	}
	return &spec, nil
}

type BulletCounterSpec struct {
	Name        string          `yaml:"name"`
	Label       string          `yaml:"label"`
	Transform   TransformSpec   `yaml:"transform"`
	Color       *YAMLColor      `yaml:"color"`
	Size        float64         `yaml:"size"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadBulletCounterSpec(filename string) (*BulletCounterSpec, error) {
	spec, err := LoadSpec[BulletCounterSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Label == "" {
		spec.Label = "Bullets"
	}
	if spec.Size <= 0 {
		spec.Size = 1
	}
	return &spec, nil
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ShapeSpec struct {
	Kind   string     `yaml:"kind"`
	Radius float64    `yaml:"radius"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the color, or fallback when unset.
func (c *YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
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

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "", nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
