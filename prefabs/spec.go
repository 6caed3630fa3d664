package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type HandSpec struct {
	Side     string       `yaml:"side"`
	Collider ColliderSpec `yaml:"collider"`
	Color    string       `yaml:"color"`
}

type RigSpec struct {
	Transform     TransformSpec `yaml:"transform"`
	MoveSpeed     float64       `yaml:"move_speed"`
	TeleportRange float64       `yaml:"teleport_range"`
	Color         string        `yaml:"color"`
}

type BoundSpec struct {
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
}

type BehaviorSpec struct {
	Script string `yaml:"script"`
}

type PropSpec struct {
	Name       string        `yaml:"name"`
	Transform  TransformSpec `yaml:"transform"`
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Mass       float64       `yaml:"mass"`
	Friction   float64       `yaml:"friction"`
	Elasticity float64       `yaml:"elasticity"`
	Color      string        `yaml:"color"`
	Grabbable  bool          `yaml:"grabbable"`
	Layer      int           `yaml:"layer"`
	Behavior   *BehaviorSpec `yaml:"behavior"`
}

// SceneSpec is the load-time manifest for the whole playground. Props are
// listed in registry order; the grab scan preserves it.
type SceneSpec struct {
	Name   string      `yaml:"name"`
	Rig    RigSpec     `yaml:"rig"`
	Hands  []HandSpec  `yaml:"hands"`
	Bounds []BoundSpec `yaml:"bounds"`
	Props  []PropSpec  `yaml:"props"`
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

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseColor reads a #rrggbb or #rrggbbaa hex string.
func ParseColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fallback
	}
	c := color.RGBA{A: 0xff}
	if len(s) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c
}
