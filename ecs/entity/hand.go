package entity

import (
	"fmt"
	"image/color"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
	"github.com/csc495-vr-f2022/interaction-and-physics/prefabs"
)

// NewHand builds one controller hand from its spec.
func NewHand(w *ecs.World, spec prefabs.HandSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("entity: nil world")
	}

	side := component.HandRight
	switch spec.Side {
	case "left":
		side = component.HandLeft
	case "right", "":
		side = component.HandRight
	default:
		return 0, fmt.Errorf("entity: unknown hand side %q", spec.Side)
	}

	cw := spec.Collider.Width
	ch := spec.Collider.Height
	if cw <= 0 {
		cw = 28
	}
	if ch <= 0 {
		ch = 28
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.HandComponent, component.Hand{
		Side:           side,
		ColliderWidth:  cw,
		ColliderHeight: ch,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ControllerInputComponent, component.ControllerInput{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Width:  cw,
		Height: ch,
		Color:  prefabs.ParseColor(spec.Color, color.RGBA{R: 0xf5, G: 0x8b, B: 0x4c, A: 0xff}),
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: 10}); err != nil {
		return 0, err
	}
	return e, nil
}
