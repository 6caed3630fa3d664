package entity

import (
	"fmt"
	"image/color"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
	"github.com/csc495-vr-f2022/interaction-and-physics/prefabs"
)

// NewProp builds a scene prop from its spec. slot is the prop's fixed
// position in the grab registry scan order; it is ignored for
// non-grabbable props.
func NewProp(w *ecs.World, spec prefabs.PropSpec, slot int) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("entity: nil world")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("entity: prop %q has no extent", spec.Name)
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{
		X:        spec.Transform.X,
		Y:        spec.Transform.Y,
		Rotation: spec.Transform.Rotation,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Width:  spec.Width,
		Height: spec.Height,
		Color:  prefabs.ParseColor(spec.Color, color.RGBA{R: 0xc9, G: 0x8a, B: 0x3d, A: 0xff}),
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: spec.Layer}); err != nil {
		return 0, err
	}

	if spec.Grabbable {
		mass := spec.Mass
		if mass <= 0 {
			mass = 1
		}
		if err := ecs.Add(w, e, component.GrabbableComponent, component.Grabbable{
			Name:   spec.Name,
			Slot:   slot,
			Width:  spec.Width,
			Height: spec.Height,
		}); err != nil {
			return 0, err
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
			Width:      spec.Width,
			Height:     spec.Height,
			Mass:       mass,
			Friction:   spec.Friction,
			Elasticity: spec.Elasticity,
		}); err != nil {
			return 0, err
		}
	}

	if spec.Behavior != nil && spec.Behavior.Script != "" {
		if spec.Grabbable {
			return 0, fmt.Errorf("entity: prop %q cannot be both grabbable and scripted", spec.Name)
		}
		if err := ecs.Add(w, e, component.BehaviorComponent, component.Behavior{
			Script: spec.Behavior.Script,
			BaseX:  spec.Transform.X,
			BaseY:  spec.Transform.Y,
		}); err != nil {
			return 0, err
		}
	}

	return e, nil
}
