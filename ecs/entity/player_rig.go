package entity

import (
	"fmt"
	"image/color"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
	"github.com/csc495-vr-f2022/interaction-and-physics/prefabs"
)

// NewPlayerRig builds the walk/teleport rig from its spec.
func NewPlayerRig(w *ecs.World, spec prefabs.RigSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("entity: nil world")
	}

	moveSpeed := spec.MoveSpeed
	if moveSpeed <= 0 {
		moveSpeed = 240
	}
	teleportRange := spec.TeleportRange
	if teleportRange <= 0 {
		teleportRange = 480
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlayerRigComponent, component.PlayerRig{
		MoveSpeed:     moveSpeed,
		TeleportRange: teleportRange,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{
		X: spec.Transform.X,
		Y: spec.Transform.Y,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Width:  32,
		Height: 64,
		Color:  prefabs.ParseColor(spec.Color, color.RGBA{R: 0x3b, G: 0x3f, B: 0x46, A: 0xff}),
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: 1}); err != nil {
		return 0, err
	}
	return e, nil
}
