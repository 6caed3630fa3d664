package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

// RenderSystem draws the scene as flat-colored boxes, layer-sorted.
type RenderSystem struct {
	white *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &RenderSystem{white: white}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.TransformComponent.ID(), component.SpriteComponent.ID())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent); ok {
			li = layer.Index
		}
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return entities[i] < entities[j]
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Width <= 0 || s.Height <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.Width/3, s.Height/3)
		op.GeoM.Translate(-s.Width/2, -s.Height/2)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleWithColor(s.Color)
		screen.DrawImage(r.white, op)

		// held props get an outline in the holder hand's color
		if grab, ok := ecs.Get(w, e, component.GrabbableComponent); ok && grab.HeldBy != 0 {
			holderColor := colornames.White
			if hs, ok := ecs.Get(w, ecs.Entity(grab.HeldBy), component.SpriteComponent); ok {
				holderColor = hs.Color
			}
			vector.StrokeRect(screen,
				float32(t.X-s.Width/2-3), float32(t.Y-s.Height/2-3),
				float32(s.Width+6), float32(s.Height+6),
				2, holderColor, true)
		}
	}

	// untracked hands are ghosted at their last pose
	ecs.ForEach2(w, component.HandComponent, component.ControllerInputComponent, func(e ecs.Entity, hand *component.Hand, in *component.ControllerInput) {
		if in.Tracked {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(hand.ColliderWidth), 1, colornames.Gray, true)
	})
}
