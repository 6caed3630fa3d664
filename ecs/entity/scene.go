package entity

import (
	"fmt"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/prefabs"
)

// BuildScene populates the world from a scene spec: the rig, both hands,
// and every prop. Grabbable props are assigned registry slots in spec
// order; the registry is fixed for the rest of the session.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec) error {
	if w == nil || spec == nil {
		return fmt.Errorf("entity: nil world or spec")
	}

	if _, err := NewPlayerRig(w, spec.Rig); err != nil {
		return fmt.Errorf("entity: build rig: %w", err)
	}

	for _, hs := range spec.Hands {
		if _, err := NewHand(w, hs); err != nil {
			return fmt.Errorf("entity: build %s hand: %w", hs.Side, err)
		}
	}

	slot := 0
	for _, ps := range spec.Props {
		s := -1
		if ps.Grabbable {
			s = slot
			slot++
		}
		if _, err := NewProp(w, ps, s); err != nil {
			return fmt.Errorf("entity: build prop %q: %w", ps.Name, err)
		}
	}
	return nil
}
