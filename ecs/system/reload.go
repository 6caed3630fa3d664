package system

import (
	"log"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
	"github.com/csc495-vr-f2022/interaction-and-physics/prefabs"
)

// ReloadSystem re-reads the scene spec when prefab files change on disk
// and re-applies tunable fields to existing entities. The grab registry
// is fixed after load, so reloads never add or remove props; matching is
// by prop name.
type ReloadSystem struct {
	watcher  *prefabs.Watcher
	behavior *BehaviorSystem
}

func NewReloadSystem(behavior *BehaviorSystem) *ReloadSystem {
	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		log.Printf("reload: watcher disabled: %v", err)
		watcher = nil
	}
	return &ReloadSystem{watcher: watcher, behavior: behavior}
}

func (s *ReloadSystem) Close() error {
	if s == nil || s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

func (s *ReloadSystem) Update(w *ecs.World) {
	if s == nil || s.watcher == nil || w == nil {
		return
	}

	changed := false
	for {
		select {
		case name, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			log.Printf("reload: %s changed", name)
			changed = true
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			if err != nil {
				log.Printf("reload: watch error: %v", err)
			}
		default:
			if !changed {
				return
			}
			s.apply(w)
			return
		}
	}
}

func (s *ReloadSystem) apply(w *ecs.World) {
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if s.behavior != nil {
		s.behavior.Invalidate()
	}

	byName := make(map[string]prefabs.PropSpec, len(spec.Props))
	for _, ps := range spec.Props {
		byName[ps.Name] = ps
	}

	ecs.ForEach(w, component.GrabbableComponent, func(e ecs.Entity, grab *component.Grabbable) {
		ps, ok := byName[grab.Name]
		if !ok {
			return
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent); ok {
			sprite.Color = prefabs.ParseColor(ps.Color, sprite.Color)
		}
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
			pb.Friction = ps.Friction
			pb.Elasticity = ps.Elasticity
			if pb.Shape != nil {
				pb.Shape.SetFriction(ps.Friction)
				pb.Shape.SetElasticity(ps.Elasticity)
			}
		}
	})
}
