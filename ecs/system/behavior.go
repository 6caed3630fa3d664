package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/csc495-vr-f2022/interaction-and-physics/common"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
	"github.com/csc495-vr-f2022/interaction-and-physics/prefabs"
)

// BehaviorSystem runs each decorative prop's tengo script once per frame.
// Scripts read __base_x/__base_y/__t and assign x, y, and rotation.
type BehaviorSystem struct {
	compiled map[string]*tengo.Compiled
	elapsed  float64
}

func NewBehaviorSystem() *BehaviorSystem {
	return &BehaviorSystem{compiled: make(map[string]*tengo.Compiled)}
}

// Invalidate drops compiled script caches after a prefab reload.
func (s *BehaviorSystem) Invalidate() {
	if s == nil {
		return
	}
	s.compiled = make(map[string]*tengo.Compiled)
}

func (s *BehaviorSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.elapsed += common.Dt

	ecs.ForEach2(w, component.BehaviorComponent, component.TransformComponent, func(e ecs.Entity, b *component.Behavior, t *component.Transform) {
		if b.Script == "" {
			return
		}
		rt, err := s.runtime(b.Script)
		if err != nil {
			log.Printf("behavior: %s: %v", b.Script, err)
			return
		}

		if err := rt.Set("__base_x", b.BaseX); err == nil {
			err = rt.Set("__base_y", b.BaseY)
		}
		if err == nil {
			err = rt.Set("__t", s.elapsed)
		}
		if err == nil {
			err = rt.Run()
		}
		if err != nil {
			log.Printf("behavior: run %s: %v", b.Script, err)
			return
		}

		t.X = rt.Get("x").Float()
		t.Y = rt.Get("y").Float()
		t.Rotation = rt.Get("rotation").Float()
	})
}

func (s *BehaviorSystem) runtime(name string) (*tengo.Compiled, error) {
	if rt, ok := s.compiled[name]; ok && rt != nil {
		return rt, nil
	}

	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("__base_x", 0.0)
	_ = script.Add("__base_y", 0.0)
	_ = script.Add("__t", 0.0)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("rotation", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	s.compiled[name] = compiled
	return compiled, nil
}
