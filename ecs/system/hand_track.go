package system

import (
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

// HandTrackSystem drives each hand's transform from its polled pose.
// Untracked hands keep their last known transform.
type HandTrackSystem struct{}

func NewHandTrackSystem() *HandTrackSystem {
	return &HandTrackSystem{}
}

func (s *HandTrackSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.HandComponent, component.ControllerInputComponent, func(e ecs.Entity, _ *component.Hand, in *component.ControllerInput) {
		if !in.Tracked {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		t.X = in.PoseX
		t.Y = in.PoseY
	})
}
