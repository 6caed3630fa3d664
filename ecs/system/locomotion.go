package system

import (
	"log"
	"math"

	"github.com/csc495-vr-f2022/interaction-and-physics/common"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

// LocomotionSystem walks and teleports the player rig along the floor.
type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.PlayerRigComponent, component.InputComponent, func(e ecs.Entity, rig *component.PlayerRig, in *component.Input) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}

		t.X = common.Clamp(t.X+in.MoveX*rig.MoveSpeed*common.Dt, 0, common.BaseWidth)

		if !in.TeleportPressed {
			return
		}
		dx := in.TeleportX - t.X
		if math.Abs(dx) > rig.TeleportRange {
			dx = math.Copysign(rig.TeleportRange, dx)
		}
		t.X = common.Clamp(t.X+dx, 0, common.BaseWidth)
		log.Printf("locomotion: teleported rig to x=%.0f", t.X)
	})
}
