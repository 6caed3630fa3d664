package system

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/csc495-vr-f2022/interaction-and-physics/common"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
	"github.com/csc495-vr-f2022/interaction-and-physics/prefabs"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeProp
)

// PhysicsSystem owns the Chipmunk space. It creates bodies for props,
// consumes suspend/resume requests from the grab system, drives held
// bodies from their holder's transform, steps the space, and writes
// body poses back to transforms. No other system touches the space.
type PhysicsSystem struct {
	space   *cp.Space
	bodyFor map[ecs.Entity]*cp.Body
}

func NewPhysicsSystem(bounds []prefabs.BoundSpec) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	for _, b := range bounds {
		seg := cp.NewSegment(space.StaticBody, cp.Vector{X: b.X1, Y: b.Y1}, cp.Vector{X: b.X2, Y: b.Y2}, 2)
		seg.SetFriction(0.9)
		seg.SetElasticity(0.2)
		seg.SetCollisionType(collisionTypeSolid)
		space.AddShape(seg)
	}

	return &PhysicsSystem{
		space:   space,
		bodyFor: make(map[ecs.Entity]*cp.Body),
	}
}

// Space returns the underlying Chipmunk space.
func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}

	ps.ensureBodies(w)
	ps.processRequests(w)
	ps.driveHeldBodies(w)

	ps.space.Step(common.Dt)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureBodies(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body != nil {
			return
		}
		if pb.Mass <= 0 {
			pb.Mass = 1
		}
		mass := pb.Mass
		body := cp.NewBody(mass, cp.MomentForBox(mass, pb.Width, pb.Height))
		body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		body.SetAngle(t.Rotation)

		shape := cp.NewBox(body, pb.Width, pb.Height, 0)
		shape.SetFriction(pb.Friction)
		shape.SetElasticity(pb.Elasticity)
		shape.SetCollisionType(collisionTypeProp)

		ps.space.AddBody(body)
		ps.space.AddShape(shape)

		pb.Body = body
		pb.Shape = shape
		ps.bodyFor[e] = body
	})
}

// processRequests handles the grab system's markers. Suspending switches
// the body to kinematic so the simulation stops applying forces and
// collisions to it; resuming restores dynamics from the current pose.
func (ps *PhysicsSystem) processRequests(w *ecs.World) {
	for _, e := range w.Query(component.SuspendPhysicsRequestComponent.ID()) {
		ecs.Remove(w, e, component.SuspendPhysicsRequestComponent)
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || pb.Body == nil {
			log.Printf("physics: suspend request for %s with no body", e)
			continue
		}
		pb.Body.SetType(cp.BODY_KINEMATIC)
		pb.Body.SetVelocity(0, 0)
		pb.Body.SetAngularVelocity(0)
	}

	for _, e := range w.Query(component.ResumePhysicsRequestComponent.ID()) {
		ecs.Remove(w, e, component.ResumePhysicsRequestComponent)
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || pb.Body == nil {
			log.Printf("physics: resume request for %s with no body", e)
			continue
		}
		pb.Body.SetType(cp.BODY_DYNAMIC)
		// the type switch recomputes mass from shapes, and the box shape
		// carries none; put the prop's mass and moment back before stepping
		pb.Body.SetMass(pb.Mass)
		pb.Body.SetMoment(cp.MomentForBox(pb.Mass, pb.Width, pb.Height))
		pb.Body.Activate()
	}
}

// driveHeldBodies pins every held body to its holder's transform plus the
// grip offset captured at claim time.
func (ps *PhysicsSystem) driveHeldBodies(w *ecs.World) {
	ecs.ForEach2(w, component.GrabbableComponent, component.PhysicsBodyComponent, func(e ecs.Entity, grab *component.Grabbable, pb *component.PhysicsBody) {
		if grab.HeldBy == 0 || pb.Body == nil {
			return
		}
		holder := ecs.Entity(grab.HeldBy)
		ht, ok := ecs.Get(w, holder, component.TransformComponent)
		if !ok {
			return
		}
		pb.Body.SetPosition(cp.Vector{X: ht.X + grab.GripOffsetX, Y: ht.Y + grab.GripOffsetY})
		pb.Body.SetVelocity(0, 0)
		pb.Body.SetAngularVelocity(0)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = pb.Body.Angle()
	})
}
