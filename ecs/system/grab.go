package system

import (
	"log"
	"sort"

	"github.com/csc495-vr-f2022/interaction-and-physics/common"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

// Grab event types pushed to the world event queue for the HUD log.
const (
	EventSqueezePress   = "squeeze_press"
	EventSqueezeRelease = "squeeze_release"
	EventGrab           = "grab"
	EventRelease        = "release"
)

// GrabEvent is the payload for all grab event types.
type GrabEvent struct {
	Hand   component.HandSide
	Object string
}

// GrabSystem runs the per-hand grab state machine: squeeze edges are
// derived from the previous frame's sample stored on the Hand component,
// a rising edge claims the first overlapping unheld prop in registry slot
// order, a falling edge releases it. Physics side effects go through
// suspend/resume request components consumed by the physics system.
type GrabSystem struct{}

func NewGrabSystem() *GrabSystem {
	return &GrabSystem{}
}

func (g *GrabSystem) Update(w *ecs.World) {
	if g == nil || w == nil {
		return
	}

	hands := w.Query(
		component.HandComponent.ID(),
		component.ControllerInputComponent.ID(),
		component.TransformComponent.ID(),
	)
	// fixed evaluation order: left before right, every frame
	sort.SliceStable(hands, func(i, j int) bool {
		hi, _ := ecs.Get(w, hands[i], component.HandComponent)
		hj, _ := ecs.Get(w, hands[j], component.HandComponent)
		if hi == nil || hj == nil {
			return hands[i] < hands[j]
		}
		if hi.Side != hj.Side {
			return hi.Side < hj.Side
		}
		return hands[i] < hands[j]
	})

	for _, e := range hands {
		hand, ok := ecs.Get(w, e, component.HandComponent)
		if !ok {
			continue
		}
		in, ok := ecs.Get(w, e, component.ControllerInputComponent)
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		g.updateHand(w, e, hand, in, t)
	}
}

func (g *GrabSystem) updateHand(w *ecs.World, e ecs.Entity, hand *component.Hand, in *component.ControllerInput, t *component.Transform) {
	pressed := in.Squeeze
	rising := pressed && !hand.PrevSqueeze
	falling := !pressed && hand.PrevSqueeze
	// the edge is consumed whether or not it fires; a press during
	// tracking loss is never replayed when tracking resumes
	hand.PrevSqueeze = pressed

	if rising {
		w.Events().Push(ecs.Event{Type: EventSqueezePress, Data: GrabEvent{Hand: hand.Side}})
		if !in.Tracked {
			return
		}
		if hand.Held != 0 {
			return
		}
		g.tryGrab(w, e, hand, t)
		return
	}

	if falling {
		w.Events().Push(ecs.Event{Type: EventSqueezeRelease, Data: GrabEvent{Hand: hand.Side}})
		if hand.Held == 0 {
			return
		}
		g.release(w, hand)
	}
}

func (g *GrabSystem) tryGrab(w *ecs.World, e ecs.Entity, hand *component.Hand, t *component.Transform) {
	target, grab := g.firstOverlap(w, hand, t)
	if grab == nil {
		return
	}

	gt, ok := ecs.Get(w, target, component.TransformComponent)
	if !ok {
		return
	}

	grab.HeldBy = uint64(e)
	grab.GripOffsetX = gt.X - t.X
	grab.GripOffsetY = gt.Y - t.Y
	hand.Held = uint64(target)

	if err := ecs.Add(w, target, component.SuspendPhysicsRequestComponent, component.SuspendPhysicsRequest{}); err != nil {
		log.Printf("grab: suspend request for %s: %v", target, err)
	}
	w.Events().Push(ecs.Event{Type: EventGrab, Data: GrabEvent{Hand: hand.Side, Object: grab.Name}})
	log.Printf("grab: %s hand grabbed %q", hand.Side, grab.Name)
}

func (g *GrabSystem) release(w *ecs.World, hand *component.Hand) {
	held := ecs.Entity(hand.Held)
	hand.Held = 0

	grab, ok := ecs.Get(w, held, component.GrabbableComponent)
	if !ok {
		return
	}
	grab.HeldBy = 0
	grab.GripOffsetX = 0
	grab.GripOffsetY = 0

	if err := ecs.Add(w, held, component.ResumePhysicsRequestComponent, component.ResumePhysicsRequest{}); err != nil {
		log.Printf("grab: resume request for %s: %v", held, err)
	}
	w.Events().Push(ecs.Event{Type: EventRelease, Data: GrabEvent{Hand: hand.Side, Object: grab.Name}})
	log.Printf("grab: %s hand released %q", hand.Side, grab.Name)
}

// firstOverlap scans grabbables in ascending registry slot order and
// returns the first unheld one whose box overlaps the hand collider.
// First match wins, not closest; an object already owned by the other
// hand is skipped, so the earlier-processed hand wins a same-frame race.
func (g *GrabSystem) firstOverlap(w *ecs.World, hand *component.Hand, t *component.Transform) (ecs.Entity, *component.Grabbable) {
	type candidate struct {
		e    ecs.Entity
		grab *component.Grabbable
	}
	var candidates []candidate
	ecs.ForEach(w, component.GrabbableComponent, func(e ecs.Entity, grab *component.Grabbable) {
		candidates = append(candidates, candidate{e: e, grab: grab})
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].grab.Slot < candidates[j].grab.Slot
	})

	for _, c := range candidates {
		if c.grab.HeldBy != 0 {
			continue
		}
		gt, ok := ecs.Get(w, c.e, component.TransformComponent)
		if !ok {
			continue
		}
		if common.AABBIntersects(
			t.X, t.Y, hand.ColliderWidth, hand.ColliderHeight,
			gt.X, gt.Y, c.grab.Width, c.grab.Height,
		) {
			return c.e, c.grab
		}
	}
	return 0, nil
}
