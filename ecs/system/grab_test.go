package system

import (
	"testing"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

func addTestHand(t *testing.T, w *ecs.World, side component.HandSide, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.HandComponent, component.Hand{
		Side:           side,
		ColliderWidth:  20,
		ColliderHeight: 20,
	}); err != nil {
		t.Fatalf("add hand: %v", err)
	}
	if err := ecs.Add(w, e, component.ControllerInputComponent, component.ControllerInput{
		Tracked: true,
		PoseX:   x,
		PoseY:   y,
	}); err != nil {
		t.Fatalf("add controller input: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	return e
}

func addTestProp(t *testing.T, w *ecs.World, name string, slot int, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.GrabbableComponent, component.Grabbable{
		Name:   name,
		Slot:   slot,
		Width:  40,
		Height: 40,
	}); err != nil {
		t.Fatalf("add grabbable: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	return e
}

func setSqueeze(t *testing.T, w *ecs.World, hand ecs.Entity, pressed bool) {
	t.Helper()
	in, ok := ecs.Get(w, hand, component.ControllerInputComponent)
	if !ok {
		t.Fatalf("hand %s has no controller input", hand)
	}
	in.Squeeze = pressed
}

func heldObject(t *testing.T, w *ecs.World, hand ecs.Entity) ecs.Entity {
	t.Helper()
	h, ok := ecs.Get(w, hand, component.HandComponent)
	if !ok {
		t.Fatalf("hand %s has no hand component", hand)
	}
	return ecs.Entity(h.Held)
}

func TestGrabReleaseCycle(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrabSystem()
	hand := addTestHand(t, w, component.HandRight, 100, 100)
	prop := addTestProp(t, w, "crate", 0, 110, 100)

	// press edge with overlap
	setSqueeze(t, w, hand, true)
	g.Update(w)

	if got := heldObject(t, w, hand); got != prop {
		t.Fatalf("expected Holding(crate), held=%s", got)
	}
	grab, _ := ecs.Get(w, prop, component.GrabbableComponent)
	if grab.HeldBy != uint64(hand) {
		t.Fatalf("owner field not set, got %d", grab.HeldBy)
	}
	if grab.GripOffsetX != 10 || grab.GripOffsetY != 0 {
		t.Fatalf("grip offset not captured at claim time: %v,%v", grab.GripOffsetX, grab.GripOffsetY)
	}
	if !ecs.Has(w, prop, component.SuspendPhysicsRequestComponent) {
		t.Fatalf("expected suspend request after grab")
	}
	ecs.Remove(w, prop, component.SuspendPhysicsRequestComponent)

	// held level: no re-evaluation while the button stays down
	g.Update(w)
	g.Update(w)
	if ecs.Has(w, prop, component.SuspendPhysicsRequestComponent) {
		t.Fatalf("held press level must not re-trigger attach")
	}
	if got := heldObject(t, w, hand); got != prop {
		t.Fatalf("held object changed while button held: %s", got)
	}

	// release edge
	setSqueeze(t, w, hand, false)
	g.Update(w)

	if got := heldObject(t, w, hand); got != 0 {
		t.Fatalf("expected Idle after release, held=%s", got)
	}
	grab, _ = ecs.Get(w, prop, component.GrabbableComponent)
	if grab.HeldBy != 0 {
		t.Fatalf("owner field not cleared on release")
	}
	if !ecs.Has(w, prop, component.ResumePhysicsRequestComponent) {
		t.Fatalf("expected resume request after release")
	}
	ecs.Remove(w, prop, component.ResumePhysicsRequestComponent)

	// idempotence: held release level and repeat releases are no-ops
	g.Update(w)
	setSqueeze(t, w, hand, false)
	g.Update(w)
	if ecs.Has(w, prop, component.ResumePhysicsRequestComponent) {
		t.Fatalf("physics must be resumed exactly once per release")
	}
}

func TestReleaseWhileIdleIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrabSystem()
	hand := addTestHand(t, w, component.HandRight, 100, 100)
	prop := addTestProp(t, w, "crate", 0, 500, 500)

	// a press-release cycle with no overlap anywhere near the prop
	setSqueeze(t, w, hand, true)
	g.Update(w)
	setSqueeze(t, w, hand, false)
	g.Update(w)

	if got := heldObject(t, w, hand); got != 0 {
		t.Fatalf("expected Idle, held=%s", got)
	}
	if ecs.Has(w, prop, component.SuspendPhysicsRequestComponent) || ecs.Has(w, prop, component.ResumePhysicsRequestComponent) {
		t.Fatalf("no-overlap cycle must produce no side effects")
	}
}

func TestSelectionOrderByRegistrySlot(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrabSystem()
	hand := addTestHand(t, w, component.HandRight, 100, 100)
	// inserted in reverse order; scan must follow slots, not insertion
	propB := addTestProp(t, w, "b", 1, 100, 100)
	propA := addTestProp(t, w, "a", 0, 100, 100)

	setSqueeze(t, w, hand, true)
	g.Update(w)

	if got := heldObject(t, w, hand); got != propA {
		t.Fatalf("expected registry-first prop a, got %s", got)
	}
	grabB, _ := ecs.Get(w, propB, component.GrabbableComponent)
	if grabB.HeldBy != 0 {
		t.Fatalf("prop b should be untouched")
	}
}

func TestTwoHandsOneObjectLeftWins(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrabSystem()
	// right hand created first so processing order cannot be insertion order
	right := addTestHand(t, w, component.HandRight, 100, 100)
	left := addTestHand(t, w, component.HandLeft, 105, 100)
	prop := addTestProp(t, w, "crate", 0, 100, 100)

	setSqueeze(t, w, right, true)
	setSqueeze(t, w, left, true)
	g.Update(w)

	if got := heldObject(t, w, left); got != prop {
		t.Fatalf("left hand (processed first) should win, held=%s", got)
	}
	if got := heldObject(t, w, right); got != 0 {
		t.Fatalf("right hand must stay idle when object already claimed, held=%s", got)
	}
	grab, _ := ecs.Get(w, prop, component.GrabbableComponent)
	if grab.HeldBy != uint64(left) {
		t.Fatalf("owner should be the left hand")
	}
}

func TestSecondHandGrabsNextFreeProp(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrabSystem()
	left := addTestHand(t, w, component.HandLeft, 100, 100)
	right := addTestHand(t, w, component.HandRight, 102, 100)
	propA := addTestProp(t, w, "a", 0, 100, 100)
	propB := addTestProp(t, w, "b", 1, 104, 100)

	setSqueeze(t, w, left, true)
	setSqueeze(t, w, right, true)
	g.Update(w)

	if got := heldObject(t, w, left); got != propA {
		t.Fatalf("left should claim a, held=%s", got)
	}
	if got := heldObject(t, w, right); got != propB {
		t.Fatalf("right should fall through to b, held=%s", got)
	}
}

func TestUntrackedPressIsConsumed(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrabSystem()
	hand := addTestHand(t, w, component.HandLeft, 100, 100)
	prop := addTestProp(t, w, "crate", 0, 100, 100)

	in, _ := ecs.Get(w, hand, component.ControllerInputComponent)
	in.Tracked = false
	in.Squeeze = true
	g.Update(w)

	if got := heldObject(t, w, hand); got != 0 {
		t.Fatalf("untracked press must not grab, held=%s", got)
	}
	if ecs.Has(w, prop, component.SuspendPhysicsRequestComponent) {
		t.Fatalf("untracked press must have no side effects")
	}

	// tracking resumes with the button still down: the stale edge must
	// not replay
	in.Tracked = true
	g.Update(w)
	if got := heldObject(t, w, hand); got != 0 {
		t.Fatalf("consumed edge replayed after tracking resumed, held=%s", got)
	}

	// a fresh press after a release works again
	in.Squeeze = false
	g.Update(w)
	in.Squeeze = true
	g.Update(w)
	if got := heldObject(t, w, hand); got != prop {
		t.Fatalf("fresh press after tracking resume should grab, held=%s", got)
	}
}

func TestGrabEventsPushed(t *testing.T) {
	w := ecs.NewWorld()
	g := NewGrabSystem()
	hand := addTestHand(t, w, component.HandRight, 100, 100)
	addTestProp(t, w, "crate", 0, 100, 100)

	setSqueeze(t, w, hand, true)
	g.Update(w)
	setSqueeze(t, w, hand, false)
	g.Update(w)

	var types []string
	for _, evt := range w.Events().Drain() {
		types = append(types, evt.Type)
	}
	want := []string{EventSqueezePress, EventGrab, EventSqueezeRelease, EventRelease}
	if len(types) != len(want) {
		t.Fatalf("expected events %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, types)
		}
	}
}
