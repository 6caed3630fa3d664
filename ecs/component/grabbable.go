package component

// Grabbable marks a prop as eligible for hand grabs. Slot is its fixed
// position in the load-time registry scan order. HeldBy is the entity
// handle of the holding hand, 0 when unheld; it is the authoritative
// ownership record, independent of any render or physics hierarchy.
type Grabbable struct {
	Name   string
	Slot   int
	HeldBy uint64

	// world-space offset from the holder captured at claim time, so the
	// prop keeps its pose relative to the hand for the whole hold
	GripOffsetX float64
	GripOffsetY float64

	Width  float64
	Height float64
}

var GrabbableComponent = NewComponent[Grabbable]()
