package component

// ControllerInput stores the polled per-frame state of one hand controller.
// Only levels are recorded here; edge detection happens in the grab system.
type ControllerInput struct {
	Tracked      bool
	Squeeze      bool
	SqueezeValue float64

	// target pose for this frame, valid only while Tracked
	PoseX float64
	PoseY float64
}

var ControllerInputComponent = NewComponent[ControllerInput]()
