package common

const (
	Gravity = 1200.0

	BaseWidth  = 1280.0
	BaseHeight = 720.0

	// fixed simulation step, one per rendered frame
	Dt = 1.0 / 60.0
)
