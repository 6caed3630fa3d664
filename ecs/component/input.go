package component

// Input stores per-frame locomotion input for the player rig.
type Input struct {
	MoveX float64

	TeleportPressed bool
	TeleportX       float64
}

var InputComponent = NewComponent[Input]()
