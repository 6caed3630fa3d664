package component

// PlayerRig is the camera rig / body the user walks and teleports around
// the scene.
type PlayerRig struct {
	MoveSpeed     float64
	TeleportRange float64
}

var PlayerRigComponent = NewComponent[PlayerRig]()
