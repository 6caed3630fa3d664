package component

// SuspendPhysicsRequest asks the physics system to stop simulating an
// entity's body (grabbed props become kinematic). The physics system owns
// the cp.Space, so other systems mark entities instead of touching it.
type SuspendPhysicsRequest struct{}

var SuspendPhysicsRequestComponent = NewComponent[SuspendPhysicsRequest]()
