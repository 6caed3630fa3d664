package component

// ResumePhysicsRequest asks the physics system to re-enable dynamics for
// an entity's body from its current pose. Consumed once per release.
type ResumePhysicsRequest struct{}

var ResumePhysicsRequestComponent = NewComponent[ResumePhysicsRequest]()
