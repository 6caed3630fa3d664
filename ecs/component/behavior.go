package component

// Behavior attaches a tengo script that animates a decorative prop each
// frame. The script sees the prop's base pose and elapsed time and writes
// back x/y/rotation.
type Behavior struct {
	Script string
	BaseX  float64
	BaseY  float64
}

var BehaviorComponent = NewComponent[Behavior]()
