package component

type HandSide int

const (
	HandLeft HandSide = iota
	HandRight
)

func (s HandSide) String() string {
	if s == HandLeft {
		return "left"
	}
	return "right"
}

// Hand is one simulated controller. Held is the entity handle of the
// grabbed object (0 while idle). PrevSqueeze is last frame's squeeze
// sample; squeeze edges are derived from it locally instead of trusting
// an engine-side "changed" flag.
type Hand struct {
	Side        HandSide
	Held        uint64
	PrevSqueeze bool

	// palm collider extents, centered on the hand transform
	ColliderWidth  float64
	ColliderHeight float64
}

var HandComponent = NewComponent[Hand]()
