package system

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

type handSnapshot struct {
	Side    string  `yaml:"side"`
	Tracked bool    `yaml:"tracked"`
	Squeeze bool    `yaml:"squeeze"`
	Holding string  `yaml:"holding,omitempty"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
}

type propSnapshot struct {
	Name   string  `yaml:"name"`
	Slot   int     `yaml:"slot"`
	HeldBy string  `yaml:"held_by,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

type stateSnapshot struct {
	Hands []handSnapshot `yaml:"hands"`
	Props []propSnapshot `yaml:"props"`
}

// SnapshotSystem copies a yaml dump of hand and prop state to the system
// clipboard when F2 is pressed.
type SnapshotSystem struct {
	clipboardOK bool
}

func NewSnapshotSystem() *SnapshotSystem {
	err := clipboard.Init()
	if err != nil {
		log.Printf("snapshot: clipboard unavailable: %v", err)
	}
	return &SnapshotSystem{clipboardOK: err == nil}
}

func (s *SnapshotSystem) Update(w *ecs.World) {
	if s == nil || w == nil || !s.clipboardOK {
		return
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		return
	}

	var snap stateSnapshot
	ecs.ForEach2(w, component.HandComponent, component.ControllerInputComponent, func(e ecs.Entity, hand *component.Hand, in *component.ControllerInput) {
		hs := handSnapshot{
			Side:    hand.Side.String(),
			Tracked: in.Tracked,
			Squeeze: in.Squeeze,
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			hs.X = t.X
			hs.Y = t.Y
		}
		if hand.Held != 0 {
			if grab, ok := ecs.Get(w, ecs.Entity(hand.Held), component.GrabbableComponent); ok {
				hs.Holding = grab.Name
			}
		}
		snap.Hands = append(snap.Hands, hs)
	})
	ecs.ForEach2(w, component.GrabbableComponent, component.TransformComponent, func(e ecs.Entity, grab *component.Grabbable, t *component.Transform) {
		p := propSnapshot{Name: grab.Name, Slot: grab.Slot, X: t.X, Y: t.Y}
		if grab.HeldBy != 0 {
			if hand, ok := ecs.Get(w, ecs.Entity(grab.HeldBy), component.HandComponent); ok {
				p.HeldBy = hand.Side.String()
			}
		}
		snap.Props = append(snap.Props, p)
	})

	data, err := yaml.Marshal(&snap)
	if err != nil {
		log.Printf("snapshot: marshal: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("snapshot: copied %d bytes to clipboard", len(data))
}
