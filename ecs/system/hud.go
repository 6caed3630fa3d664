package system

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

const hudLogLines = 6

// HUDSystem overlays per-hand grab state and a rolling controller event
// log, built with ebitenui.
type HUDSystem struct {
	ui *ebitenui.UI

	leftLabel  *widget.Label
	rightLabel *widget.Label
	logLabels  []*widget.Label
	logLines   []string
}

func NewHUDSystem() (*HUDSystem, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	var fontFace text.Face = &text.GoTextFace{Source: src, Size: 13}

	labelColor := &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
	newLabel := func(txt string) *widget.Label {
		return widget.NewLabel(widget.LabelOpts.Text(txt, &fontFace, labelColor))
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(280, 0),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(2),
			),
		),
		widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(color.RGBA{20, 20, 28, 200})),
	)

	h := &HUDSystem{
		leftLabel:  newLabel("left: idle"),
		rightLabel: newLabel("right: idle"),
	}
	panel.AddChild(h.leftLabel)
	panel.AddChild(h.rightLabel)
	panel.AddChild(newLabel("--"))
	for i := 0; i < hudLogLines; i++ {
		l := newLabel("")
		h.logLabels = append(h.logLabels, l)
		panel.AddChild(l)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h, nil
}

func (h *HUDSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.HandComponent, component.ControllerInputComponent, func(e ecs.Entity, hand *component.Hand, in *component.ControllerInput) {
		label := h.rightLabel
		if hand.Side == component.HandLeft {
			label = h.leftLabel
		}
		label.Label = h.handStatus(w, hand, in)
	})

	for _, evt := range w.Events().Drain() {
		ge, ok := evt.Data.(GrabEvent)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s %s", ge.Hand, evt.Type)
		if ge.Object != "" {
			line = fmt.Sprintf("%s %s %q", ge.Hand, evt.Type, ge.Object)
		}
		h.logLines = append(h.logLines, line)
		if len(h.logLines) > hudLogLines {
			h.logLines = h.logLines[len(h.logLines)-hudLogLines:]
		}
	}
	for i, l := range h.logLabels {
		l.Label = ""
		if i < len(h.logLines) {
			l.Label = h.logLines[i]
		}
	}

	h.ui.Update()
}

func (h *HUDSystem) handStatus(w *ecs.World, hand *component.Hand, in *component.ControllerInput) string {
	if !in.Tracked {
		return fmt.Sprintf("%s: untracked", hand.Side)
	}
	if hand.Held == 0 {
		return fmt.Sprintf("%s: idle", hand.Side)
	}
	name := "?"
	if grab, ok := ecs.Get(w, ecs.Entity(hand.Held), component.GrabbableComponent); ok {
		name = grab.Name
	}
	return fmt.Sprintf("%s: holding %q", hand.Side, name)
}

func (h *HUDSystem) Draw(screen *ebiten.Image) {
	if h == nil || h.ui == nil {
		return
	}
	h.ui.Draw(screen)
}
