package system

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/csc495-vr-f2022/interaction-and-physics/common"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

const (
	stickDeadzone  = 0.2
	handStickSpeed = 420.0
	keyHandSpeed   = 300.0
)

// InputSystem samples the keyboard, mouse, and first gamepad once per
// frame into per-hand ControllerInput and the rig's Input component.
// Only levels are written; edges are derived downstream.
//
// Right hand follows the mouse (squeeze = right mouse button). Left hand
// moves with IJKL (squeeze = left shift). A standard-mapping gamepad
// overrides with sticks and front-bottom triggers. F3 simulates tracking
// loss on the left hand.
type InputSystem struct {
	leftTrackingLost bool
	leftInitialized  bool
	leftX, leftY     float64

	rightInitialized       bool
	rightX, rightY         float64
	lastMouseX, lastMouseY int
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.leftTrackingLost = !s.leftTrackingLost
		log.Printf("input: left hand tracking lost=%v", s.leftTrackingLost)
	}

	mx, my := ebiten.CursorPosition()
	rightSqueeze := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	leftSqueeze := ebiten.IsKeyPressed(ebiten.KeyShiftLeft)

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyJ) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyL) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyI) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		dy += 1
	}
	var leftStickActive, rightStickActive bool
	var lsx, lsy, rsx, rsy float64

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]

		lsx = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		lsy = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		leftStickActive = math.Hypot(lsx, lsy) > stickDeadzone

		rsx = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		rsy = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		rightStickActive = math.Hypot(rsx, rsy) > stickDeadzone

		leftSqueeze = leftSqueeze || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		rightSqueeze = rightSqueeze || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	if leftStickActive {
		dx = lsx
		dy = lsy
	}
	s.advanceRightHand(mx, my, rightStickActive, rsx, rsy)

	ecs.ForEach2(w, component.HandComponent, component.ControllerInputComponent, func(e ecs.Entity, hand *component.Hand, in *component.ControllerInput) {
		switch hand.Side {
		case component.HandRight:
			in.Tracked = true
			in.PoseX = s.rightX
			in.PoseY = s.rightY
			in.Squeeze = rightSqueeze
			in.SqueezeValue = boolLevel(rightSqueeze)
		case component.HandLeft:
			if !s.leftInitialized {
				if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
					s.leftX = t.X
					s.leftY = t.Y
				}
				s.leftInitialized = true
			}
			speed := keyHandSpeed
			if leftStickActive {
				speed = handStickSpeed
			}
			s.leftX = common.Clamp(s.leftX+dx*speed*common.Dt, 0, common.BaseWidth)
			s.leftY = common.Clamp(s.leftY+dy*speed*common.Dt, 0, common.BaseHeight)

			in.Tracked = !s.leftTrackingLost
			in.PoseX = s.leftX
			in.PoseY = s.leftY
			in.Squeeze = leftSqueeze
			in.SqueezeValue = boolLevel(leftSqueeze)
		}
	})

	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	teleport := inpututil.IsKeyJustPressed(ebiten.KeyG) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, in *component.Input) {
		in.MoveX = moveX
		in.TeleportPressed = teleport
		in.TeleportX = float64(mx)
	})
}

// advanceRightHand folds this frame's mouse and stick samples into the
// persisted right-hand pose. Moving the mouse snaps the hand to the
// cursor; otherwise an active right stick integrates it, so a gamepad
// can drive the hand without the mouse ever moving.
func (s *InputSystem) advanceRightHand(mx, my int, stickActive bool, sx, sy float64) {
	if !s.rightInitialized || mx != s.lastMouseX || my != s.lastMouseY {
		s.rightX = float64(mx)
		s.rightY = float64(my)
		s.lastMouseX = mx
		s.lastMouseY = my
		s.rightInitialized = true
	}
	if stickActive {
		s.rightX += sx * handStickSpeed * common.Dt
		s.rightY += sy * handStickSpeed * common.Dt
	}
	s.rightX = common.Clamp(s.rightX, 0, common.BaseWidth)
	s.rightY = common.Clamp(s.rightY, 0, common.BaseHeight)
}

func boolLevel(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
