package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/csc495-vr-f2022/interaction-and-physics/common"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/entity"
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/system"
	"github.com/csc495-vr-f2022/interaction-and-physics/prefabs"
)

type Game struct {
	frames int
	debug  bool

	world  *ecs.World
	render *system.RenderSystem
	hud    *system.HUDSystem
	reload *system.ReloadSystem
}

func NewGame(debug bool) (*Game, error) {
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}

	world := ecs.NewWorld()
	if err := entity.BuildScene(world, spec); err != nil {
		return nil, err
	}

	hud, err := system.NewHUDSystem()
	if err != nil {
		return nil, err
	}
	behavior := system.NewBehaviorSystem()
	reload := system.NewReloadSystem(behavior)

	// per-frame order: poll input, retune from disk, drive hands and rig,
	// run the grab protocol, animate decor, then step physics last
	world.AddSystem(system.NewInputSystem())
	world.AddSystem(reload)
	world.AddSystem(system.NewHandTrackSystem())
	world.AddSystem(system.NewLocomotionSystem())
	world.AddSystem(system.NewGrabSystem())
	world.AddSystem(behavior)
	world.AddSystem(system.NewPhysicsSystem(spec.Bounds))
	world.AddSystem(system.NewSnapshotSystem())
	world.AddSystem(hud)

	return &Game{
		debug:  debug,
		world:  world,
		render: system.NewRenderSystem(),
		hud:    hud,
		reload: reload,
	}, nil
}

func (g *Game) Update() error {
	g.frames++
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	g.render.Draw(g.world, screen)
	g.hud.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 0, int(common.BaseHeight)-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
