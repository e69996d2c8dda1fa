package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/entworld/ecs"
	"github.com/plus3/entworld/ecs/debugui"
	debugui_ebiten "github.com/plus3/entworld/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and overlays the world inspector on top of
// whatever the game draws.
type Game struct {
	world        *ecs.World
	debugger     *debugui.Debugger
	imguiBackend debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.imguiBackend.BeginFrame()

	// Advance the game: mutate the world, then commit so staged
	// creations and removals take effect for this frame.
	g.world.Commit()

	g.debugger.Render(g.world)

	g.imguiBackend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("World Inspector Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	// Populate a world with something to look at.
	world := ecs.NewWorld()
	type Position struct{ X, Y float32 }

	parent := world.CreateEntity()
	ecs.Add(world, parent, Position{X: 10, Y: 12})

	child := world.CreateEntity()
	world.SetParent(child, parent)
	world.Commit()

	game := &Game{
		world:    world,
		debugger: debugui.NewDebugger(),
		imguiBackend: debugui_ebiten.ImguiBackend{
			EbitenBackend: imguiBackend,
		},
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
