package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gobject/object"
	"github.com/plus3/gobject/object/debugui"
	debugui_ebiten "github.com/plus3/gobject/object/debugui/ebiten"
)

// Game implements ebiten.Game and drives the object loop with the ImGui
// debug windows overlaid.
type Game struct {
	loop         *object.Loop
	debugObj     *object.GameObject
	imguiBackend debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before ticking the loop
	g.imguiBackend.BeginFrame()

	// Reclamation plus the three phases for every live, active object
	g.loop.Once()

	// Render the debug windows inside the frame
	debugui.RenderAll(g.debugObj)

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
	imguiBackend.CreateWindow("Object ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	manager := object.NewManager()
	loop := object.NewLoop(manager)

	// Attach the debug widgets to a dedicated object
	debugObj := debugui.Attach(manager, loop)

	game := &Game{
		loop:     loop,
		debugObj: debugObj,
		imguiBackend: debugui_ebiten.ImguiBackend{
			EbitenBackend: imguiBackend,
		},
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
