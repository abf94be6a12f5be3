package rangeslider

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowFPS   bool
	Resizable bool
	// ExitWhenScriptDone ends the game loop once an attached TestRunner
	// has run every step.
	ExitWhenScriptDone bool
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
}

func (g *gameShell) Update() error {
	g.scene.Update()
	if g.cfg.ExitWhenScriptDone && g.scene.testRunner != nil && g.scene.testRunner.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout uses the window size as the logical screen size and forwards
// changes to the scene as resize events.
func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the scene until the window closes.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&gameShell{scene: scene, cfg: cfg})
}
