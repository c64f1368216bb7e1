// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/assets"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// GameScene drives the simulation from engo's frame loop: read input,
// advance the game, sync sprites and HUD.
type GameScene struct {
	game    *engine.Game
	catalog *assets.Catalog
	logger  *logging.Logger
	scale   float32

	// Rendering components
	assets   *AssetManager
	renderer *EngoRenderer
	input    *InputSystem
	hud      *HUDSystem

	quit bool
}

// NewGameScene creates a new game scene
func NewGameScene(game *engine.Game, catalog *assets.Catalog, logger *logging.Logger) *GameScene {
	if catalog == nil {
		catalog = assets.Default()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GameScene{
		game:    game,
		catalog: catalog,
		logger:  logger,
		scale:   1,
		assets:  NewAssetManager(),
		input:   NewInputSystem(nil, game.Config.Simulation.DilationSlow, game.Config.Simulation.DilationFast),
		hud:     NewHUDSystem(nil, 1),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "AsteroidsScene"
}

// Preload loads hazard sprites and the HUD font (required by Engo).
// Failures leave the plain-shape fallbacks in place.
func (scene *GameScene) Preload() {
	ctx := context.Background()
	if err := scene.assets.LoadAssets(scene.catalog); err != nil {
		scene.logger.Error(ctx, "hazard sprites unavailable", err)
	}
	if err := scene.hud.LoadFonts(); err != nil {
		scene.logger.Error(ctx, "HUD font unavailable", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	SetupInputBindings()
	scene.renderer = NewEngoRenderer(renderSystem, scene.assets, scene.scale)
	scene.hud.sink = renderSystem

	world.AddSystem(scene.input)
	world.AddSystem(&frameSystem{scene: scene})
	world.AddSystem(scene.hud)

	scene.logger.Info(context.Background(), "scene ready", "variants", scene.catalog.Len())
}

// Frame runs one frame with dt seconds of wall time. It returns true
// when the game asked to exit.
func (scene *GameScene) Frame(dt float64, fps int) bool {
	scene.input.SetDebug(scene.game.Debug)
	if scene.game.Advance(engine.ClampFrame(dt), scene.input.Commands()) {
		scene.quit = true
		return true
	}

	render.Draw(scene.renderer, scene.game)
	scene.hud.UpdateGameState(scene.game.GetGameState(), fps)
	return false
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.logger.Info(context.Background(), "window closed", "score", scene.game.Score)
}

// frameSystem calls Frame before the HUD and render systems run
type frameSystem struct {
	scene *GameScene
}

func (f *frameSystem) Priority() int { return 10 }

func (f *frameSystem) Remove(ecs.BasicEntity) {}

func (f *frameSystem) Update(dt float32) {
	if f.scene.Frame(float64(dt), int(engo.Time.FPS())) {
		engo.Exit()
	}
}

// Run opens the window and blocks until it closes
func Run(scene *GameScene, cfg *config.GameConfig) {
	engo.Run(engo.RunOptions{
		Title:          "Asteroids",
		Width:          int(cfg.Screen.Width),
		Height:         int(cfg.Screen.Height),
		Fullscreen:     cfg.Screen.Fullscreen,
		AssetsRoot:     ".",
		StandardInputs: false,
		VSync:          true,
	}, scene)
}
