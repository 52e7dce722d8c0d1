package scenes

import (
	"sync"

	"github.com/automoto/pccase-viewer/assets"
	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/logger"
	"github.com/automoto/pccase-viewer/systems"
	"github.com/automoto/pccase-viewer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ViewerOptions wires the scene to its asset source and devices. Status is
// required; nil devices fall back to the real ebiten ones.
type ViewerOptions struct {
	Assets *assets.LevelAssets
	Status systems.AssetStatus
	Input  systems.InputSource
	Window systems.WindowController
}

// ViewerScene shows a loading screen until the model is ready, then the
// orbiting camera view of it.
type ViewerScene struct {
	ecs  *ecs.ECS
	opts ViewerOptions
	once sync.Once
}

func NewViewerScene(opts ViewerOptions) *ViewerScene {
	if opts.Input == nil {
		opts.Input = systems.EbitenInput{}
	}
	if opts.Window == nil {
		opts.Window = systems.EbitenWindow{}
	}
	return &ViewerScene{opts: opts}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.ClearColor)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

// ECS returns the scene's world, or nil before the first Update.
func (vs *ViewerScene) ECS() *ecs.ECS {
	return vs.ecs
}

func (vs *ViewerScene) configure() {
	vs.ecs = ecs.NewECS(donburi.NewWorld())

	// Core systems
	vs.ecs.AddSystem(systems.UpdateClock)
	vs.ecs.AddSystem(systems.NewUpdateInput(vs.opts.Input))
	vs.ecs.AddSystem(systems.NewUpdateSettings(vs.opts.Window))

	// Loading screen
	vs.ecs.AddSystem(systems.NewUpdateLoadingGate(vs.opts.Status, vs.enterGame))
	vs.ecs.AddSystem(systems.WithScreen(cfg.ScreenLoading, systems.UpdateLoadingScreen))

	// Camera rig, then the light that follows it. Each needs fresh global
	// transforms from the step before.
	vs.ecs.AddSystem(systems.WithScreen(cfg.ScreenGame, systems.UpdateOrbitRig))
	vs.ecs.AddSystem(systems.PropagateTransforms)
	vs.ecs.AddSystem(systems.WithScreen(cfg.ScreenGame, systems.AimCameraLight))
	vs.ecs.AddSystem(systems.PropagateTransforms)
	vs.ecs.AddSystem(systems.WithScreen(cfg.ScreenGame, systems.UpdateHUD))

	// Renderers
	vs.ecs.AddRenderer(cfg.Default, systems.WithScreenRenderer(cfg.ScreenLoading, systems.DrawLoading))
	vs.ecs.AddRenderer(cfg.Default, systems.WithScreenRenderer(cfg.ScreenGame, systems.DrawScene))
	vs.ecs.AddRenderer(cfg.Default, systems.WithScreenRenderer(cfg.ScreenGame, systems.DrawHUD))
	vs.ecs.AddRenderer(cfg.Default, systems.WithScreenRenderer(cfg.ScreenGame, systems.DrawDebug))

	systems.GetOrCreateScreen(vs.ecs)
}

// enterGame spawns the viewer's entities. It runs once, on the transition
// out of Loading.
func (vs *ViewerScene) enterGame(e *ecs.ECS) {
	var mesh *assets.Mesh
	if vs.opts.Assets != nil && vs.opts.Assets.PcCase != nil {
		mesh = vs.opts.Assets.PcCase.Mesh()
	}

	camera, light := factory.CreateCamera(e)
	level, _ := factory.CreateLevel(e, mesh)
	factory.CreateHintLabel(e)

	// Place everything before the first frame is drawn
	systems.SyncOrbitRigs(e)
	systems.PropagateTransforms(e)
	systems.AimCameraLight(e)
	systems.PropagateTransforms(e)

	fields := []zap.Field{
		zap.String("camera", components.Name.Get(camera).Name),
		zap.String("light", components.Name.Get(light).Name),
		zap.String("level", components.Name.Get(level).Name),
	}
	if mesh != nil {
		fields = append(fields, zap.String("model", mesh.Name), zap.Int("triangles", mesh.TriangleCount()))
	}
	logger.Get().Info("viewer ready", fields...)
}
