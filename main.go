package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/pccase-viewer/assets"
	"github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/fonts"
	"github.com/automoto/pccase-viewer/logger"
	"github.com/automoto/pccase-viewer/scenes"
	"github.com/automoto/pccase-viewer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(tracker *assets.Tracker) *Game {
	return &Game{
		scene: scenes.NewViewerScene(scenes.ViewerOptions{
			Assets: assets.LoadLevelAssets(tracker),
			Status: tracker,
		}),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	modelPath := flag.String("model", "", "glTF/GLB model to display")
	debug := flag.Bool("debug", false, "verbose development logging and the F3 overlay")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}
	if *modelPath != "" {
		config.Asset.ModelPath = *modelPath
	}
	if *debug {
		config.Debug.Verbose = true
		config.Debug.Overlay = true
	}

	log, err := logger.New(config.Debug.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	logger.Set(log)
	defer func() { _ = log.Sync() }()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err != nil {
		log.Warn("could not read saved settings", zap.Error(err))
	} else {
		systems.ApplySavedSettingsGlobal(saved)
	}

	log.Info("starting viewer",
		zap.String("model", config.Asset.ModelPath),
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height))

	tracker := assets.NewTracker(nil)
	if err := ebiten.RunGame(NewGame(tracker)); err != nil {
		log.Fatal("run", zap.Error(err))
	}
}
