package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/fonts"
	"github.com/automoto/pccase-viewer/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	xfont "golang.org/x/image/font"
)

// AssetStatus reports asset loading progress.
type AssetStatus interface {
	IsAllDone() bool
	Pending() int
}

// NewUpdateLoadingGate returns a system that leaves the Loading screen the
// first tick assets reports all done, running onEnterGame once. It does
// nothing on any other screen, so it never fires twice.
func NewUpdateLoadingGate(assets AssetStatus, onEnterGame ScreenEnterFunc) ecs.System {
	return func(e *ecs.ECS) {
		if CurrentScreen(e) != cfg.ScreenLoading {
			return
		}
		GetOrCreateLoading(e).Pending = assets.Pending()
		if !assets.IsAllDone() {
			return
		}
		if err := TransitionScreen(e, cfg.ScreenGame, onEnterGame); err != nil {
			logger.Get().Warn("loading gate", zap.Error(err))
		}
	}
}

// UpdateLoadingScreen advances the loading text pulse.
func UpdateLoadingScreen(e *ecs.ECS) {
	loading := GetOrCreateLoading(e)
	dt := float32(GetOrCreateClock(e).Delta)

	alpha, finished := loading.Pulse.Update(dt)
	loading.Alpha = alpha
	if finished {
		loading.FadeIn = !loading.FadeIn
		loading.Pulse = newPulse(loading.FadeIn)
	}
}

// GetOrCreateLoading returns the singleton Loading component, creating if needed.
func GetOrCreateLoading(e *ecs.ECS) *components.LoadingData {
	entry, ok := components.Loading.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Loading))
		components.Loading.SetValue(entry, components.LoadingData{
			Pulse: newPulse(false),
			Alpha: 1,
		})
	}
	return components.Loading.Get(entry)
}

func newPulse(fadeIn bool) *gween.Tween {
	from, to := float32(1), cfg.Loading.PulseMinAlpha
	if fadeIn {
		from, to = to, from
	}
	return gween.New(from, to, cfg.Loading.PulseDuration, ease.InOutSine)
}

// DrawLoading renders the loading screen.
func DrawLoading(e *ecs.ECS, screen *ebiten.Image) {
	loading := GetOrCreateLoading(e)

	titleFont := fonts.Title.Get()
	drawCentered(screen, cfg.Loading.Text, titleFont, screen.Bounds().Dy()/2, fade(cfg.Loading.TextColor, loading.Alpha))

	hintFont := fonts.Small.Get()
	drawCentered(screen, loadingDetail(loading.Pending), hintFont, screen.Bounds().Dy()/2+32, fade(cfg.LightGray, 1))
}

func loadingDetail(pending int) string {
	switch pending {
	case 0:
		return cfg.Asset.ModelPath
	case 1:
		return fmt.Sprintf("%s (1 asset remaining)", cfg.Asset.ModelPath)
	}
	return fmt.Sprintf("%s (%d assets remaining)", cfg.Asset.ModelPath, pending)
}

func drawCentered(screen *ebiten.Image, s string, face xfont.Face, y int, clr color.Color) {
	width := xfont.MeasureString(face, s).Ceil()
	x := (screen.Bounds().Dx() - width) / 2
	text.Draw(screen, s, face, x, y, clr)
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	// Premultiplied, as ebiten expects.
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
