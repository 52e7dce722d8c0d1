package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	axisColors = [3]color.RGBA{
		{255, 60, 60, 255},  // X
		{60, 255, 60, 255},  // Y
		{60, 120, 255, 255}, // Z
	}
	lightRayColor = color.RGBA{255, 220, 60, 255}
)

// DebugLine is a world-space segment projected to the screen.
type DebugLine struct {
	X0, Y0, X1, Y1 float32
	Color          color.RGBA
}

// DrawDebug draws the origin gizmo, each spotlight's aim ray, and the rig
// state when the overlay is enabled (F3).
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings, ok := components.Settings.First(e.World)
	if !ok || !components.Settings.Get(settings).Debug {
		return
	}

	bounds := screen.Bounds()
	for _, l := range BuildDebugLines(e, float64(bounds.Dx()), float64(bounds.Dy())) {
		vector.StrokeLine(screen, l.X0, l.Y0, l.X1, l.Y1, 2, l.Color, false)
	}

	ebitenutil.DebugPrintAt(screen, debugText(e), 5, bounds.Dy()-96)
}

// BuildDebugLines returns the overlay segments that are in front of the
// camera. It returns nil when there is no camera.
func BuildDebugLines(e *ecs.ECS, width, height float64) []DebugLine {
	cameraEntry, ok := components.OrbitRig.First(e.World)
	if !ok || width <= 0 || height <= 0 {
		return nil
	}
	camera := components.Camera.Get(cameraEntry)
	pose := components.GlobalTransform.Get(cameraEntry).Pose
	viewProj := mgl64.Perspective(camera.FieldOfView, width/height, camera.Near, camera.Far).Mul4(pose.ViewMat4())

	var lines []DebugLine
	add := func(a, b mgl64.Vec3, c color.RGBA) {
		pa, okA := gamemath.Project(viewProj, a, width, height)
		pb, okB := gamemath.Project(viewProj, b, width, height)
		if !okA || !okB {
			return
		}
		lines = append(lines, DebugLine{
			X0: float32(pa.X), Y0: float32(pa.Y),
			X1: float32(pb.X), Y1: float32(pb.Y),
			Color: c,
		})
	}

	for i := 0; i < 3; i++ {
		var axis mgl64.Vec3
		axis[i] = cfg.Debug.AxisLength
		add(mgl64.Vec3{}, axis, axisColors[i])
	}

	components.SpotLight.Each(e.World, func(entry *donburi.Entry) {
		light := components.GlobalTransform.Get(entry).Pose
		// Ray from the light toward its target, stopping halfway
		length := components.OrbitRig.Get(cameraEntry).Target.Sub(light.Position).Len() / 2
		add(light.Position, light.Position.Add(light.Forward().Mul(length)), lightRayColor)
	})

	return lines
}

func debugText(e *ecs.ECS) string {
	s := fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	clock := GetOrCreateClock(e)
	s += fmt.Sprintf("\nt %.1fs  tick %d  input %s", clock.Elapsed, clock.Ticks, GetOrCreateInput(e).LastInputMethod)
	if entry, ok := components.OrbitRig.First(e.World); ok {
		orbit := components.OrbitRig.Get(entry)
		s += fmt.Sprintf("\nyaw %.3f  pitch %.3f  radius %.1f", orbit.Yaw, orbit.Pitch, orbit.Radius)
	}
	components.SceneRoot.Each(e.World, func(entry *donburi.Entry) {
		if mesh := components.SceneRoot.Get(entry).Mesh; mesh != nil {
			s += fmt.Sprintf("\n%s: %d triangles", mesh.Name, mesh.TriangleCount())
		}
	})
	return s
}
