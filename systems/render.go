package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/automoto/pccase-viewer/components"
	cfg "github.com/automoto/pccase-viewer/config"
	"github.com/automoto/pccase-viewer/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxBatchVertices is the most vertices one DrawTriangles call can index.
const maxBatchVertices = math.MaxUint16 - 2

// SceneTriangle is a projected, shaded triangle ready for submission.
type SceneTriangle struct {
	Vertices [3]ebiten.Vertex
	Depth    float64 // Mean view depth, larger is farther
}

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image

	// Reused between frames to avoid allocations
	sceneTriangles []SceneTriangle
	batchVertices  []ebiten.Vertex
	batchIndices   []uint16
	trianglesOp    = &ebiten.DrawTrianglesOptions{}
)

// DrawScene rasterizes every SceneRoot mesh from the main camera, lit by the
// scene's spotlights. The scene clears the screen before any renderer runs.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	bounds := screen.Bounds()
	sceneTriangles = BuildSceneTriangles(e, float64(bounds.Dx()), float64(bounds.Dy()), sceneTriangles[:0])
	if len(sceneTriangles) == 0 {
		return
	}

	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	batchVertices = batchVertices[:0]
	batchIndices = batchIndices[:0]
	for i := range sceneTriangles {
		if len(batchVertices)+3 > maxBatchVertices {
			screen.DrawTriangles(batchVertices, batchIndices, whiteSubImage, trianglesOp)
			batchVertices = batchVertices[:0]
			batchIndices = batchIndices[:0]
		}
		base := uint16(len(batchVertices))
		batchVertices = append(batchVertices, sceneTriangles[i].Vertices[:]...)
		batchIndices = append(batchIndices, base, base+1, base+2)
	}
	if len(batchVertices) > 0 {
		screen.DrawTriangles(batchVertices, batchIndices, whiteSubImage, trianglesOp)
	}
}

// BuildSceneTriangles projects and shades the scene into buf, sorted back to
// front. It returns buf unchanged when there is no camera.
func BuildSceneTriangles(e *ecs.ECS, width, height float64, buf []SceneTriangle) []SceneTriangle {
	cameraEntry, ok := components.OrbitRig.First(e.World)
	if !ok || width <= 0 || height <= 0 {
		return buf
	}
	camera := components.Camera.Get(cameraEntry)
	cameraPose := components.GlobalTransform.Get(cameraEntry).Pose

	proj := mgl64.Perspective(camera.FieldOfView, width/height, camera.Near, camera.Far)
	viewProj := proj.Mul4(cameraPose.ViewMat4())
	lights := collectSpotLights(e)

	components.SceneRoot.Each(e.World, func(entry *donburi.Entry) {
		root := components.SceneRoot.Get(entry)
		if root.Mesh == nil {
			return
		}
		model := components.GlobalTransform.Get(entry).Pose
		mesh := root.Mesh

		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			idx := [3]uint32{mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]}

			var world [3]mgl64.Vec3
			for k, vi := range idx {
				world[k] = model.Apply(mesh.Positions[vi])
			}

			face := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
			if face.Dot(cameraPose.Position.Sub(world[0])) <= 0 {
				continue // back face
			}
			faceNormal := face.Normalize()

			tri := SceneTriangle{}
			visible := true
			for k, vi := range idx {
				sp, ok := gamemath.Project(viewProj, world[k], width, height)
				if !ok {
					visible = false
					break
				}
				n := mesh.Normals[vi]
				if n.Dot(n) == 0 {
					n = faceNormal
				} else {
					n = model.Rotation.Rotate(n)
				}
				r, g, b := shade(world[k], n, lights)
				tri.Vertices[k] = ebiten.Vertex{
					DstX:   float32(sp.X),
					DstY:   float32(sp.Y),
					SrcX:   1.5,
					SrcY:   1.5,
					ColorR: r,
					ColorG: g,
					ColorB: b,
					ColorA: 1,
				}
				tri.Depth += sp.Depth / 3
			}
			if visible {
				buf = append(buf, tri)
			}
		}
	})

	sort.SliceStable(buf, func(i, j int) bool { return buf[i].Depth > buf[j].Depth })
	return buf
}

func collectSpotLights(e *ecs.ECS) []gamemath.SpotLight {
	var lights []gamemath.SpotLight
	components.SpotLight.Each(e.World, func(entry *donburi.Entry) {
		spot := components.SpotLight.Get(entry)
		pose := components.GlobalTransform.Get(entry).Pose
		lights = append(lights, gamemath.SpotLight{
			Position:   pose.Position,
			Direction:  pose.Forward(),
			Intensity:  spot.Intensity,
			Range:      spot.Range,
			InnerAngle: spot.InnerAngle,
			OuterAngle: spot.OuterAngle,
		})
	})
	return lights
}

func shade(p, n mgl64.Vec3, lights []gamemath.SpotLight) (r, g, b float32) {
	brightness := cfg.Render.Ambient
	for _, l := range lights {
		brightness += l.Illuminance(p, n, cfg.Render.ReferenceIntensity)
	}
	if brightness > 1 {
		brightness = 1
	}
	c := cfg.Render.SurfaceColor
	scale := float32(brightness) / 255
	return float32(c.R) * scale, float32(c.G) * scale, float32(c.B) * scale
}
