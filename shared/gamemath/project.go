package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ScreenPoint is a projected vertex in pixel space. Depth is the view-space
// distance along the camera's forward axis.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Project maps a world point to pixel coordinates using a combined
// projection*view matrix. ok is false when the point is behind the near plane.
func Project(viewProj mgl64.Mat4, p mgl64.Vec3, width, height float64) (ScreenPoint, bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-6 {
		return ScreenPoint{}, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	return ScreenPoint{
		X:     (ndcX + 1) * 0.5 * width,
		Y:     (1 - ndcY) * 0.5 * height,
		Depth: w,
	}, true
}

// SpotLight describes a cone light in world space.
type SpotLight struct {
	Position   mgl64.Vec3
	Direction  mgl64.Vec3 // normalized
	Intensity  float64
	Range      float64
	InnerAngle float64
	OuterAngle float64
}

// Illuminance returns the spotlight contribution in [0, 1] for a surface point
// with normal n. Intensity is normalized against referenceIntensity.
func (s SpotLight) Illuminance(p, n mgl64.Vec3, referenceIntensity float64) float64 {
	toLight := s.Position.Sub(p)
	dist := toLight.Len()
	if dist <= 1e-9 || dist >= s.Range {
		return 0
	}
	l := toLight.Mul(1 / dist)

	lambert := n.Dot(l)
	if lambert <= 0 {
		return 0
	}

	cosAngle := s.Direction.Dot(l.Mul(-1))
	cone := smoothstep(math.Cos(s.OuterAngle), math.Cos(s.InnerAngle), cosAngle)
	if cone <= 0 {
		return 0
	}

	// Smooth range falloff, reaching zero at Range.
	ratio := dist / s.Range
	falloff := 1 - ratio*ratio
	falloff *= falloff

	strength := s.Intensity / referenceIntensity
	v := lambert * cone * falloff * strength
	if v > 1 {
		return 1
	}
	return v
}

func smoothstep(edge0, edge1, x float64) float64 {
	if edge1 == edge0 {
		if x >= edge1 {
			return 1
		}
		return 0
	}
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
