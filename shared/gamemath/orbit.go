package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis (right-handed, Y-up).
var Up = mgl64.Vec3{0, 1, 0}

// Forward is the local forward axis of cameras and lights.
var Forward = mgl64.Vec3{0, 0, -1}

// degenerateEpsilon is the squared length below which a direction is unusable.
const degenerateEpsilon = 1e-4

// ClampPitch clamps pitch to [min, max].
func ClampPitch(pitch, min, max float64) float64 {
	if pitch < min {
		return min
	}
	if pitch > max {
		return max
	}
	return pitch
}

// AxisDirection maps two held keys to -1, 0 or +1.
// Holding both cancels out.
func AxisDirection(increasePressed, decreasePressed bool) float64 {
	dir := 0.0
	if increasePressed {
		dir += 1.0
	}
	if decreasePressed {
		dir -= 1.0
	}
	return dir
}

// IntegrateYaw advances yaw by direction*speed*dt. Yaw is unbounded.
func IntegrateYaw(yaw, direction, speed, dt float64) float64 {
	return yaw + direction*speed*dt
}

// OrbitOffset converts spherical orbit parameters into an offset from the target.
func OrbitOffset(radius, yaw, pitch float64) mgl64.Vec3 {
	cosPitch := math.Cos(pitch)
	sinPitch := math.Sin(pitch)

	x := radius * math.Cos(yaw) * cosPitch
	z := radius * math.Sin(yaw) * cosPitch
	y := radius * sinPitch
	return mgl64.Vec3{x, y, z}
}

// OrbitPosition returns the world position of a camera orbiting target.
func OrbitPosition(target mgl64.Vec3, radius, yaw, pitch float64) mgl64.Vec3 {
	return target.Add(OrbitOffset(radius, yaw, pitch))
}

// LookAt returns the rotation that points the -Z axis from eye toward target,
// keeping up as close to the local +Y axis as possible.
// ok is false when eye and target (nearly) coincide or the view is parallel to up.
func LookAt(eye, target, up mgl64.Vec3) (rot mgl64.Quat, ok bool) {
	dir := target.Sub(eye)
	if dir.Dot(dir) <= degenerateEpsilon {
		return mgl64.QuatIdent(), false
	}
	back := dir.Mul(-1).Normalize()
	right := up.Cross(back)
	if right.Dot(right) <= 1e-12 {
		return mgl64.QuatIdent(), false
	}
	right = right.Normalize()
	realUp := back.Cross(right)

	basis := mgl64.Mat3FromCols(right, realUp, back)
	return mgl64.Mat4ToQuat(basis.Mat4()).Normalize(), true
}

// SanitizeRadius keeps an orbit radius away from zero.
func SanitizeRadius(radius, min float64) float64 {
	if math.IsNaN(radius) || radius < min {
		return min
	}
	return radius
}
