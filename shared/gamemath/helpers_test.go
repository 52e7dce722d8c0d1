package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// assertVecNear compares component-wise with an absolute tolerance, so
// rounding residue on a zero component does not fail the check.
func assertVecNear(t *testing.T, want, got mgl64.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, msgAndArgs...)
	}
}

func assertQuatNear(t *testing.T, want, got mgl64.Quat, delta float64) {
	t.Helper()
	assert.InDelta(t, want.W, got.W, delta, "W of %v vs %v", want, got)
	assertVecNear(t, want.V, got.V, delta, "V of %v vs %v", want, got)
}
