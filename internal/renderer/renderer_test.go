package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCreateDirectionalLight(t *testing.T) {
	light := CreateDirectionalLight(mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1}, 0.8)

	assert.True(t, light.Active)
	assert.True(t, light.Direction().ApproxEqual(mgl32.Vec3{0, 0, 1}))
}

func TestDirectionFollowsRotation(t *testing.T) {
	light := CreateDirectionalLight(QuatFromEuler(mgl32.Vec3{0, 90, 0}), mgl32.Vec3{1, 1, 1}, 1)

	assert.True(t, light.Direction().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))
}

func TestEulerRoundTrip(t *testing.T) {
	cases := []mgl32.Vec3{
		{0, 0, 0},
		{0, 90, 0},
		{30, 45, 0},
		{10, 200, 60},
		{342, 144, 288},
	}
	for _, deg := range cases {
		got := EulerAngles(QuatFromEuler(deg))
		for i := 0; i < 3; i++ {
			assert.Less(t, angleDelta(deg[i], got[i]), 1e-2, "axis %d of %v", i, deg)
		}
	}
}

func TestEulerAnglesYaw(t *testing.T) {
	q := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	got := EulerAngles(q)
	assert.Less(t, angleDelta(0, got[0]), 1e-3)
	assert.Less(t, angleDelta(90, got[1]), 1e-3)
	assert.Less(t, angleDelta(0, got[2]), 1e-3)
}

// angleDelta is the unsigned distance between two angles in degrees.
func angleDelta(a, b float32) float64 {
	d := math.Mod(float64(a-b), 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}
