package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Light is the scene's directional light as seen by the sky cycle.
type Light struct {
	Rotation  mgl32.Quat
	Color     mgl32.Vec3
	Intensity float32
	Active    bool
}

// CreateDirectionalLight creates an active directional light (the sun).
func CreateDirectionalLight(rotation mgl32.Quat, color mgl32.Vec3, intensity float32) *Light {
	return &Light{
		Rotation:  rotation.Normalize(),
		Color:     color,
		Intensity: intensity,
		Active:    true,
	}
}

// Direction is the light's forward vector.
func (l *Light) Direction() mgl32.Vec3 {
	return l.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

// EulerAngles returns the light rotation in degrees, each axis in [0,360).
func (l *Light) EulerAngles() mgl32.Vec3 {
	return EulerAngles(l.Rotation)
}

// QuatFromEuler builds a rotation from angles in degrees, applied Z then X then Y.
func QuatFromEuler(deg mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(deg[0]), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(deg[1]), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(deg[2]), mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz).Normalize()
}

// EulerAngles is the inverse of QuatFromEuler.
func EulerAngles(q mgl32.Quat) mgl32.Vec3 {
	q = q.Normalize()
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	sinX := 2 * (w*x - y*z)
	if sinX > 1 {
		sinX = 1
	} else if sinX < -1 {
		sinX = -1
	}
	ex := math.Asin(sinX)
	ey := math.Atan2(2*(x*z+w*y), 1-2*(x*x+y*y))
	ez := math.Atan2(2*(x*y+w*z), 1-2*(x*x+z*z))

	return mgl32.Vec3{wrapDegrees(ex), wrapDegrees(ey), wrapDegrees(ez)}
}

func wrapDegrees(rad float64) float32 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	// Rounding noise right below a full turn reads as zero.
	if d > 360-1e-4 {
		d = 0
	}
	return float32(d)
}
