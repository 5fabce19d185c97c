package timeline

import "github.com/go-gl/mathgl/mgl32"

// Keyframe is a value pinned to a position of the cycle, in percent.
type Keyframe[T any] struct {
	Percentage float32 `yaml:"percentage"`
	Value      T       `yaml:"value"`
}

// Timeline is a sparse set of keyframes kept in the order they were authored.
type Timeline[T any] []Keyframe[T]

// LerpFunc blends a towards b by t in [0,1].
type LerpFunc[T any] func(a, b T, t float32) T

// Evaluate samples tl at percentage (0..100).
//
// The lookup is a single pass in collection order: the first keyframe whose
// percentage is not below the requested one bounds the segment from above and
// its predecessor in the collection bounds it from below. Keyframes are never
// sorted, so an out-of-order timeline evaluates by insertion order. When no
// keyframe qualifies both bounds stay on the first keyframe.
func Evaluate[T any](tl Timeline[T], percentage float32, def T, lerp LerpFunc[T]) T {
	switch len(tl) {
	case 0:
		return def
	case 1:
		return tl[0].Value
	}

	lo, hi := tl[0], tl[0]
	for i := range tl {
		if percentage <= tl[i].Percentage {
			hi = tl[i]
			if i > 0 {
				lo = tl[i-1]
			}
			break
		}
	}

	t := InverseLerp(lo.Percentage, hi.Percentage, percentage)
	return lerp(lo.Value, hi.Value, t)
}

func Float(tl Timeline[float32], percentage, def float32) float32 {
	return Evaluate(tl, percentage, def, Lerp)
}

func Vec2(tl Timeline[mgl32.Vec2], percentage float32, def mgl32.Vec2) mgl32.Vec2 {
	return Evaluate(tl, percentage, def, LerpVec2)
}

func Vec3(tl Timeline[mgl32.Vec3], percentage float32, def mgl32.Vec3) mgl32.Vec3 {
	return Evaluate(tl, percentage, def, LerpVec3)
}

// Quat evaluates a rotation timeline. Missing data yields the identity rotation.
func Quat(tl Timeline[mgl32.Quat], percentage float32) mgl32.Quat {
	return Evaluate(tl, percentage, mgl32.QuatIdent(), LerpQuat)
}

func LerpVec2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(Clamp01(t)))
}

func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(Clamp01(t)))
}

// LerpQuat is a normalized lerp along the shorter arc.
func LerpQuat(a, b mgl32.Quat, t float32) mgl32.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatNlerp(a, b, Clamp01(t))
}
