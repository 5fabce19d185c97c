package timeline

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// GradientMode selects how a gradient blends between keys.
type GradientMode int

const (
	GradientBlend GradientMode = iota
	GradientFixed
)

type ColorKey struct {
	Color colorful.Color
	Time  float32
}

type AlphaKey struct {
	Alpha float32
	Time  float32
}

// Gradient maps a normalized time (0..1) to an RGBA colour.
// Colour and alpha are keyed independently.
type Gradient struct {
	Mode      GradientMode
	ColorKeys []ColorKey
	AlphaKeys []AlphaKey
}

// SolidGradient returns a gradient that evaluates to c everywhere.
func SolidGradient(c colorful.Color, alpha float32) Gradient {
	return Gradient{
		ColorKeys: []ColorKey{{Color: c, Time: 0}},
		AlphaKeys: []AlphaKey{{Alpha: alpha, Time: 0}},
	}
}

// Sort orders keys by time. Evaluate expects sorted keys.
func (g *Gradient) Sort() {
	sort.SliceStable(g.ColorKeys, func(i, j int) bool { return g.ColorKeys[i].Time < g.ColorKeys[j].Time })
	sort.SliceStable(g.AlphaKeys, func(i, j int) bool { return g.AlphaKeys[i].Time < g.AlphaKeys[j].Time })
}

// Evaluate returns the colour at time t. A gradient without keys is opaque white.
func (g Gradient) Evaluate(t float32) mgl32.Vec4 {
	t = Clamp01(t)
	c := g.color(t)
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), g.alpha(t)}
}

func (g Gradient) color(t float32) colorful.Color {
	keys := g.ColorKeys
	n := len(keys)
	if n == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	if t <= keys[0].Time {
		return keys[0].Color
	}
	if t >= keys[n-1].Time {
		return keys[n-1].Color
	}
	i := sort.Search(n, func(i int) bool { return keys[i].Time >= t })
	a, b := keys[i-1], keys[i]
	if g.Mode == GradientFixed {
		return b.Color
	}
	f := InverseLerp(a.Time, b.Time, t)
	return a.Color.BlendRgb(b.Color, float64(f)).Clamped()
}

func (g Gradient) alpha(t float32) float32 {
	keys := g.AlphaKeys
	n := len(keys)
	if n == 0 {
		return 1
	}
	if t <= keys[0].Time {
		return keys[0].Alpha
	}
	if t >= keys[n-1].Time {
		return keys[n-1].Alpha
	}
	i := sort.Search(n, func(i int) bool { return keys[i].Time >= t })
	a, b := keys[i-1], keys[i]
	if g.Mode == GradientFixed {
		return b.Alpha
	}
	return Lerp(a.Alpha, b.Alpha, InverseLerp(a.Time, b.Time, t))
}
