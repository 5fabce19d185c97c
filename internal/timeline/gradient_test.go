package timeline

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestGradientEmptyIsWhite(t *testing.T) {
	var g Gradient
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, g.Evaluate(0.3))
}

func TestGradientBlend(t *testing.T) {
	g := Gradient{
		ColorKeys: []ColorKey{
			{Color: colorful.Color{R: 0, G: 0, B: 0}, Time: 0},
			{Color: colorful.Color{R: 1, G: 0.5, B: 0}, Time: 1},
		},
		AlphaKeys: []AlphaKey{{Alpha: 0, Time: 0}, {Alpha: 1, Time: 0.5}},
	}

	c := g.Evaluate(0.5)
	assert.InDelta(t, 0.5, c[0], 1e-6)
	assert.InDelta(t, 0.25, c[1], 1e-6)
	assert.InDelta(t, 0, c[2], 1e-6)
	assert.InDelta(t, 1, c[3], 1e-6)

	c = g.Evaluate(0.25)
	assert.InDelta(t, 0.5, c[3], 1e-6)
}

func TestGradientClampsOutsideKeys(t *testing.T) {
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	g := Gradient{ColorKeys: []ColorKey{{Color: red, Time: 0.2}, {Color: blue, Time: 0.8}}}
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, g.Evaluate(0))
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1}, g.Evaluate(1))
}

func TestGradientFixedMode(t *testing.T) {
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	g := Gradient{
		Mode:      GradientFixed,
		ColorKeys: []ColorKey{{Color: red, Time: 0}, {Color: blue, Time: 0.5}},
	}
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1}, g.Evaluate(0.25))
}

func TestGradientSort(t *testing.T) {
	g := Gradient{ColorKeys: []ColorKey{{Time: 0.9}, {Time: 0.1}, {Time: 0.5}}}
	g.Sort()
	assert.Equal(t, float32(0.1), g.ColorKeys[0].Time)
	assert.Equal(t, float32(0.9), g.ColorKeys[2].Time)
}
