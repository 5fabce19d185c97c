package skybox

import (
	"testing"

	"SkyCycle/internal/renderer"
	"SkyCycle/internal/timeline"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() *Configuration {
	cfg := NewConfiguration("test")
	cfg.SkyColor = timeline.Gradient{ColorKeys: []timeline.ColorKey{
		{Color: colorful.Color{}, Time: 0},
		{Color: colorful.Color{R: 1, G: 1, B: 1}, Time: 1},
	}}
	cfg.HorizonHeight = timeline.Timeline[float32]{{Percentage: 0, Value: 0}, {Percentage: 100, Value: 10}}
	cfg.DirectionalLight.Intensity = timeline.Timeline[float32]{{Percentage: 0, Value: 0}, {Percentage: 100, Value: 2}}
	cfg.DirectionalLight.LightDirection = timeline.Timeline[mgl32.Quat]{
		{Percentage: 0, Value: mgl32.QuatIdent()},
		{Percentage: 100, Value: mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})},
	}

	clouds := NewLayer("clouds", 0, 6, 18)
	clouds.Texture = "clouds"
	clouds.FadeInTime = 2
	clouds.RenderDistance = timeline.Timeline[float32]{{Percentage: 0, Value: 1}, {Percentage: 100, Value: 5}}
	clouds.MovementPlanarRadial = MovementPointBased
	clouds.Offset = timeline.Timeline[mgl32.Vec2]{{Percentage: 0, Value: mgl32.Vec2{0, 0}}, {Percentage: 100, Value: mgl32.Vec2{1, 2}}}

	stars := NewLayer("stars", 1, 20, 4)
	stars.LayerType = LayerParticles
	stars.ParticlesAmount = 200

	cfg.Layers = []*Layer{clouds, stars}
	cfg.TimelineTags = []*TimelineTag{{Tag: "day", StartTime: 6, EndTime: 18}}
	return cfg
}

func TestApplyWritesGlobalValues(t *testing.T) {
	cfg := testConfiguration()
	mat := renderer.NewMaterialProperties("skybox")
	settings := renderer.DefaultRenderSettings()
	sun := renderer.CreateDirectionalLight(mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1}, 1)
	globals := renderer.NewMaterialProperties("globals")

	frame := cfg.Apply(mat, Environment{Settings: &settings, Globals: globals, Sun: sun}, 12, 0.5, 2, 24)

	sky, ok := mat.Color("_skyColor")
	require.True(t, ok)
	assert.InDelta(t, 0.5, sky[0], 1e-6)

	h, _ := mat.Float("_horizonHeight")
	assert.Equal(t, float32(5), h)
	hp, _ := mat.Float("_horizonPlaneHeight")
	assert.Equal(t, float32(-1), hp, "empty plane height falls back to -1")

	assert.Equal(t, renderer.AmbientTrilight, settings.AmbientMode)
	assert.False(t, settings.Fog)
	assert.True(t, sun.Active)
	assert.Equal(t, float32(1), sun.Intensity)
	assert.InDelta(t, 45, sun.EulerAngles()[0], 1e-2)

	_, ok = globals.Color("_TintColor")
	assert.True(t, ok)
	_, ok = globals.Vector("_LightDir")
	assert.True(t, ok)

	assert.Equal(t, []TimelineEvent{{Tag: "day", Enable: true}}, frame.Events)
	require.Len(t, frame.Slots, 2)
}

func TestApplyActiveSlotUsesLayerTime(t *testing.T) {
	cfg := testConfiguration()
	mat := renderer.NewMaterialProperties("skybox")

	frame := cfg.Apply(mat, Environment{}, 12, 0.5, 2, 24)

	require.Same(t, cfg.Layers[0], frame.Slots[0].Layer)
	assert.Equal(t, Rendering, cfg.Layers[0].RenderType)

	tex, _ := mat.Texture("_tex_0")
	assert.Equal(t, "clouds", tex)
	fade, _ := mat.Float("_fadeTime_0")
	assert.Equal(t, float32(1), fade)
	dist, _ := mat.Float("_RenderDistance_0")
	assert.Equal(t, float32(3), dist)
	tiling, _ := mat.Vector("_tilingAndOffset_0")
	assert.Equal(t, mgl32.Vec4{1, 1, 0.5, 1}, tiling)
}

func TestApplyResetsEmptySlot(t *testing.T) {
	cfg := testConfiguration()
	mat := renderer.NewMaterialProperties("skybox")

	frame := cfg.Apply(mat, Environment{}, 12, 0.5, 2, 24)

	assert.False(t, frame.Slots[1].Active())
	assert.Equal(t, NotRendering, cfg.Layers[1].RenderType)
	dist, _ := mat.Float("_RenderDistance_1")
	assert.Equal(t, float32(3.4), dist)
	color, _ := mat.Color("_color_1")
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 0}, color)
	fade, _ := mat.Float("_fadeTime_1")
	assert.Equal(t, float32(1), fade)
}

func TestApplyFadeInAndParticlesAcrossMidnight(t *testing.T) {
	cfg := testConfiguration()
	mat := renderer.NewMaterialProperties("skybox")

	cfg.Apply(mat, Environment{}, 7, 7.0/24, 2, 24)
	fade, _ := mat.Float("_fadeTime_0")
	assert.Equal(t, float32(0.5), fade)

	cfg.Apply(mat, Environment{}, 2, 2.0/24, 2, 24)
	assert.Equal(t, Rendering, cfg.Layers[1].RenderType)
	main, _ := mat.Vector("_particlesMainParameters_1")
	assert.Equal(t, float32(200), main[1])
	kind, _ := mat.Float("_layerType_1")
	assert.Equal(t, float32(LayerParticles), kind)
}

func TestApplyDisabledDirectionalLight(t *testing.T) {
	cfg := testConfiguration()
	cfg.UseDirectionalLight = false
	sun := renderer.CreateDirectionalLight(mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1}, 0.3)
	globals := renderer.NewMaterialProperties("globals")

	cfg.Apply(renderer.NewMaterialProperties("skybox"), Environment{Globals: globals, Sun: sun}, 12, 0.5, 1, 24)

	assert.False(t, sun.Active)
	assert.Equal(t, float32(0.3), sun.Intensity)
	dir, _ := globals.Vector("_LightDir")
	for i, want := range []float32{-0.1, 0.8, -0.4, 0} {
		assert.InDelta(t, want, dir[i], 1e-6)
	}
}

func TestApplyLinearFog(t *testing.T) {
	cfg := testConfiguration()
	cfg.UseFog = true
	cfg.FogMode = renderer.FogLinear
	cfg.FogStartDistance = 10
	cfg.FogEndDistance = 90
	settings := renderer.DefaultRenderSettings()

	cfg.Apply(renderer.NewMaterialProperties("skybox"), Environment{Settings: &settings}, 12, 0.5, 0, 24)

	assert.True(t, settings.Fog)
	assert.Equal(t, renderer.FogLinear, settings.FogMode)
	assert.Equal(t, float32(10), settings.FogStartDistance)
	assert.Equal(t, float32(90), settings.FogEndDistance)
}

func TestResetMaterialNamingContract(t *testing.T) {
	mat := renderer.NewMaterialProperties("skybox")
	ResetMaterial(mat, 2)

	for _, name := range []string{"_tex_0", "_cubemap_1", "_normals_0"} {
		ref, ok := mat.Texture(name)
		assert.True(t, ok, name)
		assert.Empty(t, ref)
	}
	rc, _ := mat.Vector("_rowAndCollumns_1")
	assert.Equal(t, mgl32.Vec4{1, 1, 0, 0}, rc)
	assert.Equal(t, 34, len(mat.Names()))
}
