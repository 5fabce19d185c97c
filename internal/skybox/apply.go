package skybox

import (
	"strconv"

	"SkyCycle/internal/renderer"
	"SkyCycle/internal/timeline"

	"github.com/go-gl/mathgl/mgl32"
)

// PropertySink receives named material properties. Texture values are opaque
// references; an empty reference unbinds the texture.
type PropertySink interface {
	SetFloat(name string, value float32)
	SetVector(name string, value mgl32.Vec4)
	SetColor(name string, value mgl32.Vec4)
	SetTexture(name string, ref string)
}

// Environment is the scene state outside the skybox material.
// Any field may be nil; nil targets are skipped.
type Environment struct {
	Settings *renderer.RenderSettings
	Globals  PropertySink
	Sun      *renderer.Light
}

// slotProperty builds "<name>_<slot>".
func slotProperty(name string, slot int) string {
	return name + "_" + strconv.Itoa(slot)
}

// Frame is what one Apply call produced.
type Frame struct {
	Events []TimelineEvent
	Slots  []SlotState
}

// Apply writes the state of the configuration at dayTime into mat and env,
// resolving every slot below slotCount, and reports the timeline events
// crossed on this tick together with the per-slot outcome.
func (c *Configuration) Apply(mat PropertySink, env Environment, dayTime, normalizedDayTime float32, slotCount int, cycleLength float32) Frame {
	percentage := normalizedDayTime * 100

	mat.SetColor("_lightTint", c.DirectionalLight.TintColor.Evaluate(normalizedDayTime))
	if env.Sun != nil {
		mat.SetVector("_lightDirection", env.Sun.EulerAngles().Vec4(0))
	}

	mat.SetColor("_skyColor", c.SkyColor.Evaluate(normalizedDayTime))
	mat.SetColor("_groundColor", c.GroundColor.Evaluate(normalizedDayTime))

	mat.SetColor("_horizonColor", c.HorizonColor.Evaluate(normalizedDayTime))
	mat.SetFloat("_horizonHeight", timeline.Float(c.HorizonHeight, percentage, 0))
	mat.SetFloat("_horizonWidth", timeline.Float(c.HorizonWidth, percentage, 0))
	mat.SetTexture("_horizonMask", c.HorizonMask)
	mat.SetVector("_horizonMaskValues", c.HorizonMaskValues.Vec4(0))
	mat.SetColor("_HorizonPlaneColor", c.HorizonPlaneColor.Evaluate(normalizedDayTime))
	mat.SetFloat("_horizonPlaneHeight", timeline.Float(c.HorizonPlaneHeight, percentage, -1))

	c.applyAmbient(env.Settings, normalizedDayTime)
	c.applyAvatar(env, normalizedDayTime)
	c.applyFog(env.Settings, normalizedDayTime)
	c.applyDirectionalLight(env.Sun, normalizedDayTime)

	return Frame{
		Events: CheckTimelineEvents(c.TimelineTags, dayTime, cycleLength),
		Slots:  c.ApplyAllSlots(mat, dayTime, slotCount, cycleLength),
	}
}

func (c *Configuration) applyAmbient(rs *renderer.RenderSettings, normalizedDayTime float32) {
	if rs == nil {
		return
	}
	if !c.AmbientTrilight {
		rs.AmbientMode = renderer.AmbientSkybox
		return
	}
	rs.AmbientMode = renderer.AmbientTrilight
	rs.AmbientSkyColor = c.AmbientSkyColor.Evaluate(normalizedDayTime)
	rs.AmbientEquatorColor = c.AmbientEquatorColor.Evaluate(normalizedDayTime)
	rs.AmbientGroundColor = c.AmbientGroundColor.Evaluate(normalizedDayTime)
}

func (c *Configuration) applyAvatar(env Environment, normalizedDayTime float32) {
	if env.Globals == nil {
		return
	}

	if c.UseAvatarGradient {
		env.Globals.SetColor("_TintColor", c.AvatarTintGradient.Evaluate(normalizedDayTime))
	} else {
		env.Globals.SetColor("_TintColor", c.AvatarTintColor)
	}

	realtimeLight := env.Sun != nil && c.UseDirectionalLight
	if c.UseAvatarRealtimeDLDirection && realtimeLight {
		env.Globals.SetVector("_LightDir", env.Sun.EulerAngles().Mul(1.0/180).Vec4(0))
	} else {
		env.Globals.SetVector("_LightDir", c.AvatarLightConstantDir.Mul(1.0/180).Vec4(0))
	}

	if c.UseAvatarRealtimeLightColor && realtimeLight {
		env.Globals.SetColor("_LightColor", c.DirectionalLight.LightColor.Evaluate(normalizedDayTime))
	} else {
		env.Globals.SetColor("_LightColor", c.AvatarLightColorGradient.Evaluate(normalizedDayTime))
	}
}

func (c *Configuration) applyFog(rs *renderer.RenderSettings, normalizedDayTime float32) {
	if rs == nil {
		return
	}
	rs.Fog = c.UseFog
	if !c.UseFog {
		return
	}
	rs.FogColor = c.FogColor.Evaluate(normalizedDayTime)
	rs.FogMode = c.FogMode
	if c.FogMode == renderer.FogLinear {
		rs.FogStartDistance = c.FogStartDistance
		rs.FogEndDistance = c.FogEndDistance
		return
	}
	rs.FogDensity = c.FogDensity
}

// applyDirectionalLight drives the sun. Empty intensity or direction timelines
// leave the current light values alone.
func (c *Configuration) applyDirectionalLight(sun *renderer.Light, normalizedDayTime float32) {
	if sun == nil {
		return
	}
	if !c.UseDirectionalLight {
		sun.Active = false
		return
	}
	sun.Active = true

	sun.Color = c.DirectionalLight.LightColor.Evaluate(normalizedDayTime).Vec3()

	percentage := normalizedDayTime * 100
	if len(c.DirectionalLight.LightDirection) > 0 {
		sun.Rotation = timeline.Quat(c.DirectionalLight.LightDirection, percentage)
	}
	if len(c.DirectionalLight.Intensity) > 0 {
		sun.Intensity = timeline.Float(c.DirectionalLight.Intensity, percentage, sun.Intensity)
	}
}

// ApplyAllSlots resolves each slot below slotCount and writes its layer, or
// resets the slot when nothing renders on it.
func (c *Configuration) ApplyAllSlots(mat PropertySink, dayTime float32, slotCount int, cycleLength float32) []SlotState {
	states := make([]SlotState, 0, slotCount)
	for i := 0; i < slotCount; i++ {
		st := ResolveSlot(c.Layers, i, dayTime, cycleLength)
		states = append(states, st)
		if !st.Active() {
			ResetSlot(mat, i)
			continue
		}
		applyLayer(mat, st)
	}
	return states
}

func applyLayer(mat PropertySink, st SlotState) {
	layer, n := st.Layer, st.Slot

	mat.SetFloat(slotProperty("_layerType", n), float32(layer.LayerType))
	mat.SetFloat(slotProperty("_fadeTime", n), st.Fade)

	switch layer.LayerType {
	case LayerPlanar, LayerRadial:
		applyPlanarLayer(mat, n, layer, st.LayerTime)
	case LayerSatellite:
		applySatelliteLayer(mat, n, layer, st.LayerTime)
	case LayerCubemap:
		applyCubemapLayer(mat, n, layer, st.LayerTime)
	case LayerParticles:
		applyParticleLayer(mat, n, layer, st.LayerTime)
	}
}

func timeFrame(layer *Layer) mgl32.Vec4 {
	return mgl32.Vec4{layer.TimeSpanStart, layer.TimeSpanEnd, 0, 0}
}

func applyCubemapLayer(mat PropertySink, n int, layer *Layer, layerTime float32) {
	mat.SetFloat(slotProperty("_RenderDistance", n), 0)
	mat.SetTexture(slotProperty("_tex", n), "")
	mat.SetTexture(slotProperty("_cubemap", n), layer.Cubemap)
	mat.SetTexture(slotProperty("_normals", n), "")
	mat.SetVector(slotProperty("_timeFrame", n), timeFrame(layer))
	mat.SetFloat(slotProperty("_lightIntensity", n), layer.TintPercentage/100)
	mat.SetFloat(slotProperty("_normalIntensity", n), 0)
	mat.SetVector(slotProperty("_distortIntAndSize", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_distortSpeedAndSharp", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_rowAndCollumns", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_particlesMainParameters", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_particlesSecondaryParameters", n), mgl32.Vec4{})

	mat.SetColor(slotProperty("_color", n), layer.Color.Evaluate(layerTime))

	// Cubemap rotation reuses the tiling/offset vector.
	if layer.MovementCubemap == MovementPointBased {
		rot := timeline.Vec3(layer.CubemapRotations, layerTime*100, mgl32.Vec3{})
		mat.SetVector(slotProperty("_tilingAndOffset", n), rot.Vec4(0))
		mat.SetVector(slotProperty("_speedAndRotation", n), mgl32.Vec4{})
		return
	}
	mat.SetVector(slotProperty("_tilingAndOffset", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_speedAndRotation", n), layer.Speed3.Vec4(0))
}

func applyPlanarLayer(mat PropertySink, n int, layer *Layer, layerTime float32) {
	p := layerTime * 100

	mat.SetFloat(slotProperty("_RenderDistance", n), timeline.Float(layer.RenderDistance, p, 3.4))
	mat.SetTexture(slotProperty("_tex", n), layer.Texture)
	mat.SetTexture(slotProperty("_normals", n), layer.TextureNormal)
	mat.SetTexture(slotProperty("_cubemap", n), "")
	mat.SetColor(slotProperty("_color", n), layer.Color.Evaluate(layerTime))

	var rot float32
	if layer.LayerType == LayerPlanar {
		rot = timeline.Float(layer.Rotation, p, 0)
	}
	if layer.MovementPlanarRadial == MovementSpeed {
		mat.SetVector(slotProperty("_speedAndRotation", n), mgl32.Vec4{layer.Speed2[0], layer.Speed2[1], rot, 0})
		mat.SetVector(slotProperty("_tilingAndOffset", n), layer.Tiling.Vec4(0, 0))
	} else {
		offset := timeline.Vec2(layer.Offset, p, mgl32.Vec2{})
		mat.SetVector(slotProperty("_speedAndRotation", n), mgl32.Vec4{0, 0, rot, 0})
		mat.SetVector(slotProperty("_tilingAndOffset", n), mgl32.Vec4{layer.Tiling[0], layer.Tiling[1], offset[0], offset[1]})
	}

	applyCommonLayer(mat, n, layer)

	intensity := timeline.Float(layer.DistortIntensity, p, 0)
	size := timeline.Float(layer.DistortSize, p, 0)
	mat.SetVector(slotProperty("_distortIntAndSize", n), mgl32.Vec4{intensity, size, 0, 0})

	speed := timeline.Vec2(layer.DistortSpeed, p, mgl32.Vec2{})
	sharp := timeline.Vec2(layer.DistortSharpness, p, mgl32.Vec2{})
	mat.SetVector(slotProperty("_distortSpeedAndSharp", n), mgl32.Vec4{speed[0], speed[1], sharp[0], sharp[1]})
}

func applySatelliteLayer(mat PropertySink, n int, layer *Layer, layerTime float32) {
	p := layerTime * 100

	mat.SetTexture(slotProperty("_tex", n), layer.Texture)
	mat.SetTexture(slotProperty("_normals", n), layer.TextureNormal)
	mat.SetTexture(slotProperty("_cubemap", n), "")
	mat.SetColor(slotProperty("_color", n), layer.Color.Evaluate(layerTime))

	size := timeline.Vec2(layer.SatelliteSize, p, mgl32.Vec2{1, 1})
	rot := timeline.Float(layer.Rotation, p, 0)
	if layer.MovementSatellite == MovementSpeed {
		mat.SetVector(slotProperty("_tilingAndOffset", n), size.Vec4(0, 0))
		mat.SetVector(slotProperty("_speedAndRotation", n), mgl32.Vec4{layer.Speed2[0], layer.Speed2[1], rot, 0})
	} else {
		offset := timeline.Vec2(layer.Offset, p, mgl32.Vec2{})
		mat.SetVector(slotProperty("_tilingAndOffset", n), mgl32.Vec4{size[0], size[1], offset[0], offset[1]})
		mat.SetVector(slotProperty("_speedAndRotation", n), mgl32.Vec4{0, 0, rot, 0})
	}

	applyCommonLayer(mat, n, layer)

	mat.SetVector(slotProperty("_distortIntAndSize", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_distortSpeedAndSharp", n), mgl32.Vec4{})
}

// applyCommonLayer writes the values planar, radial and satellite layers share.
func applyCommonLayer(mat PropertySink, n int, layer *Layer) {
	mat.SetVector(slotProperty("_timeFrame", n), timeFrame(layer))
	mat.SetFloat(slotProperty("_normalIntensity", n), layer.NormalIntensity)
	mat.SetFloat(slotProperty("_lightIntensity", n), layer.TintPercentage/100)
	mat.SetVector(slotProperty("_rowAndCollumns", n), layer.FlipbookRowsAndColumns.Vec4(0, 0))
	mat.SetVector(slotProperty("_particlesMainParameters", n), mgl32.Vec4{layer.FlipbookAnimSpeed, 0, 0, 0})
	mat.SetVector(slotProperty("_particlesSecondaryParameters", n), mgl32.Vec4{})
}

func applyParticleLayer(mat PropertySink, n int, layer *Layer, layerTime float32) {
	mat.SetFloat(slotProperty("_RenderDistance", n), 0)
	mat.SetTexture(slotProperty("_cubemap", n), "")
	mat.SetVector(slotProperty("_distortIntAndSize", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_distortSpeedAndSharp", n), mgl32.Vec4{})

	mat.SetVector(slotProperty("_timeFrame", n), timeFrame(layer))
	mat.SetFloat(slotProperty("_lightIntensity", n), layer.TintPercentage/100)

	mat.SetTexture(slotProperty("_tex", n), layer.Texture)
	mat.SetTexture(slotProperty("_normals", n), layer.TextureNormal)
	mat.SetFloat(slotProperty("_normalIntensity", n), layer.NormalIntensity)
	mat.SetVector(slotProperty("_rowAndCollumns", n), layer.FlipbookRowsAndColumns.Vec4(0, 0))
	mat.SetColor(slotProperty("_color", n), layer.Color.Evaluate(layerTime))
	mat.SetVector(slotProperty("_tilingAndOffset", n), mgl32.Vec4{
		layer.ParticleTiling[0], layer.ParticleTiling[1], layer.ParticlesOffset[0], layer.ParticlesOffset[1],
	})
	rot := timeline.Vec3(layer.ParticleRotation, layerTime*100, mgl32.Vec3{})
	mat.SetVector(slotProperty("_speedAndRotation", n), rot.Vec4(0))
	mat.SetVector(slotProperty("_particlesMainParameters", n), mgl32.Vec4{
		layer.FlipbookAnimSpeed, layer.ParticlesAmount, layer.ParticleMinSize, layer.ParticleMaxSize,
	})
	mat.SetVector(slotProperty("_particlesSecondaryParameters", n), mgl32.Vec4{
		layer.ParticlesHorizontalSpread, layer.ParticlesVerticalSpread, layer.ParticleMinFade, layer.ParticleMaxFade,
	})
}

// ResetMaterial puts every slot below slotCount into its inert state.
func ResetMaterial(mat PropertySink, slotCount int) {
	for i := 0; i < slotCount; i++ {
		ResetSlot(mat, i)
	}
}

// ResetSlot writes the values of a slot with nothing to render.
func ResetSlot(mat PropertySink, n int) {
	mat.SetFloat(slotProperty("_layerType", n), 0)
	mat.SetTexture(slotProperty("_tex", n), "")
	mat.SetTexture(slotProperty("_cubemap", n), "")
	mat.SetTexture(slotProperty("_normals", n), "")
	mat.SetColor(slotProperty("_color", n), mgl32.Vec4{1, 1, 1, 0})
	mat.SetVector(slotProperty("_tilingAndOffset", n), mgl32.Vec4{1, 1, 0, 0})
	mat.SetVector(slotProperty("_speedAndRotation", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_timeFrame", n), mgl32.Vec4{})
	mat.SetFloat(slotProperty("_fadeTime", n), 1)
	mat.SetFloat(slotProperty("_normalIntensity", n), 0)
	mat.SetFloat(slotProperty("_lightIntensity", n), 0)
	mat.SetFloat(slotProperty("_RenderDistance", n), 3.4)
	mat.SetVector(slotProperty("_distortIntAndSize", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_distortSpeedAndSharp", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_rowAndCollumns", n), mgl32.Vec4{1, 1, 0, 0})
	mat.SetVector(slotProperty("_particlesMainParameters", n), mgl32.Vec4{})
	mat.SetVector(slotProperty("_particlesSecondaryParameters", n), mgl32.Vec4{})
}
