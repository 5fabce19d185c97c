package loader

import (
	"SkyCycle/internal/timeline"

	"github.com/go-gl/mathgl/mgl32"
)

// The document types mirror the YAML layout of a skybox configuration file.
// Colours are hex strings, rotations are Euler angles in degrees.

type gradientDoc struct {
	Mode   string        `yaml:"mode"`
	Solid  string        `yaml:"solid"`
	Colors []colorKeyDoc `yaml:"colors"`
	Alphas []alphaKeyDoc `yaml:"alphas"`
}

type colorKeyDoc struct {
	Color string  `yaml:"color"`
	Time  float32 `yaml:"time"`
}

type alphaKeyDoc struct {
	Alpha float32 `yaml:"alpha"`
	Time  float32 `yaml:"time"`
}

type horizonDoc struct {
	Width       timeline.Timeline[float32] `yaml:"width"`
	Height      timeline.Timeline[float32] `yaml:"height"`
	Mask        string                     `yaml:"mask"`
	MaskValues  mgl32.Vec3                 `yaml:"mask_values"`
	PlaneColor  gradientDoc                `yaml:"plane_color"`
	PlaneHeight timeline.Timeline[float32] `yaml:"plane_height"`
}

type ambientDoc struct {
	Trilight     *bool       `yaml:"trilight"`
	SkyColor     gradientDoc `yaml:"sky_color"`
	EquatorColor gradientDoc `yaml:"equator_color"`
	GroundColor  gradientDoc `yaml:"ground_color"`
}

type avatarDoc struct {
	UseGradient        *bool       `yaml:"use_gradient"`
	TintGradient       gradientDoc `yaml:"tint_gradient"`
	TintColor          string      `yaml:"tint_color"`
	RealtimeDirection  *bool       `yaml:"realtime_direction"`
	ConstantDirection  *mgl32.Vec3 `yaml:"constant_direction"`
	RealtimeLightColor *bool       `yaml:"realtime_light_color"`
	LightColorGradient gradientDoc `yaml:"light_color_gradient"`
}

type fogDoc struct {
	Enabled       bool        `yaml:"enabled"`
	Mode          string      `yaml:"mode"`
	Color         gradientDoc `yaml:"color"`
	Density       *float32    `yaml:"density"`
	StartDistance float32     `yaml:"start_distance"`
	EndDistance   *float32    `yaml:"end_distance"`
}

type directionalLightDoc struct {
	Enabled   *bool                         `yaml:"enabled"`
	Color     gradientDoc                   `yaml:"color"`
	Tint      gradientDoc                   `yaml:"tint"`
	Intensity timeline.Timeline[float32]    `yaml:"intensity"`
	Direction timeline.Timeline[mgl32.Vec3] `yaml:"direction"`
}

type flipbookDoc struct {
	RowsAndColumns *mgl32.Vec2 `yaml:"rows_and_columns"`
	AnimSpeed      float32     `yaml:"anim_speed"`
}

type distortionDoc struct {
	Intensity timeline.Timeline[float32]    `yaml:"intensity"`
	Size      timeline.Timeline[float32]    `yaml:"size"`
	Speed     timeline.Timeline[mgl32.Vec2] `yaml:"speed"`
	Sharpness timeline.Timeline[mgl32.Vec2] `yaml:"sharpness"`
}

type particlesDoc struct {
	Tiling           *mgl32.Vec2                   `yaml:"tiling"`
	Offset           mgl32.Vec2                    `yaml:"offset"`
	Rotation         timeline.Timeline[mgl32.Vec3] `yaml:"rotation"`
	Amount           float32                       `yaml:"amount"`
	MinSize          float32                       `yaml:"min_size"`
	MaxSize          float32                       `yaml:"max_size"`
	HorizontalSpread float32                       `yaml:"horizontal_spread"`
	VerticalSpread   float32                       `yaml:"vertical_spread"`
	MinFade          float32                       `yaml:"min_fade"`
	MaxFade          float32                       `yaml:"max_fade"`
}

type layerDoc struct {
	Name    string  `yaml:"name"`
	Slot    int     `yaml:"slot"`
	Enabled *bool   `yaml:"enabled"`
	Type    string  `yaml:"type"`
	Start   float32 `yaml:"start"`
	End     float32 `yaml:"end"`
	FadeIn  float32 `yaml:"fade_in"`
	FadeOut float32 `yaml:"fade_out"`

	Texture         string      `yaml:"texture"`
	Normals         string      `yaml:"normals"`
	Cubemap         string      `yaml:"cubemap"`
	Color           gradientDoc `yaml:"color"`
	TintPercentage  *float32    `yaml:"tint_percentage"`
	NormalIntensity float32     `yaml:"normal_intensity"`

	RenderDistance   timeline.Timeline[float32]    `yaml:"render_distance"`
	Rotation         timeline.Timeline[float32]    `yaml:"rotation"`
	Movement         string                        `yaml:"movement"`
	Speed            []float32                     `yaml:"speed"`
	Tiling           *mgl32.Vec2                   `yaml:"tiling"`
	Offset           timeline.Timeline[mgl32.Vec2] `yaml:"offset"`
	SatelliteSize    timeline.Timeline[mgl32.Vec2] `yaml:"satellite_size"`
	CubemapRotations timeline.Timeline[mgl32.Vec3] `yaml:"cubemap_rotations"`

	Distortion distortionDoc `yaml:"distortion"`
	Flipbook   flipbookDoc   `yaml:"flipbook"`
	Particles  particlesDoc  `yaml:"particles"`
}

type slotDoc struct {
	ID      int        `yaml:"id"`
	Name    string     `yaml:"name"`
	Enabled *bool      `yaml:"enabled"`
	Layers  []layerDoc `yaml:"layers"`
}

type tagDoc struct {
	Tag     string  `yaml:"tag"`
	Start   float32 `yaml:"start"`
	End     float32 `yaml:"end"`
	Trigger bool    `yaml:"trigger"`
}

type configurationDoc struct {
	ID string `yaml:"id"`

	SkyColor     gradientDoc `yaml:"sky_color"`
	HorizonColor gradientDoc `yaml:"horizon_color"`
	GroundColor  gradientDoc `yaml:"ground_color"`

	Horizon          horizonDoc          `yaml:"horizon"`
	Ambient          ambientDoc          `yaml:"ambient"`
	Avatar           avatarDoc           `yaml:"avatar"`
	Fog              fogDoc              `yaml:"fog"`
	DirectionalLight directionalLightDoc `yaml:"directional_light"`

	Slots        []slotDoc  `yaml:"slots"`
	Layers       []layerDoc `yaml:"layers"`
	TimelineTags []tagDoc   `yaml:"timeline_tags"`
}
