package renderer

import "github.com/go-gl/mathgl/mgl32"

type AmbientMode int

const (
	AmbientSkybox AmbientMode = iota
	AmbientTrilight
)

type FogMode int

const (
	FogLinear FogMode = iota + 1
	FogExponential
	FogExponentialSquared
)

func (m FogMode) String() string {
	switch m {
	case FogLinear:
		return "linear"
	case FogExponential:
		return "exponential"
	case FogExponentialSquared:
		return "exponential_squared"
	default:
		return "unknown"
	}
}

// ParseFogMode maps a configuration string to a FogMode.
// Unknown names fall back to exponential squared.
func ParseFogMode(s string) FogMode {
	switch s {
	case "linear":
		return FogLinear
	case "exponential":
		return FogExponential
	default:
		return FogExponentialSquared
	}
}

// RenderSettings holds the scene-wide lighting state the sky cycle drives.
type RenderSettings struct {
	// Ambient
	AmbientMode         AmbientMode `json:"ambientMode"`
	AmbientSkyColor     mgl32.Vec4  `json:"ambientSkyColor"`
	AmbientEquatorColor mgl32.Vec4  `json:"ambientEquatorColor"`
	AmbientGroundColor  mgl32.Vec4  `json:"ambientGroundColor"`

	// Fog
	Fog              bool       `json:"fog"`
	FogMode          FogMode    `json:"fogMode"`
	FogColor         mgl32.Vec4 `json:"fogColor"`
	FogDensity       float32    `json:"fogDensity"`
	FogStartDistance float32    `json:"fogStartDistance"`
	FogEndDistance   float32    `json:"fogEndDistance"`

	// Skybox material currently bound to the scene
	Skybox string `json:"skybox"`
}

// DefaultRenderSettings returns the settings used before any sky configuration is applied
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		AmbientMode:         AmbientSkybox,
		AmbientSkyColor:     mgl32.Vec4{0.212, 0.227, 0.259, 1},
		AmbientEquatorColor: mgl32.Vec4{0.114, 0.125, 0.133, 1},
		AmbientGroundColor:  mgl32.Vec4{0.047, 0.043, 0.035, 1},

		Fog:              false,
		FogMode:          FogExponentialSquared,
		FogColor:         mgl32.Vec4{0.5, 0.5, 0.5, 1},
		FogDensity:       0.01,
		FogStartDistance: 0,
		FogEndDistance:   300,
	}
}
