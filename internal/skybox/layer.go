package skybox

import (
	"SkyCycle/internal/timeline"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderType is the per-tick verdict of the resolver for one layer.
type RenderType int

const (
	NotRendering RenderType = iota
	Rendering
	ConflictPlaying
	ConflictNotPlaying
)

func (r RenderType) String() string {
	switch r {
	case Rendering:
		return "rendering"
	case ConflictPlaying:
		return "conflict_playing"
	case ConflictNotPlaying:
		return "conflict_not_playing"
	default:
		return "not_rendering"
	}
}

type LayerType int

const (
	LayerPlanar LayerType = iota
	LayerRadial
	LayerSatellite
	LayerCubemap
	LayerParticles
)

var layerTypeNames = map[string]LayerType{
	"planar":    LayerPlanar,
	"radial":    LayerRadial,
	"satellite": LayerSatellite,
	"cubemap":   LayerCubemap,
	"particles": LayerParticles,
}

// ParseLayerType returns the layer type for name and whether it was known.
func ParseLayerType(name string) (LayerType, bool) {
	lt, ok := layerTypeNames[name]
	return lt, ok
}

type MovementType int

const (
	MovementSpeed MovementType = iota
	MovementPointBased
)

// Layer is a time-windowed visual effect competing for one slot.
type Layer struct {
	Name      string
	SlotID    int
	Enabled   bool
	LayerType LayerType

	// Window in hours. End below start wraps through midnight.
	TimeSpanStart float32
	TimeSpanEnd   float32
	FadeInTime    float32
	FadeOutTime   float32

	// Written by SelectActiveLayer every tick.
	RenderType RenderType

	Texture        string
	TextureNormal  string
	Cubemap        string
	Color          timeline.Gradient
	TintPercentage float32

	NormalIntensity float32
	RenderDistance  timeline.Timeline[float32]
	Rotation        timeline.Timeline[float32]

	MovementPlanarRadial MovementType
	MovementSatellite    MovementType
	MovementCubemap      MovementType
	Speed2               mgl32.Vec2
	Speed3               mgl32.Vec3
	Tiling               mgl32.Vec2
	Offset               timeline.Timeline[mgl32.Vec2]
	SatelliteSize        timeline.Timeline[mgl32.Vec2]
	CubemapRotations     timeline.Timeline[mgl32.Vec3]

	DistortIntensity timeline.Timeline[float32]
	DistortSize      timeline.Timeline[float32]
	DistortSpeed     timeline.Timeline[mgl32.Vec2]
	DistortSharpness timeline.Timeline[mgl32.Vec2]

	FlipbookRowsAndColumns mgl32.Vec2
	FlipbookAnimSpeed      float32

	ParticleTiling            mgl32.Vec2
	ParticlesOffset           mgl32.Vec2
	ParticleRotation          timeline.Timeline[mgl32.Vec3]
	ParticlesAmount           float32
	ParticleMinSize           float32
	ParticleMaxSize           float32
	ParticlesHorizontalSpread float32
	ParticlesVerticalSpread   float32
	ParticleMinFade           float32
	ParticleMaxFade           float32
}

// NewLayer returns an enabled planar layer covering [start, end] on slot.
func NewLayer(name string, slot int, start, end float32) *Layer {
	return &Layer{
		Name:                   name,
		SlotID:                 slot,
		Enabled:                true,
		TimeSpanStart:          start,
		TimeSpanEnd:            end,
		TintPercentage:         100,
		Tiling:                 mgl32.Vec2{1, 1},
		FlipbookRowsAndColumns: mgl32.Vec2{1, 1},
		ParticleTiling:         mgl32.Vec2{1, 1},
	}
}

// Wraps reports whether the window crosses the cycle boundary.
func (l *Layer) Wraps() bool {
	return l.TimeSpanEnd < l.TimeSpanStart
}
