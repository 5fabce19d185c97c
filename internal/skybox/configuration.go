package skybox

import (
	"fmt"

	"SkyCycle/internal/renderer"
	"SkyCycle/internal/timeline"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
)

const (
	// DefaultSkyboxID is loaded whenever the requested configuration is missing.
	DefaultSkyboxID = "Generic_Skybox"
	// DefaultCycleLength is the length of one day in hours.
	DefaultCycleLength float32 = 24
	// DefaultSlotCount is the number of slots a skybox material exposes.
	DefaultSlotCount = 5
)

type DirectionalLightAttributes struct {
	LightColor     timeline.Gradient
	TintColor      timeline.Gradient
	Intensity      timeline.Timeline[float32]
	LightDirection timeline.Timeline[mgl32.Quat]
}

// Slot groups the layers authored for one slot.
type Slot struct {
	SlotID  int
	Name    string
	Enabled bool
	Layers  []*Layer
}

// Configuration is one authored day/night cycle.
type Configuration struct {
	ID string

	// Background
	SkyColor     timeline.Gradient
	HorizonColor timeline.Gradient
	GroundColor  timeline.Gradient

	// Horizon
	HorizonWidth       timeline.Timeline[float32]
	HorizonHeight      timeline.Timeline[float32]
	HorizonMask        string
	HorizonMaskValues  mgl32.Vec3
	HorizonPlaneColor  timeline.Gradient
	HorizonPlaneHeight timeline.Timeline[float32]

	// Ambient
	AmbientTrilight     bool
	AmbientSkyColor     timeline.Gradient
	AmbientEquatorColor timeline.Gradient
	AmbientGroundColor  timeline.Gradient

	// Avatar
	UseAvatarGradient            bool
	AvatarTintGradient           timeline.Gradient
	AvatarTintColor              mgl32.Vec4
	UseAvatarRealtimeDLDirection bool
	AvatarLightConstantDir       mgl32.Vec3
	UseAvatarRealtimeLightColor  bool
	AvatarLightColorGradient     timeline.Gradient

	// Fog
	UseFog           bool
	FogMode          renderer.FogMode
	FogColor         timeline.Gradient
	FogDensity       float32
	FogStartDistance float32
	FogEndDistance   float32

	// Directional light
	UseDirectionalLight bool
	DirectionalLight    DirectionalLightAttributes

	Slots        []Slot
	Layers       []*Layer
	TimelineTags []*TimelineTag
}

// NewConfiguration returns a configuration with the authoring defaults.
func NewConfiguration(id string) *Configuration {
	return &Configuration{
		ID:                           id,
		AmbientTrilight:              true,
		UseAvatarGradient:            true,
		AvatarTintColor:              mgl32.Vec4{1, 1, 1, 1},
		UseAvatarRealtimeDLDirection: true,
		AvatarLightConstantDir:       mgl32.Vec3{-18, 144, -72},
		UseAvatarRealtimeLightColor:  true,
		FogMode:                      renderer.FogExponentialSquared,
		FogDensity:                   0.05,
		FogEndDistance:               300,
		UseDirectionalLight:          true,
	}
}

// AddSlot appends an empty, enabled slot.
func (c *Configuration) AddSlot(slotID int) {
	c.Slots = append(c.Slots, Slot{SlotID: slotID, Enabled: true})
}

// FillLayersFromSlots appends every slot's layers to the flat layer list.
func (c *Configuration) FillLayersFromSlots() {
	for _, s := range c.Slots {
		c.Layers = append(c.Layers, s.Layers...)
	}
}

// ActiveLayer resolves the layer rendering on slotID at currentTime.
func (c *Configuration) ActiveLayer(currentTime float32, slotID int, cycleLength float32) *Layer {
	return SelectActiveLayer(c.Layers, slotID, currentTime, cycleLength)
}

// LayersOnSlot lists the layers bound to slotID in collection order.
func (c *Configuration) LayersOnSlot(slotID int) []*Layer {
	var out []*Layer
	for _, l := range c.Layers {
		if l != nil && l.SlotID == slotID {
			out = append(out, l)
		}
	}
	return out
}

// Validate reports authoring problems. Evaluation never depends on it: an
// invalid configuration still renders with degraded values.
func (c *Configuration) Validate(cycleLength float32) error {
	var err error
	if c.ID == "" {
		err = multierr.Append(err, fmt.Errorf("configuration has no id"))
	}
	for i, l := range c.Layers {
		if l == nil {
			err = multierr.Append(err, fmt.Errorf("layer %d is nil", i))
			continue
		}
		if l.SlotID < 0 {
			err = multierr.Append(err, fmt.Errorf("layer %q: negative slot %d", l.Name, l.SlotID))
		}
		if !inCycle(l.TimeSpanStart, cycleLength) || !inCycle(l.TimeSpanEnd, cycleLength) {
			err = multierr.Append(err, fmt.Errorf("layer %q: time span [%g, %g] outside [0, %g]",
				l.Name, l.TimeSpanStart, l.TimeSpanEnd, cycleLength))
		}
		if l.FadeInTime < 0 || l.FadeOutTime < 0 {
			err = multierr.Append(err, fmt.Errorf("layer %q: negative fade time", l.Name))
		}
		err = multierr.Append(err, checkPercentages(l.Name+".render_distance", l.RenderDistance))
		err = multierr.Append(err, checkPercentages(l.Name+".rotation", l.Rotation))
	}
	for _, tag := range c.TimelineTags {
		if tag == nil {
			continue
		}
		if !inCycle(tag.StartTime, cycleLength) || (!tag.IsTrigger && !inCycle(tag.EndTime, cycleLength)) {
			err = multierr.Append(err, fmt.Errorf("timeline tag %q outside [0, %g]", tag.Tag, cycleLength))
		}
	}
	err = multierr.Append(err, checkPercentages("horizon_width", c.HorizonWidth))
	err = multierr.Append(err, checkPercentages("horizon_height", c.HorizonHeight))
	err = multierr.Append(err, checkPercentages("horizon_plane_height", c.HorizonPlaneHeight))
	err = multierr.Append(err, checkPercentages("directional_light.intensity", c.DirectionalLight.Intensity))
	return err
}

func inCycle(v, cycleLength float32) bool {
	return v >= 0 && v <= cycleLength
}

func checkPercentages(name string, tl timeline.Timeline[float32]) error {
	for _, k := range tl {
		if k.Percentage < 0 || k.Percentage > 100 {
			return fmt.Errorf("%s: keyframe at %g%% outside [0, 100]", name, k.Percentage)
		}
	}
	return nil
}
