package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"SkyCycle/internal/renderer"
	"SkyCycle/internal/skybox"
	"SkyCycle/internal/timeline"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const configurationExt = ".yaml"

// LoadConfiguration reads and parses one skybox configuration file.
func LoadConfiguration(path string) (*skybox.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfiguration(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfiguration decodes a YAML skybox configuration. Unknown keys are rejected.
func ParseConfiguration(data []byte) (*skybox.Configuration, error) {
	var doc configurationDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode skybox configuration: %w", err)
	}
	return doc.build()
}

func (doc *configurationDoc) build() (*skybox.Configuration, error) {
	cfg := skybox.NewConfiguration(doc.ID)
	var err error

	cfg.SkyColor = parseGradient("sky_color", doc.SkyColor, &err)
	cfg.HorizonColor = parseGradient("horizon_color", doc.HorizonColor, &err)
	cfg.GroundColor = parseGradient("ground_color", doc.GroundColor, &err)

	cfg.HorizonWidth = doc.Horizon.Width
	cfg.HorizonHeight = doc.Horizon.Height
	cfg.HorizonMask = doc.Horizon.Mask
	cfg.HorizonMaskValues = doc.Horizon.MaskValues
	cfg.HorizonPlaneColor = parseGradient("horizon.plane_color", doc.Horizon.PlaneColor, &err)
	cfg.HorizonPlaneHeight = doc.Horizon.PlaneHeight

	if doc.Ambient.Trilight != nil {
		cfg.AmbientTrilight = *doc.Ambient.Trilight
	}
	cfg.AmbientSkyColor = parseGradient("ambient.sky_color", doc.Ambient.SkyColor, &err)
	cfg.AmbientEquatorColor = parseGradient("ambient.equator_color", doc.Ambient.EquatorColor, &err)
	cfg.AmbientGroundColor = parseGradient("ambient.ground_color", doc.Ambient.GroundColor, &err)

	av := doc.Avatar
	setBool(&cfg.UseAvatarGradient, av.UseGradient)
	setBool(&cfg.UseAvatarRealtimeDLDirection, av.RealtimeDirection)
	setBool(&cfg.UseAvatarRealtimeLightColor, av.RealtimeLightColor)
	cfg.AvatarTintGradient = parseGradient("avatar.tint_gradient", av.TintGradient, &err)
	cfg.AvatarLightColorGradient = parseGradient("avatar.light_color_gradient", av.LightColorGradient, &err)
	if av.TintColor != "" {
		c, cerr := colorful.Hex(av.TintColor)
		if cerr != nil {
			err = multierr.Append(err, fmt.Errorf("avatar.tint_color: %w", cerr))
		}
		cfg.AvatarTintColor = mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), 1}
	}
	if av.ConstantDirection != nil {
		cfg.AvatarLightConstantDir = *av.ConstantDirection
	}

	cfg.UseFog = doc.Fog.Enabled
	if doc.Fog.Mode != "" {
		cfg.FogMode = renderer.ParseFogMode(doc.Fog.Mode)
	}
	cfg.FogColor = parseGradient("fog.color", doc.Fog.Color, &err)
	if doc.Fog.Density != nil {
		cfg.FogDensity = *doc.Fog.Density
	}
	cfg.FogStartDistance = doc.Fog.StartDistance
	if doc.Fog.EndDistance != nil {
		cfg.FogEndDistance = *doc.Fog.EndDistance
	}

	dl := doc.DirectionalLight
	setBool(&cfg.UseDirectionalLight, dl.Enabled)
	cfg.DirectionalLight.LightColor = parseGradient("directional_light.color", dl.Color, &err)
	cfg.DirectionalLight.TintColor = parseGradient("directional_light.tint", dl.Tint, &err)
	cfg.DirectionalLight.Intensity = dl.Intensity
	cfg.DirectionalLight.LightDirection = eulerTimeline(dl.Direction)

	for _, sd := range doc.Slots {
		slot := skybox.Slot{SlotID: sd.ID, Name: sd.Name, Enabled: true}
		setBool(&slot.Enabled, sd.Enabled)
		for _, ld := range sd.Layers {
			ld.Slot = sd.ID
			if l := ld.build(&err); l != nil {
				slot.Layers = append(slot.Layers, l)
			}
		}
		cfg.Slots = append(cfg.Slots, slot)
	}
	cfg.FillLayersFromSlots()
	for _, ld := range doc.Layers {
		if l := ld.build(&err); l != nil {
			cfg.Layers = append(cfg.Layers, l)
		}
	}

	for _, td := range doc.TimelineTags {
		cfg.TimelineTags = append(cfg.TimelineTags, &skybox.TimelineTag{
			Tag:       td.Tag,
			StartTime: td.Start,
			EndTime:   td.End,
			IsTrigger: td.Trigger,
		})
	}

	if err != nil {
		return nil, err
	}
	return cfg, nil
}

var movementTypes = map[string]skybox.MovementType{
	"":            skybox.MovementSpeed,
	"speed":       skybox.MovementSpeed,
	"point_based": skybox.MovementPointBased,
}

func (ld layerDoc) build(errp *error) *skybox.Layer {
	l := skybox.NewLayer(ld.Name, ld.Slot, ld.Start, ld.End)
	setBool(&l.Enabled, ld.Enabled)
	l.FadeInTime = ld.FadeIn
	l.FadeOutTime = ld.FadeOut

	if ld.Type != "" {
		lt, ok := skybox.ParseLayerType(strings.ToLower(ld.Type))
		if !ok {
			*errp = multierr.Append(*errp, fmt.Errorf("layer %q: unknown type %q", ld.Name, ld.Type))
			return nil
		}
		l.LayerType = lt
	}
	movement, ok := movementTypes[strings.ToLower(ld.Movement)]
	if !ok {
		*errp = multierr.Append(*errp, fmt.Errorf("layer %q: unknown movement %q", ld.Name, ld.Movement))
		return nil
	}
	switch l.LayerType {
	case skybox.LayerSatellite:
		l.MovementSatellite = movement
	case skybox.LayerCubemap:
		l.MovementCubemap = movement
	default:
		l.MovementPlanarRadial = movement
	}
	copy(l.Speed2[:], ld.Speed)
	copy(l.Speed3[:], ld.Speed)

	l.Texture = ld.Texture
	l.TextureNormal = ld.Normals
	l.Cubemap = ld.Cubemap
	l.Color = parseGradient("layer "+ld.Name+" color", ld.Color, errp)
	if ld.TintPercentage != nil {
		l.TintPercentage = *ld.TintPercentage
	}
	l.NormalIntensity = ld.NormalIntensity

	l.RenderDistance = ld.RenderDistance
	l.Rotation = ld.Rotation
	if ld.Tiling != nil {
		l.Tiling = *ld.Tiling
	}
	l.Offset = ld.Offset
	l.SatelliteSize = ld.SatelliteSize
	l.CubemapRotations = ld.CubemapRotations

	l.DistortIntensity = ld.Distortion.Intensity
	l.DistortSize = ld.Distortion.Size
	l.DistortSpeed = ld.Distortion.Speed
	l.DistortSharpness = ld.Distortion.Sharpness

	if ld.Flipbook.RowsAndColumns != nil {
		l.FlipbookRowsAndColumns = *ld.Flipbook.RowsAndColumns
	}
	l.FlipbookAnimSpeed = ld.Flipbook.AnimSpeed

	p := ld.Particles
	if p.Tiling != nil {
		l.ParticleTiling = *p.Tiling
	}
	l.ParticlesOffset = p.Offset
	l.ParticleRotation = p.Rotation
	l.ParticlesAmount = p.Amount
	l.ParticleMinSize = p.MinSize
	l.ParticleMaxSize = p.MaxSize
	l.ParticlesHorizontalSpread = p.HorizontalSpread
	l.ParticlesVerticalSpread = p.VerticalSpread
	l.ParticleMinFade = p.MinFade
	l.ParticleMaxFade = p.MaxFade
	return l
}

// parseGradient converts a gradient document. Problems are appended to errp and
// the offending key is skipped.
func parseGradient(field string, gd gradientDoc, errp *error) timeline.Gradient {
	var g timeline.Gradient
	switch strings.ToLower(gd.Mode) {
	case "", "blend":
		g.Mode = timeline.GradientBlend
	case "fixed":
		g.Mode = timeline.GradientFixed
	default:
		*errp = multierr.Append(*errp, fmt.Errorf("%s: unknown gradient mode %q", field, gd.Mode))
	}

	if gd.Solid != "" {
		c, err := colorful.Hex(gd.Solid)
		if err != nil {
			*errp = multierr.Append(*errp, fmt.Errorf("%s: %w", field, err))
			return g
		}
		return timeline.SolidGradient(c, 1)
	}

	for _, ck := range gd.Colors {
		c, err := colorful.Hex(ck.Color)
		if err != nil {
			*errp = multierr.Append(*errp, fmt.Errorf("%s: %w", field, err))
			continue
		}
		g.ColorKeys = append(g.ColorKeys, timeline.ColorKey{Color: c, Time: ck.Time})
	}
	for _, ak := range gd.Alphas {
		g.AlphaKeys = append(g.AlphaKeys, timeline.AlphaKey{Alpha: ak.Alpha, Time: ak.Time})
	}
	g.Sort()
	return g
}

func eulerTimeline(tl timeline.Timeline[mgl32.Vec3]) timeline.Timeline[mgl32.Quat] {
	if len(tl) == 0 {
		return nil
	}
	out := make(timeline.Timeline[mgl32.Quat], len(tl))
	for i, k := range tl {
		out[i] = timeline.Keyframe[mgl32.Quat]{Percentage: k.Percentage, Value: renderer.QuatFromEuler(k.Value)}
	}
	return out
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Directory serves configurations stored as <Root>/<id>.yaml.
type Directory struct {
	Root        string
	CycleLength float32
	log         *zap.Logger
}

func NewDirectory(root string, cycleLength float32, log *zap.Logger) *Directory {
	if log == nil {
		log = zap.NewNop()
	}
	if cycleLength <= 0 {
		cycleLength = skybox.DefaultCycleLength
	}
	return &Directory{Root: root, CycleLength: cycleLength, log: log}
}

// Configuration loads the configuration with the given id. A missing file is
// reported as skybox.ErrConfigurationNotFound. Validation problems are logged
// and do not prevent loading.
func (d *Directory) Configuration(id string) (*skybox.Configuration, error) {
	path := filepath.Join(d.Root, id+configurationExt)
	cfg, err := LoadConfiguration(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", skybox.ErrConfigurationNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	if cfg.ID == "" {
		cfg.ID = id
	}

	for _, problem := range multierr.Errors(cfg.Validate(d.CycleLength)) {
		d.log.Warn("Skybox configuration problem",
			zap.String("id", id),
			zap.Error(problem))
	}
	d.log.Debug("Skybox configuration loaded",
		zap.String("id", id),
		zap.String("path", path),
		zap.Int("layers", len(cfg.Layers)))
	return cfg, nil
}

// List returns the ids of every configuration in the directory, sorted.
func (d *Directory) List() ([]string, error) {
	entries, err := os.ReadDir(d.Root)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != configurationExt {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), configurationExt))
	}
	sort.Strings(ids)
	return ids, nil
}
