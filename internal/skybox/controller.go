package skybox

import (
	"errors"
	"fmt"

	"SkyCycle/internal/cycle"
	"SkyCycle/internal/renderer"

	"go.uber.org/zap"
)

// ErrConfigurationNotFound is returned by a ConfigurationSource that has no
// configuration for the requested id.
var ErrConfigurationNotFound = errors.New("skybox configuration not found")

// ConfigurationSource resolves configuration ids.
type ConfigurationSource interface {
	Configuration(id string) (*Configuration, error)
}

// EventHandler receives timeline events emitted during a tick.
type EventHandler func(TimelineEvent)

// Controller runs the sky cycle: it advances the clock every tick, applies the
// loaded configuration and reports timeline events.
type Controller struct {
	log       *zap.Logger
	clock     *cycle.Clock
	source    ConfigurationSource
	material  PropertySink
	env       Environment
	slotCount int
	onEvent   EventHandler

	configuration *Configuration
	loadedConfig  string
	lastSlots     []SlotState
}

type ControllerOptions struct {
	Logger    *zap.Logger
	Clock     *cycle.Clock
	Source    ConfigurationSource
	Material  PropertySink
	Env       Environment
	SlotCount int
	OnEvent   EventHandler
}

func NewController(opts ControllerOptions) *Controller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = cycle.NewClock(DefaultCycleLength, 2)
	}
	if opts.Material == nil {
		opts.Material = renderer.NewMaterialProperties("skybox")
	}
	if opts.SlotCount <= 0 {
		opts.SlotCount = DefaultSlotCount
	}
	return &Controller{
		log:       opts.Logger,
		clock:     opts.Clock,
		source:    opts.Source,
		material:  opts.Material,
		env:       opts.Env,
		slotCount: opts.SlotCount,
		onEvent:   opts.OnEvent,
	}
}

func (sc *Controller) Clock() *cycle.Clock           { return sc.clock }
func (sc *Controller) Configuration() *Configuration { return sc.configuration }
func (sc *Controller) LoadedConfig() string          { return sc.loadedConfig }
func (sc *Controller) SlotCount() int                { return sc.slotCount }
func (sc *Controller) Slots() []SlotState            { return sc.lastSlots }

// Load selects the configuration with the given id, falling back to
// DefaultSkyboxID. The material is reset for the new configuration. When
// neither can be loaded the previous configuration stays in place.
func (sc *Controller) Load(id string) error {
	if id == "" {
		id = DefaultSkyboxID
	}
	if id == sc.loadedConfig && sc.configuration != nil {
		return nil
	}
	if sc.source == nil {
		return fmt.Errorf("load %q: no configuration source", id)
	}

	cfg, err := sc.source.Configuration(id)
	if err != nil && id != DefaultSkyboxID {
		sc.log.Warn("Skybox configuration missing, trying default",
			zap.String("requested", id),
			zap.String("default", DefaultSkyboxID),
			zap.Error(err))
		id = DefaultSkyboxID
		cfg, err = sc.source.Configuration(id)
	}
	if err != nil {
		return fmt.Errorf("load skybox configuration %q: %w", id, err)
	}

	sc.SetConfiguration(cfg)
	sc.loadedConfig = id
	return nil
}

// SetConfiguration installs cfg directly and resets the material.
func (sc *Controller) SetConfiguration(cfg *Configuration) {
	sc.configuration = cfg
	if cfg != nil {
		sc.loadedConfig = cfg.ID
	}
	ResetMaterial(sc.material, sc.slotCount)
	if sc.env.Sun != nil && cfg != nil && !cfg.UseDirectionalLight {
		sc.env.Sun.Active = false
	}
	sc.log.Info("Skybox configuration applied",
		zap.String("id", sc.loadedConfig),
		zap.Int("slots", sc.slotCount))
}

func (sc *Controller) Start() {
	sc.log.Debug("Skybox controller started",
		zap.Float32("timeOfDay", sc.clock.TimeOfDay()),
		zap.Float32("lifecycleMinutes", sc.clock.LifecycleDuration()))
}

// Update advances the cycle by dt seconds and applies the configuration.
// Nothing happens while paused or before a configuration is loaded.
func (sc *Controller) Update(dt float64) {
	if sc.configuration == nil || sc.clock.Paused() {
		return
	}

	sc.clock.Advance(dt)
	sc.apply()

	if sc.clock.Wrap() {
		ResetCycle(sc.configuration.TimelineTags)
		sc.log.Debug("Skybox cycle reset", zap.String("id", sc.loadedConfig))
	}
}

// PauseTime stops the cycle. With override the clock jumps to newTime and the
// configuration is applied once at that time.
func (sc *Controller) PauseTime(override bool, newTime float32) {
	if !override {
		sc.clock.Pause()
		return
	}
	sc.clock.PauseAt(newTime)
	if sc.configuration != nil {
		sc.apply()
	}
}

// ResumeTime restarts the cycle, optionally from newTime.
func (sc *Controller) ResumeTime(override bool, newTime float32) {
	if override {
		sc.clock.ResumeAt(newTime)
		return
	}
	sc.clock.Resume()
}

func (sc *Controller) apply() {
	cfg := sc.configuration
	dayTime := sc.clock.TimeOfDay()
	cycleLength := sc.clock.CycleLength()

	frame := cfg.Apply(sc.material, sc.env, dayTime, sc.clock.Normalized(), sc.slotCount, cycleLength)
	sc.lastSlots = frame.Slots

	for _, ev := range frame.Events {
		sc.log.Debug("Timeline event",
			zap.String("tag", ev.Tag),
			zap.Bool("enable", ev.Enable),
			zap.Bool("trigger", ev.Trigger),
			zap.Float32("timeOfDay", dayTime))
		if sc.onEvent != nil {
			sc.onEvent(ev)
		}
	}
}
