package engine

import (
	"context"
	"time"

	behaviour "SkyCycle/internal/behaviour"
	"SkyCycle/internal/renderer"

	"go.uber.org/zap"
)

const defaultFPS = 60

// fixedEvery is the number of frames between fixed updates.
const fixedEvery = 3

// Engine is a headless frame loop. It owns the scene state the sky drives
// (the sun and the render settings) and ticks its behaviours once per frame.
type Engine struct {
	FPS        int
	Light      *renderer.Light
	Settings   renderer.RenderSettings
	Behaviours *behaviour.BehaviourManager

	log             *zap.Logger
	frame           int
	frameTrackId    int
	onFrameCallback func(frame int, deltaTime float64)
}

func NewEngine(log *zap.Logger, fps int) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if fps <= 0 {
		fps = defaultFPS
	}
	return &Engine{
		FPS:        fps,
		Settings:   renderer.DefaultRenderSettings(),
		Behaviours: behaviour.NewBehaviourManager(),
		log:        log,
	}
}

// SetOnFrameCallback sets a callback that runs after every frame's behaviours.
func (e *Engine) SetOnFrameCallback(callback func(frame int, deltaTime float64)) {
	e.onFrameCallback = callback
}

// Frame returns how many frames have been stepped.
func (e *Engine) Frame() int {
	return e.frame
}

// Step runs one frame with the given delta in seconds.
func (e *Engine) Step(deltaTime float64) {
	if e.frameTrackId >= fixedEvery-1 {
		e.Behaviours.UpdateAllFixed()
		e.frameTrackId = 0
	} else {
		e.frameTrackId++
	}
	e.Behaviours.UpdateAll(deltaTime)

	e.frame++
	if e.onFrameCallback != nil {
		e.onFrameCallback(e.frame, deltaTime)
	}
}

// Simulate steps frames times with a constant delta of one frame at FPS,
// without waiting on wall-clock time.
func (e *Engine) Simulate(frames int) {
	dt := 1 / float64(e.FPS)
	for i := 0; i < frames; i++ {
		e.Step(dt)
	}
}

// Run ticks at FPS using measured frame deltas until ctx is done or, when
// frames is positive, until that many frames have run.
func (e *Engine) Run(ctx context.Context, frames int) error {
	refreshRate := time.Second / time.Duration(e.FPS)
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	e.log.Info("Engine loop started",
		zap.Int("fps", e.FPS),
		zap.Int("frames", frames))

	lastTime := time.Now()
	for ran := 0; frames <= 0 || ran < frames; ran++ {
		select {
		case <-ctx.Done():
			e.log.Info("Engine loop stopped", zap.Int("frame", e.frame), zap.Error(ctx.Err()))
			return ctx.Err()
		case now := <-ticker.C:
			deltaTime := now.Sub(lastTime).Seconds()
			lastTime = now
			e.Step(deltaTime)
		}
	}

	e.log.Info("Engine loop finished", zap.Int("frame", e.frame))
	return nil
}
