package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"SkyCycle/internal/config"
	"SkyCycle/internal/cycle"
	"SkyCycle/internal/engine"
	"SkyCycle/internal/loader"
	"SkyCycle/internal/logger"
	"SkyCycle/internal/renderer"
	"SkyCycle/internal/skybox"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "runtime.yaml", "runtime settings file")
		skyboxID   = flag.String("skybox", "", "skybox configuration id, overrides config_to_load")
		frames     = flag.Int("frames", 0, "frames to run; 0 runs one full cycle (or until interrupted with -realtime)")
		at         = flag.Float64("at", -1, "print the sky at this hour and exit")
		realtime   = flag.Bool("realtime", false, "tick on wall-clock time instead of simulating")
		list       = flag.Bool("list", false, "list available skybox configurations")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	logger.Init()

	cfg := config.Default()
	if path := findAsset(*configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.Log.Fatal("Could not load runtime settings", zap.String("path", path), zap.Error(err))
		}
		cfg = *loaded
	}
	if *skyboxID != "" {
		cfg.ConfigToLoad = *skyboxID
	}
	cfg.Debug = cfg.Debug || *debug
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("Invalid runtime settings", zap.Error(err))
	}
	logger.SetDebug(cfg.Debug)
	defer logger.Log.Sync()

	configDir := findAsset(cfg.ConfigDir)
	if configDir == "" {
		configDir = cfg.ConfigDir
	}
	dir := loader.NewDirectory(configDir, cfg.CycleTime, logger.Log.Named("loader"))

	if *list {
		ids, err := dir.List()
		if err != nil {
			logger.Log.Fatal("Could not list configurations", zap.String("dir", configDir), zap.Error(err))
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	gameEngine := engine.NewEngine(logger.Log.Named("engine"), cfg.FPS)
	gameEngine.Light = renderer.CreateDirectionalLight(mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1}, 1)
	material := renderer.NewMaterialProperties("skybox")
	gameEngine.Settings.Skybox = material.Name
	globals := renderer.NewMaterialProperties("globals")

	clock := cycle.NewClock(cfg.CycleTime, cfg.LifecycleDuration)
	if cfg.UseServerTime {
		clock.SyncWithServerTime(time.Now())
	}

	sky := skybox.NewController(skybox.ControllerOptions{
		Logger:    logger.Log.Named("skybox"),
		Clock:     clock,
		Source:    dir,
		Material:  material,
		SlotCount: cfg.SlotCount,
		Env: skybox.Environment{
			Settings: &gameEngine.Settings,
			Globals:  globals,
			Sun:      gameEngine.Light,
		},
		OnEvent: func(ev skybox.TimelineEvent) {
			fmt.Printf("%6.2fh  event %-16s enable=%t trigger=%t\n", clock.TimeOfDay(), ev.Tag, ev.Enable, ev.Trigger)
		},
	})
	if err := sky.Load(cfg.ConfigToLoad); err != nil {
		logger.Log.Fatal("No skybox configuration", zap.Error(err))
	}

	if *at >= 0 {
		sky.PauseTime(true, float32(*at))
		printSky(os.Stdout, sky, gameEngine)
		return
	}
	if cfg.Paused() {
		sky.PauseTime(true, cfg.FixedTime)
	}

	gameEngine.Behaviours.Add(sky)
	lastHour := -1
	gameEngine.SetOnFrameCallback(func(frame int, deltaTime float64) {
		if hour := int(clock.TimeOfDay()); hour != lastHour {
			lastHour = hour
			printSky(os.Stdout, sky, gameEngine)
		}
	})

	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := gameEngine.Run(ctx, *frames); err != nil && ctx.Err() == nil {
			logger.Log.Error("Engine stopped", zap.Error(err))
		}
	} else {
		n := *frames
		if n <= 0 {
			n = cfg.CycleFrames()
		}
		gameEngine.Simulate(n)
	}
	printSky(os.Stdout, sky, gameEngine)
}

func printSky(w io.Writer, sky *skybox.Controller, e *engine.Engine) {
	fmt.Fprintf(w, "%6.2fh  %s", sky.Clock().TimeOfDay(), sky.LoadedConfig())
	if sun := e.Light; sun != nil && sun.Active {
		rot, dir := sun.EulerAngles(), sun.Direction()
		fmt.Fprintf(w, "  sun %.2f @ (%.0f, %.0f, %.0f) dir (%.2f, %.2f, %.2f)",
			sun.Intensity, rot[0], rot[1], rot[2], dir[0], dir[1], dir[2])
	}
	if e.Settings.Fog {
		fmt.Fprintf(w, "  fog %s", e.Settings.FogMode)
	}
	fmt.Fprintln(w)

	for _, st := range sky.Slots() {
		if !st.Active() {
			fmt.Fprintf(w, "        slot %d  -\n", st.Slot)
			continue
		}
		fmt.Fprintf(w, "        slot %d  %-20s %-20s fade %.2f\n", st.Slot, st.Layer.Name, st.Layer.RenderType, st.Fade)
	}
}

// findAsset looks for name next to the executable, then in the working directory.
func findAsset(name string) string {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err == nil {
			return name
		}
		return ""
	}
	exePath, _ := os.Executable()
	exeDir := filepath.Dir(exePath)

	paths := []string{
		filepath.Join(exeDir, name),
		name,
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
