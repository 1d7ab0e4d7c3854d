package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"reflect"
	"runtime"
	"syscall"
	"time"

	"backdrop/internal/app"
	"backdrop/internal/config"
	"backdrop/internal/debug"
	"backdrop/internal/env"
	"backdrop/internal/fonts"
	"backdrop/internal/graphics"
	"backdrop/internal/logger"
	"backdrop/internal/panel"
	"backdrop/internal/render"
	"backdrop/internal/ui"
)

func init() {
	// raylib and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "backdrop:", err)
		os.Exit(1)
	}
}

func run() error {
	envPath := flag.String("env", ".env", "dotenv file to load before reading BACKDROP_* variables")
	configPath := flag.String("config", "", "scene config file (default BACKDROP_CONFIG or "+config.DefaultPath+")")
	logPath := flag.String("log", "", "log file (default BACKDROP_LOG or "+logger.DefaultPath+")")
	save := flag.Bool("save", false, "write panel edits back to the config file on exit")
	flag.Parse()

	if err := env.Load(*envPath); err != nil {
		return err
	}
	settings := env.FromEnviron()
	cfgPath := firstNonEmpty(*configPath, settings.ConfigPath, config.DefaultPath)
	log := logger.New(firstNonEmpty(*logPath, settings.LogPath, logger.DefaultPath))

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Logf("config: %v; using defaults", err)
	}
	loaded := config.Clone(cfg)

	win, err := graphics.Open(graphics.Options{Width: settings.Width, Height: settings.Height, Title: settings.Title})
	if err != nil {
		return err
	}
	defer win.Close()

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	renderer := render.New(log)
	a := app.New(app.Options{
		Config:   &cfg,
		Host:     win,
		Renderer: renderer,
		Rand:     rand.New(rand.NewSource(seed)),
		Log:      log,
		Theme:    panel.DefaultTheme(),
	})
	defer a.Close()

	painter := ui.New(a.Panel)
	defer painter.Close()
	if _, path, err := fonts.FindFont(settings.Font); err == nil {
		if err := painter.LoadFont(path); err != nil {
			log.Logf("fonts: %s: %v", path, err)
		}
	}
	overlay := debug.New()
	overlay.ShowFPS = cfg.Debug.ShowFPS
	overlay.ShowMemAlloc = cfg.Debug.ShowMem
	overlay.SetFont(painter.Font())
	overlay.SetStats(func() string {
		st := a.Stats()
		return fmt.Sprintf("t=%.1fs frames=%d triangles=%d", st.Elapsed, st.Frames, st.Triangles)
	})
	renderer.AddOverlay(painter)
	renderer.AddOverlay(overlay)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runErr := a.Run(ctx)

	if *save && !reflect.DeepEqual(loaded, cfg) {
		if err := config.Save(cfgPath, cfg); err != nil {
			log.Logf("config: %v", err)
		} else {
			log.Logf("config: saved %s", cfgPath)
		}
	}
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
