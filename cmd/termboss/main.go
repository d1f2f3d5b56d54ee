// Command termboss runs the boss encounter in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bulletboss/common"
	"github.com/milk9111/bulletboss/config"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"github.com/milk9111/bulletboss/ecs/entity"
	"github.com/milk9111/bulletboss/ecs/system"
	"github.com/milk9111/bulletboss/prefabs"
)

const sampleRate = beep.SampleRate(44100)

var glyphs = map[component.ProjectileClass]struct {
	r     rune
	color tcell.Color
}{
	component.ProjectileSmall:  {'·', tcell.ColorYellow},
	component.ProjectileMedium: {'o', tcell.ColorAqua},
	component.ProjectileBig:    {'@', tcell.ColorFuchsia},
}

type termGame struct {
	screen        tcell.Screen
	width, height int

	world     *ecs.World
	scheduler *ecs.Scheduler

	watcher   *prefabs.Watcher
	audioInit bool
	volume    float64
	tones     map[component.ProjectileClass]float64
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	g, err := newTermGame(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	g.run(time.Second / time.Duration(cfg.TPS))
}

func newTermGame(cfg config.Config) (*termGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &termGame{
		screen: screen,
		volume: cfg.Volume,
		tones: map[component.ProjectileClass]float64{
			component.ProjectileSmall:  880,
			component.ProjectileMedium: 660,
			component.ProjectileBig:    330,
		},
	}
	g.width, g.height = screen.Size()

	if err := g.reset(cfg.TPS); err != nil {
		screen.Fini()
		return nil, err
	}

	if cfg.Watch {
		if w, err := prefabs.NewWatcher(prefabs.Dir); err != nil {
			log.Printf("termboss: prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if cfg.Volume > 0 {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			log.Printf("termboss: audio disabled: %v", err)
		} else {
			g.audioInit = true
		}
	}
	return g, nil
}

func (g *termGame) reset(tps int) error {
	world := ecs.NewWorld()
	if _, err := entity.LoadScene(world); err != nil {
		return fmt.Errorf("termboss: load scene: %w", err)
	}

	// Cells are about twice as tall as they are wide, so the camera sees
	// twice as many rows as the terminal has.
	screenSize := func() (float64, float64) {
		return float64(g.width), float64(g.height * 2)
	}

	g.world = world
	g.scheduler = ecs.NewScheduler(
		system.NewClockSystem(tps),
		system.NewCameraSystem(screenSize),
		system.NewBossSystem(),
		system.NewProjectileSystem(),
		system.NewOffscreenDespawnSystem(),
		system.NewTTLSystem(),
		system.NewBulletCounterSystem(),
		ecs.SystemFunc(g.playVolleys),
	)
	return nil
}

func (g *termGame) run(frame time.Duration) {
	defer g.screen.Fini()
	if g.watcher != nil {
		defer g.watcher.Close()
	}

	tps := int(time.Second / frame)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var changes <-chan []string
	if g.watcher != nil {
		changes = g.watcher.Changes
	}

	for {
		select {
		case changed, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			log.Printf("termboss: %s changed, reloading scene", strings.Join(changed, ", "))
			if err := g.reset(tps); err != nil {
				log.Printf("termboss: reload: %v", err)
			}
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
					if err := g.reset(tps); err != nil {
						log.Printf("termboss: restart: %v", err)
					}
				}
			case *tcell.EventResize:
				g.width, g.height = g.screen.Size()
				g.screen.Sync()
			}
		case <-ticker.C:
			g.scheduler.Update(g.world)
			g.draw()
		}
	}
}

func (g *termGame) playVolleys(w *ecs.World) {
	if !g.audioInit {
		return
	}
	for _, volley := range ecs.Collect[component.VolleyFired](w.Events(), component.VolleyFiredEvent) {
		sine, err := generators.SineTone(sampleRate, g.tones[volley.Class])
		if err != nil {
			log.Printf("termboss: tone: %v", err)
			continue
		}
		speaker.Play(&effects.Volume{
			Streamer: beep.Take(sampleRate.N(40*time.Millisecond), sine),
			Base:     2,
			Volume:   math.Log2(g.volume),
		})
	}
}

func (g *termGame) draw() {
	g.screen.Clear()

	view, ok := cameraView(g.world)
	if !ok {
		g.screen.Show()
		return
	}

	cell := func(v cp.Vector) (int, int) {
		sx, sy := view.WorldToScreen(v)
		return int(sx), int(sy / 2)
	}

	ecs.ForEach2(g.world, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Boss, t *component.Transform) {
		x, y := cell(t.Position())
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		for dx := -2; dx <= 2; dx++ {
			g.screen.SetContent(x+dx, y, '█', nil, style)
		}
	})

	ecs.ForEach2(g.world, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, t *component.Transform) {
		glyph, ok := glyphs[p.Class]
		if !ok {
			return
		}
		x, y := cell(t.Position())
		if x < 0 || y < 0 || x >= g.width || y >= g.height {
			return
		}
		g.screen.SetContent(x, y, glyph.r, nil, tcell.StyleDefault.Foreground(glyph.color))
	})

	ecs.ForEach2(g.world, component.HUDTagComponent.Kind(), component.TextComponent.Kind(), func(_ ecs.Entity, _ *component.HUDTag, txt *component.Text) {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		for i, r := range txt.Value {
			g.screen.SetContent(1+i, 0, r, nil, style)
		}
	})

	g.screen.Show()
}

func cameraView(w *ecs.World) (common.Projection, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return common.Projection{}, false
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok || !cam.View.Ready() {
		return common.Projection{}, false
	}
	return cam.View, true
}
