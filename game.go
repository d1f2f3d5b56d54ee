package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bulletboss/common"
	"github.com/milk9111/bulletboss/config"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/entity"
	"github.com/milk9111/bulletboss/ecs/system"
	"github.com/milk9111/bulletboss/prefabs"
)

var backgroundColor = color.NRGBA{R: 0x10, G: 0x0e, B: 0x1a, A: 0xff}

type Game struct {
	cfg config.Config

	world     *ecs.World
	scene     *entity.Scene
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	audio     *system.AudioSystem
	debug     *system.DebugSystem

	paused  bool
	quit    bool
	pause   *PauseMenu
	watcher *prefabs.Watcher
}

func NewGame(cfg config.Config) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		render: system.NewRenderSystem(),
		audio:  system.NewAudioSystem(cfg.Volume),
	}
	if cfg.Debug {
		g.debug = system.NewDebugSystem()
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	g.pause = NewPauseMenu(g)

	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("game: prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reset rebuilds the arena from the prefabs, discarding every live entity.
func (g *Game) reset() error {
	world := ecs.NewWorld()
	scene, err := entity.LoadScene(world)
	if err != nil {
		return fmt.Errorf("game: load scene: %w", err)
	}

	scheduler := ecs.NewScheduler(
		system.NewClockSystem(g.cfg.TPS),
		system.NewCameraSystem(nil),
		system.NewBossSystem(),
		system.NewProjectileSystem(),
		system.NewOffscreenDespawnSystem(),
		system.NewTTLSystem(),
		system.NewBulletCounterSystem(),
		g.audio,
	)
	if g.debug != nil {
		scheduler.Add(g.debug)
	}

	g.world = world
	g.scene = scene
	g.scheduler = scheduler
	log.Printf("game: scene ready boss=%s counter=%s", scene.Boss, scene.Counter)
	return nil
}

func (g *Game) restart() {
	if err := g.reset(); err != nil {
		log.Printf("game: restart: %v", err)
		return
	}
	g.paused = false
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			g.pause.SetStatus(system.TakeSnapshot(g.world))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}

	if g.paused {
		g.pause.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case changed, ok := <-g.watcher.Changes:
		if !ok {
			g.watcher = nil
			return
		}
		log.Printf("game: %s changed, reloading scene", strings.Join(changed, ", "))
		g.restart()
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: prefab watch: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.render.Draw(g.world, screen)
	if g.debug != nil {
		g.debug.Draw(screen)
	}
	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close prefab watcher: %v", err)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
