package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bulletboss/ecs"
	"golang.design/x/clipboard"
)

// DebugSystem draws the encounter state and, when a clipboard is available,
// copies a YAML snapshot on F2.
type DebugSystem struct {
	clipboard bool
	last      Snapshot
}

// NewDebugSystem initializes the system clipboard; the overlay still works
// without one.
func NewDebugSystem() *DebugSystem {
	d := &DebugSystem{}
	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
	} else {
		d.clipboard = true
	}
	return d
}

func (d *DebugSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	d.last = TakeSnapshot(w)
	if !d.clipboard || !inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		return
	}

	data, err := d.last.YAML()
	if err != nil {
		log.Printf("debug: marshal snapshot: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("debug: copied snapshot of frame %d", d.last.Frame)
}

func (d *DebugSystem) Draw(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f  frame: %d  t: %.2fs\n", ebiten.ActualFPS(), ebiten.ActualTPS(), d.last.Frame, d.last.Elapsed)
	for _, boss := range d.last.Bosses {
		state := boss.Mode
		if boss.Finished {
			state = "finished"
		}
		fmt.Fprintf(&b, "boss %d: %s  mode %.1fs  total %.1fs  volleys %d\n", boss.Entity, state, boss.ModeTime, boss.TotalTime, boss.Volleys)
	}
	fmt.Fprintf(&b, "small %d  medium %d  big %d\n", d.last.Bullets.Small, d.last.Bullets.Medium, d.last.Bullets.Big)
	if d.clipboard {
		b.WriteString("F2: copy snapshot")
	}

	h := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, b.String(), 8, h-80)
}
