package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"golang.org/x/image/font/basicfont"
)

type RenderSystem struct {
	face text.Face
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	view, hasView := mainCamera(w)

	entities := ecs.Query(w, component.TransformComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		screenSpace := ecs.Has(w, e, component.ScreenSpaceComponent.Kind())
		if !screenSpace && !hasView {
			continue
		}

		x, y, scale := t.X, t.Y, 1.0
		if !screenSpace {
			x, y = view.WorldToScreen(t.Position())
			scale = view.PixelsPerUnit()
		}

		if shape, ok := ecs.Get(w, e, component.ShapeComponent.Kind()); ok {
			r.drawShape(screen, shape, x, y, scale)
		}
		if txt, ok := ecs.Get(w, e, component.TextComponent.Kind()); ok && txt.Value != "" {
			r.drawText(screen, txt, x, y)
		}
	}
}

func (r *RenderSystem) drawShape(screen *ebiten.Image, shape *component.Shape, x, y, scale float64) {
	switch shape.Kind {
	case component.ShapeCircle:
		vector.FillCircle(screen, float32(x), float32(y), float32(shape.Radius*scale), shape.Color, true)
	case component.ShapeRect:
		sw := shape.Width * scale
		sh := shape.Height * scale
		vector.FillRect(screen, float32(x-sw/2), float32(y-sh/2), float32(sw), float32(sh), shape.Color, false)
	}
}

func (r *RenderSystem) drawText(screen *ebiten.Image, txt *component.Text, x, y float64) {
	size := txt.Size
	if size <= 0 {
		size = 1
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(txt.Color)
	text.Draw(screen, txt.Value, r.face, op)
}

