package common

import "github.com/jakecoffman/cp"

// Projection maps a Y-up world onto a Y-down screen through an orthographic
// camera centered on (CenterX, CenterY).
type Projection struct {
	CenterX    float64
	CenterY    float64
	HalfHeight float64
	ScreenW    float64
	ScreenH    float64
}

// PixelsPerUnit returns how many screen pixels one world unit covers.
func (p Projection) PixelsPerUnit() float64 {
	if p.HalfHeight <= 0 || p.ScreenH <= 0 {
		return 1
	}
	return p.ScreenH / (2 * p.HalfHeight)
}

func (p Projection) WorldToScreen(v cp.Vector) (float64, float64) {
	ppu := p.PixelsPerUnit()
	return p.ScreenW/2 + (v.X-p.CenterX)*ppu, p.ScreenH/2 - (v.Y-p.CenterY)*ppu
}

func (p Projection) ScreenToWorld(sx, sy float64) cp.Vector {
	ppu := p.PixelsPerUnit()
	return cp.Vector{
		X: p.CenterX + (sx-p.ScreenW/2)/ppu,
		Y: p.CenterY - (sy-p.ScreenH/2)/ppu,
	}
}

// Bounds returns the visible world rectangle.
func (p Projection) Bounds() cp.BB {
	halfW := p.HalfHeight
	if p.ScreenH > 0 {
		halfW = p.HalfHeight * p.ScreenW / p.ScreenH
	}
	return cp.NewBBForExtents(cp.Vector{X: p.CenterX, Y: p.CenterY}, halfW, p.HalfHeight)
}

// Ready reports whether the projection has been computed for a real screen.
func (p Projection) Ready() bool {
	return p.HalfHeight > 0 && p.ScreenW > 0 && p.ScreenH > 0
}
