package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProjectionRoundTrip(t *testing.T) {
	p := Projection{CenterX: 2, CenterY: -1, HalfHeight: 8, ScreenW: 1280, ScreenH: 720}

	cases := []struct {
		name string
		v    cp.Vector
	}{
		{"center", cp.Vector{X: 2, Y: -1}},
		{"top_right", cp.Vector{X: 10, Y: 7}},
		{"negative", cp.Vector{X: -5.5, Y: -3.25}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sx, sy := p.WorldToScreen(c.v)
			got := p.ScreenToWorld(sx, sy)
			if !near(got.X, c.v.X) || !near(got.Y, c.v.Y) {
				t.Fatalf("round trip %v -> (%v,%v) -> %v", c.v, sx, sy, got)
			}
		})
	}
}

func TestProjectionScreenCenterIsCameraCenter(t *testing.T) {
	p := Projection{CenterX: 0, CenterY: 0, HalfHeight: 8, ScreenW: 1280, ScreenH: 720}
	got := p.ScreenToWorld(640, 360)
	if !near(got.X, 0) || !near(got.Y, 0) {
		t.Fatalf("expected origin, got %v", got)
	}
	// Y-up world: a point above the center lands above the screen midline.
	_, sy := p.WorldToScreen(cp.Vector{X: 0, Y: 1})
	if sy >= 360 {
		t.Fatalf("expected y above midline, got %v", sy)
	}
}

func TestProjectionBounds(t *testing.T) {
	p := Projection{HalfHeight: 8, ScreenW: 1280, ScreenH: 720}
	bb := p.Bounds()
	wantHalfW := 8 * 1280.0 / 720.0
	if !near(bb.T, 8) || !near(bb.B, -8) || !near(bb.R, wantHalfW) || !near(bb.L, -wantHalfW) {
		t.Fatalf("unexpected bounds %v", bb)
	}
	if !bb.ContainsVect(cp.Vector{X: 0, Y: 6.5}) {
		t.Fatalf("expected boss anchor to be visible")
	}
}

func TestUpFromRotation(t *testing.T) {
	cases := []struct {
		name string
		deg  float64
		want cp.Vector
	}{
		{"zero_is_up", 0, cp.Vector{X: 0, Y: 1}},
		{"ninety_is_left", 90, cp.Vector{X: -1, Y: 0}},
		{"half_turn_is_down", 180, cp.Vector{X: 0, Y: -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := UpFromRotation(DegToRad(c.deg))
			if !near(got.X, c.want.X) || !near(got.Y, c.want.Y) {
				t.Fatalf("got %v want %v", got, c.want)
			}
		})
	}
}

func TestMoveTowards(t *testing.T) {
	from := cp.Vector{X: 0, Y: 0}
	to := cp.Vector{X: 3, Y: 4}

	step := MoveTowards(from, to, 1)
	if !near(step.Length(), 1) {
		t.Fatalf("expected unit step, got %v", step)
	}
	if got := MoveTowards(from, to, 10); !near(got.X, 3) || !near(got.Y, 4) {
		t.Fatalf("expected to land on target without overshoot, got %v", got)
	}
	if got := MoveTowards(from, to, 0); got != from {
		t.Fatalf("zero step should not move, got %v", got)
	}
}
