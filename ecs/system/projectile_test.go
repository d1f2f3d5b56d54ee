package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"github.com/milk9111/bulletboss/ecs/entity"
	"github.com/milk9111/bulletboss/prefabs"
)

func newArena(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.NewClock(w); err != nil {
		t.Fatal(err)
	}
	if _, err := entity.NewCamera(w, &prefabs.CameraSpec{HalfHeight: 8}); err != nil {
		t.Fatal(err)
	}
	return w
}

func spawn(t *testing.T, w *ecs.World, tmpl component.ProjectileTemplate, pos cp.Vector, rotation float64) ecs.Entity {
	t.Helper()
	e, err := entity.SpawnProjectile(w, tmpl, pos, rotation)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestProjectileMovesAlongLocalUp(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		want     cp.Vector
	}{
		{"up", 0, cp.Vector{X: 0, Y: 5.0 / 60}},
		{"left", math.Pi / 2, cp.Vector{X: -5.0 / 60, Y: 0}},
		{"down", math.Pi, cp.Vector{X: 0, Y: -5.0 / 60}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newArena(t)
			e := spawn(t, w, component.ProjectileTemplate{Class: component.ProjectileSmall, Speed: 5}, cp.Vector{}, tc.rotation)

			s := ecs.NewScheduler(NewClockSystem(60), NewProjectileSystem())
			s.Update(w)

			tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok {
				t.Fatal("transform missing")
			}
			if got := tr.Position(); got.Distance(tc.want) > epsilon {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestOffscreenDespawn(t *testing.T) {
	tmpl := component.ProjectileTemplate{Class: component.ProjectileMedium, Radius: 0.25}

	t.Run("destroyed_after_leaving_view", func(t *testing.T) {
		w := newArena(t)
		e := spawn(t, w, tmpl, cp.Vector{}, 0)
		s := ecs.NewScheduler(NewCameraSystem(nil), NewOffscreenDespawnSystem())

		s.Update(w)
		if !ecs.IsAlive(w, e) {
			t.Fatal("visible projectile was destroyed")
		}
		d, _ := ecs.Get(w, e, component.OffscreenDespawnComponent.Kind())
		if !d.Visible {
			t.Fatal("expected projectile to be marked visible")
		}

		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		tr.Y = 8.2
		s.Update(w)
		if !ecs.IsAlive(w, e) {
			t.Fatal("projectile overlapping the top edge should survive")
		}

		tr.Y = 9
		s.Update(w)
		if ecs.IsAlive(w, e) {
			t.Fatal("projectile outside the view should be destroyed")
		}
	})

	t.Run("never_visible_is_kept", func(t *testing.T) {
		w := newArena(t)
		e := spawn(t, w, tmpl, cp.Vector{X: 40}, 0)
		s := ecs.NewScheduler(NewCameraSystem(nil), NewOffscreenDespawnSystem())

		for i := 0; i < 10; i++ {
			s.Update(w)
		}
		if !ecs.IsAlive(w, e) {
			t.Fatal("projectile that was never seen should not be destroyed")
		}
	})

	t.Run("no_camera_keeps_everything", func(t *testing.T) {
		w := ecs.NewWorld()
		e := spawn(t, w, tmpl, cp.Vector{X: 40}, 0)
		NewOffscreenDespawnSystem().Update(w)
		if !ecs.IsAlive(w, e) {
			t.Fatal("projectile destroyed without a camera")
		}
	})
}

func TestTTLSystem(t *testing.T) {
	tests := []struct {
		name       string
		frames     int
		aliveAfter int
	}{
		{"expires_after_frames", 3, 2},
		{"zero_expires_immediately", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: tc.frames}); err != nil {
				t.Fatal(err)
			}

			s := NewTTLSystem()
			for i := 0; i < tc.aliveAfter; i++ {
				s.Update(w)
				if !ecs.IsAlive(w, e) {
					t.Fatalf("destroyed early at update %d", i+1)
				}
			}
			s.Update(w)
			if ecs.IsAlive(w, e) {
				t.Fatal("expected entity to be destroyed")
			}
		})
	}
}

func TestProjectileTTLSafetyNet(t *testing.T) {
	w := newArena(t)
	e := spawn(t, w, component.ProjectileTemplate{Class: component.ProjectileBig, Radius: 0.45, TTLFrames: 2}, cp.Vector{X: 40}, 0)

	s := ecs.NewScheduler(NewCameraSystem(nil), NewOffscreenDespawnSystem(), NewTTLSystem())
	s.Update(w)
	s.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatal("unseen projectile should be reclaimed by its ttl")
	}
}
