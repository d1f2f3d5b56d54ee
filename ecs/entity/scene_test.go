package entity

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"github.com/milk9111/bulletboss/prefabs"
)

func TestLoadScene(t *testing.T) {
	w := ecs.NewWorld()
	scene, err := LoadScene(w)
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}

	for name, e := range map[string]ecs.Entity{
		"clock":   scene.Clock,
		"camera":  scene.Camera,
		"boss":    scene.Boss,
		"counter": scene.Counter,
	} {
		if !ecs.IsAlive(w, e) {
			t.Fatalf("%s entity not alive", name)
		}
	}

	boss, ok := ecs.Get(w, scene.Boss, component.BossComponent.Kind())
	if !ok {
		t.Fatal("boss component missing")
	}

	tests := []struct {
		name  string
		tmpl  component.ProjectileTemplate
		class component.ProjectileClass
	}{
		{"circular", boss.Circular.Projectile, component.ProjectileSmall},
		{"barrier", boss.Barrier.Projectile, component.ProjectileMedium},
		{"spiral", boss.Spiral.Projectile, component.ProjectileBig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.tmpl.Class != tc.class {
				t.Fatalf("expected %s projectile, got %s", tc.class, tc.tmpl.Class)
			}
			if tc.tmpl.Speed != 5 {
				t.Fatalf("expected speed 5, got %v", tc.tmpl.Speed)
			}
		})
	}

	if boss.Circular.Count != 8 || boss.Barrier.HalfWidth != 3 || boss.Barrier.Heading != 180 {
		t.Fatalf("unexpected pattern tuning %+v", boss)
	}

	counter, ok := ecs.Get(w, scene.Counter, component.BulletCounterComponent.Kind())
	if !ok || counter.Label != "Bullets" {
		t.Fatalf("expected Bullets counter, got %+v", counter)
	}
	if !ecs.Has(w, scene.Counter, component.ScreenSpaceComponent.Kind()) {
		t.Fatal("counter text should be screen-space")
	}
}

func TestBossFromSpecDefaults(t *testing.T) {
	boss := BossFromSpec(&prefabs.BossSpec{}, BossProjectiles{})

	if boss.ModeDuration != 10 || boss.TotalDuration != 30 {
		t.Fatalf("unexpected timers mode=%v total=%v", boss.ModeDuration, boss.TotalDuration)
	}
	if boss.MoveSpeed != 1 || boss.RotationSpeed != 30 {
		t.Fatalf("unexpected motion move=%v rotation=%v", boss.MoveSpeed, boss.RotationSpeed)
	}
	if boss.Circular.TargetX != 0 || boss.Circular.TargetY != 6.5 {
		t.Fatalf("unexpected circular target (%v, %v)", boss.Circular.TargetX, boss.Circular.TargetY)
	}
	if boss.Barrier.Spacing != 1.5 || boss.Barrier.SwayAmplitude != 5 || boss.Barrier.SwayFrequency != 30 {
		t.Fatalf("unexpected barrier tuning %+v", boss.Barrier)
	}
	if boss.Spiral.Spin != 2 {
		t.Fatalf("expected spiral spin 2, got %v", boss.Spiral.Spin)
	}
	for _, rate := range []float64{boss.Circular.FireRate, boss.Barrier.FireRate, boss.Spiral.FireRate} {
		if rate != 0.5 {
			t.Fatalf("expected fire rate 0.5, got %v", rate)
		}
	}
}

func TestSpawnProjectile(t *testing.T) {
	tests := []struct {
		name    string
		ttl     int
		wantTTL bool
	}{
		{"with_ttl", 60, true},
		{"without_ttl", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			tmpl := component.ProjectileTemplate{Class: component.ProjectileSmall, Speed: 5, Radius: 0.15, TTLFrames: tc.ttl}
			e, err := SpawnProjectile(w, tmpl, cp.Vector{X: 1, Y: 2}, math.Pi)
			if err != nil {
				t.Fatal(err)
			}

			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if tr.X != 1 || tr.Y != 2 || tr.Rotation != math.Pi {
				t.Fatalf("unexpected transform %+v", tr)
			}
			p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
			if p.Speed != 5 || p.Class != component.ProjectileSmall {
				t.Fatalf("unexpected projectile %+v", p)
			}
			d, _ := ecs.Get(w, e, component.OffscreenDespawnComponent.Kind())
			if d.Radius != 0.15 || d.Visible {
				t.Fatalf("unexpected despawn state %+v", d)
			}
			if got := ecs.Has(w, e, component.TTLComponent.Kind()); got != tc.wantTTL {
				t.Fatalf("expected ttl=%v, got %v", tc.wantTTL, got)
			}
		})
	}
}

func TestBuildersRejectNilSpecs(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewBoss(w, nil, BossProjectiles{}); err == nil {
		t.Fatal("expected error for nil boss spec")
	}
	if _, err := NewCamera(w, nil); err == nil {
		t.Fatal("expected error for nil camera spec")
	}
	if _, err := NewBulletCounter(w, nil); err == nil {
		t.Fatal("expected error for nil counter spec")
	}
}
