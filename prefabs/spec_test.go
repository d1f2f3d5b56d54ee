package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedPrefabs(t *testing.T) {
	scene, err := LoadSceneSpec()
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}

	boss, err := LoadBossSpec(scene.Boss)
	if err != nil {
		t.Fatalf("load boss: %v", err)
	}
	if boss.ModeDuration != 10 || boss.TotalDuration != 30 {
		t.Fatalf("unexpected boss timings: mode=%v total=%v", boss.ModeDuration, boss.TotalDuration)
	}
	if boss.Circular.Target == nil || boss.Circular.Target.Y != 6.5 {
		t.Fatalf("expected circular target y=6.5, got %+v", boss.Circular.Target)
	}

	for _, name := range []string{boss.Circular.Projectile, boss.Barrier.Projectile, boss.Spiral.Projectile} {
		t.Run(name, func(t *testing.T) {
			p, err := LoadProjectileSpec(name)
			if err != nil {
				t.Fatalf("load projectile: %v", err)
			}
			if p.Speed != 5 {
				t.Fatalf("expected speed 5, got %v", p.Speed)
			}
		})
	}

	cam, err := LoadCameraSpec(scene.Camera)
	if err != nil {
		t.Fatalf("load camera: %v", err)
	}
	if cam.HalfHeight != 8 {
		t.Fatalf("expected half height 8, got %v", cam.HalfHeight)
	}

	counter, err := LoadBulletCounterSpec(scene.BulletCounter)
	if err != nil {
		t.Fatalf("load counter: %v", err)
	}
	if counter.Label != "Bullets" {
		t.Fatalf("expected Bullets label, got %q", counter.Label)
	}
}

func TestBossSpecDefaults(t *testing.T) {
	var spec BossSpec
	spec.ApplyDefaults()

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"move_speed", spec.MoveSpeed, 1},
		{"rotation_speed", spec.RotationSpeed, 30},
		{"mode_duration", spec.ModeDuration, 10},
		{"total_duration", spec.TotalDuration, 30},
		{"circular_rate", spec.Circular.FireRate, 0.5},
		{"circular_count", float64(spec.Circular.Count), 8},
		{"circular_step", spec.Circular.Step, 45},
		{"circular_target_y", spec.Circular.Target.Y, 6.5},
		{"barrier_half_width", float64(spec.Barrier.HalfWidth), 3},
		{"barrier_spacing", spec.Barrier.Spacing, 1.5},
		{"barrier_heading", *spec.Barrier.Heading, 180},
		{"barrier_sway_amplitude", spec.Barrier.SwayAmplitude, 5},
		{"barrier_sway_frequency", spec.Barrier.SwayFrequency, 30},
		{"spiral_spin", spec.Spiral.Spin, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("got %v want %v", c.got, c.want)
			}
		})
	}
}

func TestBossSpecKeepsExplicitZeroHeading(t *testing.T) {
	var spec BossSpec
	if err := yaml.Unmarshal([]byte("barrier:\n  heading: 0\n"), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	spec.ApplyDefaults()
	if *spec.Barrier.Heading != 0 {
		t.Fatalf("explicit heading overwritten: %v", *spec.Barrier.Heading)
	}
}

func TestLoadProjectileSpecRejectsUnknownClass(t *testing.T) {
	_, err := LoadProjectileSpec("missing.yaml")
	if err == nil {
		t.Fatalf("expected error for missing prefab")
	}
	if errors.Is(err, ErrUnknownProjectileClass) {
		t.Fatalf("missing file should not report a class error")
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#ff8000"`, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, false},
		{"rgba", `"10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#gg0000"`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if n := got.NRGBA(color.NRGBA{}); n != c.want {
				t.Fatalf("got %v want %v", n, c.want)
			}
		})
	}
}

func TestYAMLColorFallback(t *testing.T) {
	var c *YAMLColor
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	if got := c.NRGBA(fallback); got != fallback {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestLoadWithSource(t *testing.T) {
	for _, name := range []string{"boss.yaml", "prefabs/boss.yaml"} {
		t.Run(name, func(t *testing.T) {
			data, src, err := LoadWithSource(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if src != SourceEmbedded {
				t.Fatalf("expected embedded source, got %s", src)
			}
			if len(data) == 0 {
				t.Fatal("expected prefab data")
			}
		})
	}

	if _, _, err := LoadWithSource("nope.yaml"); err == nil {
		t.Fatal("expected error for missing prefab")
	}
}
