package entity

import (
	"fmt"

	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"github.com/milk9111/bulletboss/prefabs"
)

// Scene holds the handles of the arena's long-lived entities.
type Scene struct {
	Clock   ecs.Entity
	Camera  ecs.Entity
	Boss    ecs.Entity
	Counter ecs.Entity
}

// LoadScene reads scene.yaml and every prefab it references, then builds the
// arena into w.
func LoadScene(w *ecs.World) (*Scene, error) {
	sceneSpec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	bossSpec, err := prefabs.LoadBossSpec(sceneSpec.Boss)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	var projectiles BossProjectiles
	for _, p := range []struct {
		file string
		dst  *component.ProjectileTemplate
	}{
		{bossSpec.Circular.Projectile, &projectiles.Circular},
		{bossSpec.Barrier.Projectile, &projectiles.Barrier},
		{bossSpec.Spiral.Projectile, &projectiles.Spiral},
	} {
		spec, err := prefabs.LoadProjectileSpec(p.file)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		*p.dst = ProjectileTemplateFromSpec(spec)
	}

	cameraSpec, err := prefabs.LoadCameraSpec(sceneSpec.Camera)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	counterSpec, err := prefabs.LoadBulletCounterSpec(sceneSpec.BulletCounter)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	scene := &Scene{}
	if scene.Clock, err = NewClock(w); err != nil {
		return nil, err
	}
	if scene.Camera, err = NewCamera(w, cameraSpec); err != nil {
		return nil, err
	}
	if scene.Boss, err = NewBoss(w, bossSpec, projectiles); err != nil {
		return nil, err
	}
	if scene.Counter, err = NewBulletCounter(w, counterSpec); err != nil {
		return nil, err
	}
	return scene, nil
}
