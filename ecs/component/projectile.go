package component

import "image/color"

// ProjectileClass is the scene tag a projectile is counted under.
type ProjectileClass string

const (
	ProjectileSmall  ProjectileClass = "small"
	ProjectileMedium ProjectileClass = "medium"
	ProjectileBig    ProjectileClass = "big"
)

// Projectile moves along its local up axis at Speed world units per second.
type Projectile struct {
	Speed float64
	Class ProjectileClass
}

// ProjectileTemplate is everything needed to instantiate a projectile.
type ProjectileTemplate struct {
	Class     ProjectileClass
	Speed     float64
	Radius    float64
	Color     color.NRGBA
	Layer     int
	TTLFrames int
}

var ProjectileComponent = NewComponent[Projectile]()
