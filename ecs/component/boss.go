package component

// AttackMode selects the boss pattern. Modes rotate 1 -> 2 -> 3 -> 1.
type AttackMode int

const (
	AttackCircular AttackMode = 1
	AttackBarrier  AttackMode = 2
	AttackSpiral   AttackMode = 3
)

func (m AttackMode) Next() AttackMode {
	return m%3 + 1
}

func (m AttackMode) String() string {
	switch m {
	case AttackCircular:
		return "circular"
	case AttackBarrier:
		return "barrier"
	case AttackSpiral:
		return "spiral"
	}
	return "unknown"
}

// Boss stores the timed pattern rotation configuration. Angles are degrees
// and times are seconds.
type Boss struct {
	FirePointX    float64
	FirePointY    float64
	MoveSpeed     float64
	RotationSpeed float64
	ModeDuration  float64
	TotalDuration float64

	Circular CircularPattern
	Barrier  BarrierPattern
	Spiral   SpiralPattern
}

type CircularPattern struct {
	TargetX    float64
	TargetY    float64
	FireRate   float64
	Count      int
	Step       float64
	Projectile ProjectileTemplate
}

type BarrierPattern struct {
	FireRate      float64
	HalfWidth     int
	Spacing       float64
	Heading       float64
	SwayAmplitude float64
	SwayFrequency float64
	Projectile    ProjectileTemplate
}

type SpiralPattern struct {
	FireRate   float64
	Spin       float64
	Projectile ProjectileTemplate
}

// BossRuntime stores runtime-only state for the pattern rotation.
type BossRuntime struct {
	Initialized bool
	Finished    bool
	Mode        AttackMode
	ModeTime    float64
	TotalTime   float64
	NextFire    float64
	Volleys     int
}

var BossComponent = NewComponent[Boss]()
var BossRuntimeComponent = NewComponent[BossRuntime]()

// VolleyFiredEvent is pushed on the world event queue whenever a pattern
// spawns projectiles. Data is a VolleyFired.
const VolleyFiredEvent = "volley_fired"

type VolleyFired struct {
	Mode  AttackMode
	Class ProjectileClass
	Count int
}
