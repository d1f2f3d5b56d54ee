package component

// OffscreenDespawn destroys the entity once its bounds leave the camera view
// after having been visible.
type OffscreenDespawn struct {
	Radius  float64
	Visible bool
}

var OffscreenDespawnComponent = NewComponent[OffscreenDespawn]()

// TTL destroys the entity after Frames more updates. Zero expires on the next
// update.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
