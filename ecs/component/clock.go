package component

// Clock is the scene clock singleton. Elapsed is seconds since the scene
// started and Delta is the length of the current frame.
type Clock struct {
	Elapsed float64
	Delta   float64
	Frame   int
}

var ClockComponent = NewComponent[Clock]()
