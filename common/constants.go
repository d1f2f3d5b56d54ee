package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// DefaultTPS is the fixed simulation rate; systems derive their frame
	// delta from it.
	DefaultTPS = 60
)
