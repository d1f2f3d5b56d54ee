package component

import "image/color"

type ShapeKind string

const (
	ShapeCircle ShapeKind = "circle"
	ShapeRect   ShapeKind = "rect"
)

// Shape is a flat-colored primitive sized in world units. Rects are centered
// on the transform.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	Width  float64
	Height float64
	Color  color.NRGBA
}

var ShapeComponent = NewComponent[Shape]()

// Text is a text display surface. Screen-space text positions are pixels.
type Text struct {
	Value string
	Color color.NRGBA
	Size  float64
}

var TextComponent = NewComponent[Text]()

// RenderLayer orders drawing; lower layers are drawn first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

// ScreenSpace marks entities whose Transform is in screen pixels rather than
// world units.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()

// HUDTag marks overlay entities every frontend draws on top of the arena.
type HUDTag struct{}

var HUDTagComponent = NewComponent[HUDTag]()
