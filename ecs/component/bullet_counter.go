package component

type BulletCounter struct {
	Label        string
	Small        int
	Medium       int
	Big          int
	Total        int
	RenderedText string
}

var BulletCounterComponent = NewComponent[BulletCounter]()
