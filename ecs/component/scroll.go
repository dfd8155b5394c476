package component

// Scroll is a collectable lore item drifting with the background.
type Scroll struct {
	ID   int
	Size float64
}

var ScrollComponent = NewComponent[Scroll]()
