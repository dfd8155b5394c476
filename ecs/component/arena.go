package component

// ArenaBounds stores the size of the playable arena. The game writes the
// current layout size here every frame.
type ArenaBounds struct {
	Width  float64
	Height float64
}

var ArenaBoundsComponent = NewComponent[ArenaBounds]()
