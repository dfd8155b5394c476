package component

// LaserSpawner times laser spawns. Times are in seconds, speeds in px/s.
type LaserSpawner struct {
	Timer         float64
	Interval      float64
	FirstInterval float64
	MinInterval   float64
	MaxInterval   float64

	MinSpeed    float64
	SpeedJitter int
	// Length runs along the direction of travel.
	Length    float64
	Thickness float64
}

var LaserSpawnerComponent = NewComponent[LaserSpawner]()

// ScrollSpawner times scroll spawns. The first spawn of a run happens after
// FirstInterval plus up to FirstJitter whole seconds.
type ScrollSpawner struct {
	Timer         float64
	Interval      float64
	FirstInterval float64
	FirstJitter   int
	MinInterval   float64
	MaxInterval   float64
	MaxOnScreen   int
	Size          float64
	Margin        float64
}

var ScrollSpawnerComponent = NewComponent[ScrollSpawner]()
