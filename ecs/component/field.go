package component

import "github.com/milk9111/fieldrunner/physics"

// Field is the singleton electromagnetic field. The field system replaces State
// wholesale; everything else reads it.
type Field struct {
	State physics.FieldState

	// Interval is the time in seconds between periodic re-rolls; 0 disables them.
	Interval float64
	Timer    float64
	// LaserChance is the probability that a laser spawn re-rolls the field.
	LaserChance float64

	Pending bool
	Rolls   int
}

var FieldComponent = NewComponent[Field]()
