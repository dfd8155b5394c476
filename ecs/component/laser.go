package component

import "github.com/jakecoffman/cp"

// Laser is a moving beam that ends the run on contact.
type Laser struct {
	Velocity cp.Vector
	Width    float64
	Height   float64
}

var LaserComponent = NewComponent[Laser]()
