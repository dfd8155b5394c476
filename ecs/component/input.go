package component

import "github.com/jakecoffman/cp"

// Input stores the commands gathered for the current frame. Every field is a
// one-shot press; systems clear what they consume.
type Input struct {
	IncreaseCharge bool
	DecreaseCharge bool
	ToggleSign     bool

	DashPressed bool
	DashDir     cp.Vector
}

var InputComponent = NewComponent[Input]()
