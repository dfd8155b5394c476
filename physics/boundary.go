package physics

// Arena is the playable rectangle [0,Width] x [0,Height].
type Arena struct {
	Width  float64
	Height float64
}

// Contact records which arena edges a body was pushed off during Resolve.
type Contact uint8

const (
	ContactLeft Contact = 1 << iota
	ContactRight
	ContactTop
	ContactBottom
)

// Has reports whether c includes edge.
func (c Contact) Has(edge Contact) bool {
	return c&edge != 0
}

// BoundaryResolver keeps a body inside the arena with lossy bounces.
type BoundaryResolver struct {
	// Restitution is the fraction of perpendicular speed kept after a bounce.
	Restitution float64
}

// DefaultBoundaryResolver returns the reference tuning.
func DefaultBoundaryResolver() BoundaryResolver {
	return BoundaryResolver{Restitution: 0.6}
}

// Resolve pushes b back inside the arena. The horizontal and vertical axes are
// corrected independently; left wins over right and top over bottom. Each
// correction only reflects the velocity component on its own axis.
func (r BoundaryResolver) Resolve(b *KinematicBody, a Arena) Contact {
	if b == nil {
		return 0
	}

	var contact Contact
	pos := b.Position
	vel := b.Velocity
	hw, hh := b.HalfWidth, b.HalfHeight

	if pos.X-hw < 0 {
		b.Position.X = hw
		b.Velocity.X = -vel.X * r.Restitution
		contact |= ContactLeft
	} else if pos.X+hw > a.Width {
		b.Position.X = a.Width - hw
		b.Velocity.X = -vel.X * r.Restitution
		contact |= ContactRight
	}

	if pos.Y-hh < 0 {
		b.Position.Y = hh
		b.Velocity.Y = -vel.Y * r.Restitution
		contact |= ContactTop
	} else if pos.Y+hh > a.Height {
		b.Position.Y = a.Height - hh
		b.Velocity.Y = -vel.Y * r.Restitution
		contact |= ContactBottom
	}

	return contact
}
