package ecs

// System updates a world once per frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs systems in a fixed order and then drops the frame's events.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once. Events pushed during the frame are visible to
// later systems in the same frame and to the caller until the next Update.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	w.events.flush()
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
