package component

// RunState is the singleton progress of the current run plus the scroll
// collection that survives between runs.
type RunState struct {
	Distance         float64
	RequiredDistance float64
	ScrollSpeed      float64
	DistanceScale    float64

	Over bool
	Won  bool

	Collected      []bool
	NewlyCollected []int
}

var RunStateComponent = NewComponent[RunState]()

// CollectedCount returns how many scrolls have been found so far.
func (r *RunState) CollectedCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, ok := range r.Collected {
		if ok {
			n++
		}
	}
	return n
}

// Collect marks a scroll as found. It reports false for unknown or already
// collected ids.
func (r *RunState) Collect(id int) bool {
	if r == nil || id < 0 || id >= len(r.Collected) || r.Collected[id] {
		return false
	}
	r.Collected[id] = true
	r.NewlyCollected = append(r.NewlyCollected, id)
	return true
}
