package testutil

// Tracked is a pointee whose destruction is recorded by its Tracker.
type Tracked struct {
	ID      int
	tracker *Tracker
}

// Close records the destruction. It is picked up by pointer types that treat
// io.Closer pointees as owning a resource.
func (t *Tracked) Close() error {
	t.tracker.destroyed = append(t.tracker.destroyed, t.ID)
	return nil
}

// Tracker counts destructions of the values it hands out.
type Tracker struct {
	next      int
	destroyed []int
}

// New returns a fresh tracked value with the next ID.
func (tr *Tracker) New() *Tracked {
	tr.next++
	return &Tracked{ID: tr.next, tracker: tr}
}

// Deleter returns a deleter that records destruction without going through Close.
func (tr *Tracker) Deleter() func(*Tracked) {
	return func(t *Tracked) {
		tr.destroyed = append(tr.destroyed, t.ID)
	}
}

// Destroyed returns the IDs destroyed so far, in order.
func (tr *Tracker) Destroyed() []int { return tr.destroyed }

// Count returns how many times id has been destroyed.
func (tr *Tracker) Count(id int) int {
	n := 0
	for _, d := range tr.destroyed {
		if d == id {
			n++
		}
	}
	return n
}
