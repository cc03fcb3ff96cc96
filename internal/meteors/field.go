package meteors

// Listener receives meteor events from a MeteorField.
type Listener interface {
	// MeteorMoved is called for every meteor after it moves, before any is removed.
	MeteorMoved(x, y int)
	// MeteorExited is called once for every meteor removed from the ground row.
	MeteorExited()
}

type nopListener struct{}

func (nopListener) MeteorMoved(int, int) {}
func (nopListener) MeteorExited()        {}

// MeteorField owns the falling meteors, in spawn order.
// It is not safe for concurrent use; Session serializes access.
type MeteorField struct {
	display  Display
	rng      Rand
	meteors  []*Meteor
	listener Listener
}

// NewMeteorField creates an empty field with a no-op listener.
func NewMeteorField(d Display, rng Rand) *MeteorField {
	return &MeteorField{
		display:  d,
		rng:      rng,
		meteors:  make([]*Meteor, 0, Width),
		listener: nopListener{},
	}
}

// SetListener replaces the event listener. nil restores the no-op listener.
func (f *MeteorField) SetListener(l Listener) {
	if l == nil {
		l = nopListener{}
	}
	f.listener = l
}

// Size returns the number of active meteors.
func (f *MeteorField) Size() int {
	return len(f.meteors)
}

// Positions returns the meteor cells in spawn order.
func (f *MeteorField) Positions() []Position {
	out := make([]Position, len(f.meteors))
	for i, m := range f.meteors {
		out[i] = m.pos
	}
	return out
}

// AdvanceAll moves every meteor down one row and then removes the ones on the
// ground. All MeteorMoved events are delivered before the first MeteorExited,
// so a meteor that lands this tick is reported on the ground row once.
func (f *MeteorField) AdvanceAll() {
	for _, m := range f.meteors {
		m.MoveDown()
		mustInBounds(m.pos)
		f.listener.MeteorMoved(m.pos.X, m.pos.Y)
	}

	// Survivors go into a fresh slice; nothing is removed mid-scan.
	survivors := make([]*Meteor, 0, len(f.meteors))
	for _, m := range f.meteors {
		if !m.IsOnGround() {
			survivors = append(survivors, m)
			continue
		}
		m.Hide()
		f.listener.MeteorExited()
	}
	f.meteors = survivors
}

// Spawn adds a meteor above a random column. The candidate is dropped without
// a trace when its cell is already taken, so a tick may spawn nothing.
// Reports whether a meteor was added.
func (f *MeteorField) Spawn() bool {
	m := NewMeteor(f.display, f.rng.Intn(Width))
	if m.HasCollisionAtSpawn() || f.occupied(m.pos) {
		return false
	}
	f.meteors = append(f.meteors, m)
	return true
}

// occupied covers the spawn row, which the display cannot show. Within Tick
// it never matches: AdvanceAll moves every meteor off the spawn row in the
// same tick it spawned. It only guards direct Spawn calls between advances.
func (f *MeteorField) occupied(p Position) bool {
	for _, m := range f.meteors {
		if m.pos == p {
			return true
		}
	}
	return false
}
