package meteors

// Meteor falls one row per tick from above the board to the ground row.
type Meteor struct {
	pixel
}

var _ Entity = (*Meteor)(nil)

// NewMeteor creates a meteor above column x. It is not drawn.
func NewMeteor(d Display, x int) *Meteor {
	pos := Position{X: x, Y: SpawnRow}
	mustInBounds(pos)
	return &Meteor{pixel{pos: pos, display: d}}
}

// MoveDown drops the meteor one row. It stops on the ground row.
func (m *Meteor) MoveDown() {
	m.Hide()
	m.pos.Y = min(m.pos.Y+1, GroundRow)
	m.Show()
}

// IsOnGround reports whether the meteor has reached the ground row.
func (m *Meteor) IsOnGround() bool {
	return m.pos.Y == GroundRow
}

// HasCollisionAtSpawn reports whether the display already shows something
// in the meteor's cell.
func (m *Meteor) HasCollisionAtSpawn() bool {
	return m.display.PointIsLit(m.pos.X, m.pos.Y)
}
