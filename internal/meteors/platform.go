package meteors

// Platform is the player: a single cell on the ground row.
type Platform struct {
	pixel
}

var _ Entity = (*Platform)(nil)

// NewPlatform creates the platform in the middle of the ground row.
// It is not drawn until Show is called.
func NewPlatform(d Display) *Platform {
	return &Platform{pixel{
		pos:     Position{X: Width / 2, Y: GroundRow},
		display: d,
	}}
}

// MoveLeft steps one cell left, staying on the board.
// The platform is redrawn even when it is already at the edge.
func (p *Platform) MoveLeft() {
	p.move(-1)
}

// MoveRight steps one cell right, staying on the board.
func (p *Platform) MoveRight() {
	p.move(1)
}

func (p *Platform) move(dx int) {
	p.Hide()
	p.pos.X = ClampX(p.pos.X + dx)
	p.Show()
}

// Collides reports whether the platform occupies (x, y).
func (p *Platform) Collides(x, y int) bool {
	return p.pos.X == x && p.pos.Y == y
}
