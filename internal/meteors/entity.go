package meteors

// Entity is anything that occupies one board cell and can draw itself.
// Show and Hide are idempotent.
type Entity interface {
	Pos() Position
	Show()
	Hide()
}

// pixel is the single-cell body shared by Platform and Meteor.
type pixel struct {
	pos     Position
	display Display
}

// Pos returns the current cell.
func (p *pixel) Pos() Position {
	return p.pos
}

// Show lights the current cell.
func (p *pixel) Show() {
	p.display.Plot(p.pos.X, p.pos.Y)
}

// Hide turns the current cell off.
func (p *pixel) Hide() {
	p.display.Unplot(p.pos.X, p.pos.Y)
}
