package pet

// Position is the avatar's top-left offset in logical units
type Position struct {
	X float64
	Y float64
}

// Viewport is the drawable area in logical units
type Viewport struct {
	Width  float64
	Height float64
}

// MaxX is the largest X that keeps the avatar on screen. A viewport narrower
// than the avatar pins it at 0 instead of inverting the range.
func (v Viewport) MaxX() float64 {
	return max(v.Width-AvatarSize, 0)
}

// MaxY is MaxX for the vertical axis
func (v Viewport) MaxY() float64 {
	return max(v.Height-AvatarSize, 0)
}

// Clamp keeps p inside the viewport
func (v Viewport) Clamp(p Position) Position {
	return Position{
		X: clamp(p.X, 0, v.MaxX()),
		Y: clamp(p.Y, 0, v.MaxY()),
	}
}

// Start returns the starting spot for a new avatar: a quarter of the way in
// on both axes.
func (v Viewport) Start() Position {
	return v.Clamp(Position{X: v.Width / 4, Y: v.Height / 4})
}

// Contains reports whether the point lies on an avatar placed at p
func (p Position) Contains(x, y float64) bool {
	return x >= p.X && x < p.X+AvatarSize && y >= p.Y && y < p.Y+AvatarSize
}

// Drag tracks one gesture. Every move is measured from where the avatar was
// when the gesture began, not from the previous move.
type Drag struct {
	active bool
	origin Position
}

// Begin records the avatar position at gesture start
func (d *Drag) Begin(at Position) {
	d.active = true
	d.origin = at
}

// Move returns the clamped position for a displacement since Begin. A move
// with no active gesture returns ok=false.
func (d *Drag) Move(v Viewport, dx, dy float64) (Position, bool) {
	if !d.active {
		return Position{}, false
	}
	return v.Clamp(Position{X: d.origin.X + dx, Y: d.origin.Y + dy}), true
}

// End finishes the gesture. The position was already committed by Move.
func (d *Drag) End() {
	d.active = false
}

// Active reports whether a gesture is in progress
func (d Drag) Active() bool {
	return d.active
}
