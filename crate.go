package main

const (
	crateSize     = 30.0
	crateInterval = 10.0 // seconds between drops
	maxCrates     = 3
)

// Crate is a supply drop: a bounce body released above the arena that
// tumbles down, settles on the level, and cracks open into a pickup when a
// bullet hits it.
type Crate struct {
	ID    string
	Body  *Body
	Alive bool
}

// NewCrate drops a crate at the arena's drop line with a small sideways
// shove so consecutive drops scatter.
func NewCrate(w *World, a *Arena) *Crate {
	c := &Crate{
		ID:    GenerateID(4),
		Alive: true,
	}
	x := a.CrateMinX + randFloat()*(a.CrateMaxX-a.CrateMinX)
	shove := (randFloat() - 0.5) * 120 // points/s
	c.Body = w.CreateBounceBody(x, a.CrateDropY, crateSize, crateSize, Point{X: shove, Y: 60})
	c.Body.UserData = c
	return c
}

// Crack marks the crate opened. The game removes the body and spawns the
// pickup where it rested.
func (c *Crate) Crack() {
	c.Alive = false
}

// ToState converts to protocol state.
func (c *Crate) ToState() CrateState {
	return CrateState{
		ID: c.ID,
		X:  round1(c.Body.Position.X),
		Y:  round1(c.Body.Position.Y),
	}
}
