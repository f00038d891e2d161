package main

const (
	pickupSize    = 24.0
	pickupHeal    = 25
	pickupTimeout = 30.0 // seconds
)

// Pickup is a health pack sitting in the level as a sensor static. Touching
// players heal and consume it.
type Pickup struct {
	ID    string
	Body  *Body
	Heal  int
	Life  float64
	Alive bool
}

// NewPickup places a pickup sensor at (x, y).
func NewPickup(w *World, x, y float64) *Pickup {
	p := &Pickup{
		ID:    GenerateID(4),
		Heal:  pickupHeal,
		Life:  pickupTimeout,
		Alive: true,
	}
	p.Body = w.CreateStaticBody(x, y, pickupSize, pickupSize, true)
	p.Body.UserData = p
	return p
}

// Update ticks down the lifetime; returns false once expired.
func (p *Pickup) Update(dt float64) bool {
	if !p.Alive {
		return false
	}
	p.Life -= dt
	if p.Life <= 0 {
		p.Alive = false
	}
	return p.Alive
}

// ToState converts to protocol state.
func (p *Pickup) ToState() PickupState {
	return PickupState{
		ID: p.ID,
		X:  round1(p.Body.Position.X),
		Y:  round1(p.Body.Position.Y),
	}
}
