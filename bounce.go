package main

// Fix counters pin an axis after this many contacts. The X response still
// increments once past the limit, so the X counter tops out one higher.
const fixCountLimit = 3

// updateBounce advances each axis independently while its fix counter is
// still under the pin threshold. Gravity accumulates into the Y force.
func (b *Body) updateBounce(delta float64) {
	changed := b.IsUpdated

	if b.FixCountX <= fixCountLimit && b.Force.X != 0 {
		b.Position.X += b.Force.X * delta
		changed = true
	}
	if b.FixCountY <= fixCountLimit {
		b.Force.Y += b.Gravity * delta
		if b.Force.Y != 0 {
			b.Position.Y += b.Force.Y * delta
			changed = true
		}
	}
	b.MoveDirY = signOf(b.Force.Y)

	if changed {
		b.refreshBounds()
	}
}

// bounceCollision bleeds energy with the decaying scale factors and pins the
// axis once its counter hits the limit.
func (b *Body) bounceCollision(correction Point) {
	if correction.X != 0 && b.FixCountX <= fixCountLimit {
		if b.FixCountX == fixCountLimit {
			b.Force.X = 0
		} else {
			b.Force.X *= 0.5 - 0.1*float64(b.FixCountX)
			if signOf(correction.X) != signOf(b.Force.X) {
				b.Force.X = -b.Force.X
			}
		}
		b.FixCountX++
	}

	switch {
	case correction.Y < 0:
		if b.FixCountY == fixCountLimit {
			b.Force.Y = 0
			b.MoveDirY = 0
		} else {
			b.ReboundSpeed *= 0.5 - 0.15*float64(b.FixCountY)
			b.Force.Y = b.ReboundSpeed
			b.FixCountY++
		}
	case correction.Y > 0:
		b.Force.Y = -b.Force.Y
	}
}
