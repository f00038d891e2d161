package main

// updatePlayer advances horizontal motion, then whichever vertical timer is
// armed. Jump is a parabola with its apex jumpDistance above the last ground
// line; fall is the same curve anchored at the moment the ground was lost.
func (b *Body) updatePlayer(delta float64) {
	changed := b.IsUpdated

	if b.ForceX != 0 {
		b.Position.X += b.ForceX * delta
		if b.OnGround {
			// Step off the ledge probe: drop one point so the floor
			// contact re-fires next sub-step if the floor is still there.
			b.Position.Y += 1
			b.OnGround = false
		}
		changed = true
	}

	b.MoveDirY = 0

	if b.JumpTimer != timerOff {
		b.JumpTimer += delta
		t := b.JumpTimer - b.JumpCoef
		b.Position.Y = b.LastGroundY + b.Gravity*t*t - b.JumpDistance
		b.MoveDirY = signOf(t)
		changed = true
	} else if !b.OnGround && b.FallTimer != timerOff {
		b.FallTimer += delta
		b.Position.Y = b.LastGroundY + b.Gravity*b.FallTimer*b.FallTimer
		b.MoveDirY = 1
		changed = true
	}

	if changed {
		b.refreshBounds()
	}
}

// Move sets horizontal motion. dir must be -1 or +1; picking the direction
// opposite the one committed at jump time halves the air control.
func (b *Body) Move(dir int) {
	if dir != -1 && dir != 1 {
		return
	}
	b.ForceX = b.MoveSpeed * float64(dir)
	if !b.OnGround && dir != b.JumpInitDir {
		b.ForceX /= 2
		b.JumpInitDir = 0
	}
}

// Stop clears horizontal motion.
func (b *Body) Stop() {
	b.ForceX = 0
}

// Jump arms the jump timer. No-op while airborne.
func (b *Body) Jump() {
	if !b.OnGround {
		return
	}
	b.JumpTimer = 0
	b.LastGroundY = b.Position.Y
	b.JumpInitDir = signOf(b.ForceX)
	b.OnGround = false
}

// playerCollision reacts to a resolved contact: a push from above is ground,
// a push from below is a ceiling bump that kills the jump.
func (b *Body) playerCollision(correction Point) {
	if correction.X != 0 {
		b.JumpInitDir = 0
	}
	if correction.Y < 0 {
		b.OnGround = true
		b.JumpInitDir = 0
		b.JumpTimer = timerOff
		b.FallTimer = timerOff
	} else if correction.Y > 0 {
		b.JumpTimer = timerOff
		b.JumpInitDir = 0
	}
}
