package main

import "math"

// computeCoefs derives the bullet's line equation from its origin and force.
// With a = -fy, b = fx, c = x0*fy - y0*fx, the stored ratios let each edge
// probe solve for the missing coordinate with two multiplies.
func computeCoefs(origin, force Point) bulletCoefs {
	a := -force.Y
	b := force.X
	c := origin.X*force.Y - origin.Y*force.X
	return bulletCoefs{
		AB: a / b,
		BA: b / a,
		CA: c / a,
		CB: c / b,
	}
}

// updateBullet advances the bullet along its ray. A budgeted bullet that
// exhausts its travel allowance enqueues itself and leaves bounds stale.
func (b *Body) updateBullet(delta float64, w *World) {
	b.PrevPosition = b.Position
	dx := b.Force.X * delta
	dy := b.Force.Y * delta
	b.Position.X += dx
	b.Position.Y += dy

	if b.LifeBudget != 0 {
		b.Traveled += math.Sqrt(dx*dx + dy*dy)
		if b.Traveled >= b.LifeBudget {
			w.RemoveBody(b)
			return
		}
	}

	b.Bounds = SegmentRect(b.PrevPosition, b.Position)
}
