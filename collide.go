package main

import "math"

type contact struct {
	A, B         *Body
	Intersection Size
}

type bulletTargets struct {
	bullet  *Body
	targets []*Body
}

// detect walks the candidate pairs and splits them into sensor events,
// bullet target lists, and contacts. Separated pairs are skipped; a zero
// extent still classifies, which is what lets a purely horizontal or
// vertical bullet segment reach the edge probes.
func detect(pairs []*Pair) (events []SensorEvent, bullets []*bulletTargets, contacts []contact) {
	var byBullet map[int]*bulletTargets

	for _, p := range pairs {
		a, b := p.A, p.B
		w := math.Min(a.Bounds.Max.X, b.Bounds.Max.X) - math.Max(a.Bounds.Min.X, b.Bounds.Min.X)
		h := math.Min(a.Bounds.Max.Y, b.Bounds.Max.Y) - math.Max(a.Bounds.Min.Y, b.Bounds.Min.Y)
		if w < 0 || h < 0 {
			continue
		}

		if a.IsSensor || b.IsSensor {
			events = append(events, SensorEvent{BodyA: a, BodyB: b})
			continue
		}

		if a.Type == BodyBullet || b.Type == BodyBullet {
			bullet, target := a, b
			if b.Type == BodyBullet {
				bullet, target = b, a
			}
			if byBullet == nil {
				byBullet = make(map[int]*bulletTargets)
			}
			slot, ok := byBullet[bullet.ID]
			if !ok {
				slot = &bulletTargets{bullet: bullet}
				byBullet[bullet.ID] = slot
				bullets = append(bullets, slot)
			}
			slot.targets = append(slot.targets, target)
			continue
		}

		contacts = append(contacts, contact{A: a, B: b, Intersection: Size{Width: w, Height: h}})
	}
	return events, bullets, contacts
}

// resolveBullet probes the four edges of every candidate AABB against the
// bullet's stored line and keeps the crossing nearest to prevPosition by
// Manhattan distance. Probes with non-finite coefficients are skipped, so a
// bullet moving exactly along one axis can only hit the edges perpendicular
// to it.
func resolveBullet(bt *bulletTargets, w *World) (SensorEvent, bool) {
	b := bt.bullet
	best := math.Inf(1)
	var bestPoint Point
	var bestTarget *Body

	vertOK := isFinite(b.Coefs.AB) && isFinite(b.Coefs.CB)
	horizOK := isFinite(b.Coefs.BA) && isFinite(b.Coefs.CA)

	for _, t := range bt.targets {
		if vertOK {
			for _, x := range [2]float64{t.Bounds.Min.X, t.Bounds.Max.X} {
				y := -b.Coefs.AB*x - b.Coefs.CB
				if y <= t.Bounds.Min.Y || y >= t.Bounds.Max.Y {
					continue
				}
				d := math.Abs(x-b.PrevPosition.X) + math.Abs(y-b.PrevPosition.Y)
				if d < best {
					best, bestPoint, bestTarget = d, Point{X: x, Y: y}, t
				}
			}
		}
		if horizOK {
			for _, y := range [2]float64{t.Bounds.Min.Y, t.Bounds.Max.Y} {
				x := -b.Coefs.BA*y - b.Coefs.CA
				if x <= t.Bounds.Min.X || x >= t.Bounds.Max.X {
					continue
				}
				d := math.Abs(x-b.PrevPosition.X) + math.Abs(y-b.PrevPosition.Y)
				if d < best {
					best, bestPoint, bestTarget = d, Point{X: x, Y: y}, t
				}
			}
		}
	}

	if bestTarget == nil {
		return SensorEvent{}, false
	}
	if b.LifeBudget == 0 || bestTarget.Type == BodyStatic {
		w.RemoveBody(b)
	}
	return SensorEvent{IsHit: true, Bullet: b, Target: bestTarget, Point: bestPoint}, true
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// resolveContact computes the positional correction for a player or bounce
// body overlapping a static, applies the per-type response, and snaps the
// body out of the overlap.
func resolveContact(c contact) {
	resolved, static := c.A, c.B
	if resolved.Type == BodyStatic {
		resolved, static = c.B, c.A
	}

	correction := Point{X: c.Intersection.Width, Y: c.Intersection.Height}
	needMinFix := true

	// Containment: an extent fully inside the static's extent cannot be the
	// separating axis.
	if resolved.Bounds.Min.X > static.Bounds.Min.X && resolved.Bounds.Max.X < static.Bounds.Max.X {
		correction.X = 0
		needMinFix = false
	}
	if resolved.Bounds.Min.Y > static.Bounds.Min.Y && resolved.Bounds.Max.Y < static.Bounds.Max.Y {
		correction.Y = 0
		needMinFix = false
	}

	// A rising player passes through platforms from below.
	if correction.Y != 0 && resolved.Position.Y < static.Position.Y &&
		resolved.Type == BodyPlayer && resolved.MoveDirY == -1 && !resolved.OnGround {
		correction.Y = 0
		needMinFix = false
	}

	// Landing: a descending body above the static prefers the Y axis even
	// when it clips a corner.
	if correction.Y != 0 && resolved.Position.Y < static.Position.Y &&
		resolved.MoveDirY == 1 && correction.Y < correction.X {
		correction.X = 0
		needMinFix = false
	}

	if needMinFix {
		if correction.X < correction.Y {
			correction.Y = 0
		} else {
			correction.X = 0
		}
	}

	// Point the correction from the static toward the resolved body.
	if resolved.Position.Y < static.Position.Y {
		correction.Y = -correction.Y
	}
	if resolved.Position.X < static.Position.X {
		correction.X = -correction.X
	}

	resolved.updateCollision(correction)
	resolved.SetPosition(Point{X: resolved.Position.X + correction.X, Y: resolved.Position.Y + correction.Y})
}
