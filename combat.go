package main

import "math"

// Shot is the game payload attached to a bullet body. Grenade marks
// shrapnel fragments so kills can be credited to the grenade.
type Shot struct {
	OwnerID string
	Damage  int
	Grenade bool
}

// FireBullet spawns a bullet from the player toward their aim. A degenerate
// aim falls back to the facing direction. Normal shots carry no travel
// budget, so the engine retires them on their first hit.
func FireBullet(w *World, p *Player, speed float64, damage int) *Body {
	dx, dy := p.AimX, p.AimY
	if dx == 0 && dy == 0 {
		dx = float64(p.Facing)
	}
	norm := dx*dx + dy*dy
	if norm > 0 {
		inv := 1 / math.Sqrt(norm)
		dx *= inv
		dy *= inv
	}
	def := GetClassDef(p.Class)
	muzzle := def.Width/2 + 6
	b := w.CreateBulletBody(
		p.Body.Position.X+dx*muzzle,
		p.Body.Position.Y+dy*muzzle,
		Point{X: dx * speed, Y: dy * speed},
		p.Body.ID, 0,
	)
	b.UserData = &Shot{OwnerID: p.ID, Damage: damage}
	return b
}
