package main

import "math"

const (
	grenadeSize     = 12.0
	grenadeThrowX   = 260.0 // points/s
	grenadeThrowY   = -420.0
	grenadeFuse     = 4.0 // seconds, hard cap if it never settles
	shrapnelCount   = 8
	shrapnelSpeed   = 900.0 // points/s
	shrapnelRange   = 320.0 // points of travel per fragment
	shrapnelDamage  = 14
	grenadeCooldown = 1.0 // seconds between throws
)

// Grenade is a lobbed bounce body. Once it settles on the level (or the
// fuse runs out) it bursts into a ring of range-limited shrapnel bullets
// that pierce players and crates but stop on level geometry.
type Grenade struct {
	ID    string
	Owner *Player
	Body  *Body
	Fuse  float64
}

// ThrowGrenade lobs a grenade from the player in their facing direction.
func ThrowGrenade(w *World, p *Player) *Grenade {
	g := &Grenade{
		ID:    GenerateID(4),
		Owner: p,
		Fuse:  grenadeFuse,
	}
	pos := p.Body.Position
	g.Body = w.CreateBounceBody(pos.X, pos.Y-10, grenadeSize, grenadeSize,
		Point{X: grenadeThrowX * float64(p.Facing), Y: grenadeThrowY})
	g.Body.UserData = g
	return g
}

// Settled reports whether the grenade has come to rest on the level.
func (g *Grenade) Settled() bool {
	return g.Body.FixCountY == fixCountLimit && g.Body.Force.Y == 0
}

// Burst spawns the shrapnel ring around the grenade's resting point. The
// angles are offset half a slice so no fragment flies exactly along an
// axis.
func (g *Grenade) Burst(w *World) {
	pos := g.Body.Position
	ownerID := 0
	ownerTag := ""
	if g.Owner != nil {
		ownerTag = g.Owner.ID
		if g.Owner.Body != nil {
			ownerID = g.Owner.Body.ID
		}
	}
	for i := 0; i < shrapnelCount; i++ {
		angle := (float64(i) + 0.5) * 2 * math.Pi / shrapnelCount
		force := Point{X: math.Cos(angle) * shrapnelSpeed, Y: math.Sin(angle) * shrapnelSpeed}
		b := w.CreateBulletBody(pos.X, pos.Y, force, ownerID, shrapnelRange)
		b.UserData = &Shot{OwnerID: ownerTag, Damage: shrapnelDamage, Grenade: true}
	}
}

// ToState converts to protocol state.
func (g *Grenade) ToState() GrenadeState {
	return GrenadeState{
		ID: g.ID,
		X:  round1(g.Body.Position.X),
		Y:  round1(g.Body.Position.Y),
	}
}
