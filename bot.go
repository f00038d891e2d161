package main

import "math"

const (
	botThinkInterval = 0.2   // seconds between target scans
	botFireRange     = 700.0 // points
	botAimJitter     = 40.0  // points of vertical aim error
	botNames         = 6
)

var botNamePool = [botNames]string{
	"Rusty", "Bolt", "Socket", "Gears", "Piston", "Servo",
}

// botBrain drives a bot player with held-key inputs, the same
// interface a human client uses.
type botBrain struct {
	target    string
	thinkT    float64
	patrolDir int
	patrolT   float64
	jumpHold  float64
	lastX     float64
	stuckT    float64
}

func newBotBrain() *botBrain {
	dir := 1
	if randFloat() < 0.5 {
		dir = -1
	}
	return &botBrain{
		patrolDir: dir,
		patrolT:   1 + randFloat()*2,
	}
}

// BotName picks a display name for the nth bot in a session.
func BotName(n int) string {
	return botNamePool[n%botNames]
}

// think produces one tick of input. The brain only reads game state;
// all mutation goes through the normal input path.
func (b *botBrain) think(g *Game, p *Player, dt float64) ClientInput {
	var in ClientInput
	if p.Body == nil {
		return in
	}

	b.thinkT -= dt
	if b.thinkT <= 0 {
		b.thinkT = botThinkInterval
		b.target = b.pickTarget(g, p)
	}

	tgt := g.players[b.target]
	if tgt == nil || !tgt.Alive || tgt.Body == nil {
		return b.patrol(p, dt)
	}

	dx := tgt.Body.Position.X - p.Body.Position.X
	dy := tgt.Body.Position.Y - p.Body.Position.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	// Close the gap until roughly in range, then hold ground.
	if math.Abs(dx) > 120 {
		if dx < 0 {
			in.Left = true
		} else {
			in.Right = true
		}
	}

	// Jump at ledges and when the target is above.
	if p.Body.OnGround {
		if dy < -60 && math.Abs(dx) < 300 {
			in.Jump = true
		}
		if b.stuck(p, dt) {
			in.Jump = true
		}
	}

	if dist <= botFireRange {
		in.AimX = dx
		in.AimY = dy + (randFloat()-0.5)*botAimJitter
		in.Fire = true
		if dist < 300 && p.Grenades > 0 && randFloat() < 0.01 {
			in.Grenade = true
		}
	}
	return in
}

// pickTarget returns the id of the nearest living enemy, or "".
func (b *botBrain) pickTarget(g *Game, p *Player) string {
	best := ""
	bestD := math.MaxFloat64
	for id, other := range g.players {
		if id == p.ID || !other.Alive || other.Body == nil {
			continue
		}
		if g.match.Config.IsTeamMode() && other.Team == p.Team {
			continue
		}
		dx := other.Body.Position.X - p.Body.Position.X
		dy := other.Body.Position.Y - p.Body.Position.Y
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = id
		}
	}
	return best
}

// patrol wanders back and forth when nobody is in sight.
func (b *botBrain) patrol(p *Player, dt float64) ClientInput {
	var in ClientInput
	b.patrolT -= dt
	if b.patrolT <= 0 {
		b.patrolT = 1 + randFloat()*2
		b.patrolDir = -b.patrolDir
	}
	if b.patrolDir < 0 {
		in.Left = true
	} else {
		in.Right = true
	}
	if p.Body.OnGround && b.stuck(p, dt) {
		in.Jump = true
	}
	return in
}

// stuck reports whether the bot has barely moved while trying to walk.
func (b *botBrain) stuck(p *Player, dt float64) bool {
	x := p.Body.Position.X
	if math.Abs(x-b.lastX) < 0.5 {
		b.stuckT += dt
	} else {
		b.stuckT = 0
	}
	b.lastX = x
	return b.stuckT > 0.4
}
