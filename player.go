package main

const (
	respawnDelay = 3.0 // seconds
)

// Player is the game-layer view of one participant. The physics body is
// owned by the world; Body is nil while the player is dead.
type Player struct {
	ID    string
	Name  string
	Class PlayerClass
	Team  int
	IsBot bool

	Body *Body

	HP       int
	MaxHP    int
	Alive    bool
	RespawnT float64 // seconds until respawn, counts down while dead

	Facing    int // -1 left, 1 right
	AimX      float64
	AimY      float64
	FireCD    float64
	GrenadeCD float64
	Grenades  int

	Score   int
	Kills   int
	Deaths  int
	Assists int

	// Per-match feat counters, reset when a match starts.
	GrenadeKills int
	CrateCracks  int
	BotKills     int
	HPRestored   int

	lastHitBy string // player id of the most recent damage source

	input ClientInput
	brain *botBrain

	AuthPlayerID int64
}

// NewPlayer creates a player shell. The body is attached on spawn.
func NewPlayer(id, name string, class PlayerClass, team int) *Player {
	def := GetClassDef(class)
	return &Player{
		ID:       id,
		Name:     name,
		Class:    class,
		Team:     team,
		MaxHP:    def.MaxHP,
		HP:       def.MaxHP,
		Facing:   1,
		Grenades: def.Grenades,
	}
}

// Spawn attaches a fresh physics body at (x, y) and restores class state.
func (p *Player) Spawn(w *World, x, y float64) {
	def := GetClassDef(p.Class)
	p.Body = w.CreatePlayerBody(x, y, def.Width, def.Height, def.MoveSpeed/1000, def.JumpDistance)
	p.Body.UserData = p
	p.HP = def.MaxHP
	p.MaxHP = def.MaxHP
	p.Alive = true
	p.Grenades = def.Grenades
	p.FireCD = 0
	p.lastHitBy = ""
}

// Kill detaches the body and starts the respawn countdown. The caller
// removes the body from the world.
func (p *Player) Kill() {
	p.Body = nil
	p.Alive = false
	p.RespawnT = respawnDelay
	p.Deaths++
}

// TakeDamage applies damage and returns true if the player died.
func (p *Player) TakeDamage(damage int, sourceID string) bool {
	if !p.Alive {
		return false
	}
	p.HP -= damage
	if sourceID != "" {
		p.lastHitBy = sourceID
	}
	return p.HP <= 0
}

// Heal restores HP up to the class maximum and counts the points that
// actually landed.
func (p *Player) Heal(amount int) {
	if !p.Alive {
		return
	}
	restored := amount
	if p.HP+amount > p.MaxHP {
		restored = p.MaxHP - p.HP
	}
	p.HP += restored
	p.HPRestored += restored
}

// SetInput replaces the held-key state used by applyInput.
func (p *Player) SetInput(in ClientInput) {
	p.input = in
}

// applyInput drives the physics body from the held keys. Fire and grenade
// are handled by the game, which owns cooldowns and spawning.
func (p *Player) applyInput() {
	if p.Body == nil {
		return
	}
	switch {
	case p.input.Left && !p.input.Right:
		p.Body.Move(-1)
		p.Facing = -1
	case p.input.Right && !p.input.Left:
		p.Body.Move(1)
		p.Facing = 1
	default:
		p.Body.Stop()
	}
	if p.input.Jump {
		p.Body.Jump()
	}
	if p.input.AimX != 0 || p.input.AimY != 0 {
		p.AimX = p.input.AimX
		p.AimY = p.input.AimY
	}
}

// ToState converts to protocol state.
func (p *Player) ToState() PlayerState {
	s := PlayerState{
		ID:     p.ID,
		Name:   p.Name,
		HP:     p.HP,
		MaxHP:  p.MaxHP,
		Class:  int(p.Class),
		Team:   p.Team,
		Score:  p.Score,
		Facing: p.Facing,
		Alive:  p.Alive,
		Bot:    p.IsBot,
	}
	if p.Body != nil {
		s.X = round1(p.Body.Position.X)
		s.Y = round1(p.Body.Position.Y)
		s.OnGround = p.Body.OnGround
	}
	return s
}
