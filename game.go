package main

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // physics ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate

	tickMillis = 1000.0 / TickRate

	maxBulletsPerSession = 400
)

// Broadcaster is the client surface the game needs
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game holds the state for one session: the physics world, the match state
// machine, and the entity maps layered over the world's bodies.
type Game struct {
	mu    sync.RWMutex
	arena *Arena
	world *World
	match MatchState

	players     map[string]*Player
	clients     map[string]Broadcaster // playerID -> client
	controllers map[string]Broadcaster // playerID -> phone controller

	zones    map[int]*HealZone // static body id -> zone
	crates   map[string]*Crate
	grenades map[string]*Grenade
	pickups  map[string]*Pickup

	crateTimer float64
	elapsed    float64 // seconds of playing phase
	tick       uint64
	running    bool
	stop       chan struct{}

	db        *DB
	analytics *Analytics
	sessionID string
}

// NewGame creates a game for the given mode on the default arena.
func NewGame(mode GameMode, db *DB, analytics *Analytics, sessionID string) *Game {
	arena := &Foundry
	world := NewWorld(arena.WorldBounds())
	g := &Game{
		arena:       arena,
		world:       world,
		match:       NewMatchState(DefaultConfig(mode)),
		players:     make(map[string]*Player),
		clients:     make(map[string]Broadcaster),
		controllers: make(map[string]Broadcaster),
		crates:      make(map[string]*Crate),
		grenades:    make(map[string]*Grenade),
		pickups:     make(map[string]*Pickup),
		stop:        make(chan struct{}),
		db:          db,
		analytics:   analytics,
		sessionID:   sessionID,
	}
	g.zones = arena.Build(world)
	return g
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// AddPlayer adds a new player to the game. Returns nil when full.
func (g *Game) AddPlayer(name string, class PlayerClass) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.players) >= g.match.Config.MaxPlayers {
		return nil
	}

	id := GenerateID(4)
	team := g.match.AssignTeam(g.players)
	p := NewPlayer(id, name, class, team)
	g.players[id] = p

	spawn := g.match.NextSpawn(g.arena, team)
	p.Spawn(g.world, spawn.X, spawn.Y)
	return p
}

// AddBot adds a server-driven player. Returns nil when full.
func (g *Game) AddBot(name string, class PlayerClass) *Player {
	p := g.AddPlayer(name, class)
	if p == nil {
		return nil
	}
	g.mu.Lock()
	p.IsBot = true
	p.brain = newBotBrain()
	g.mu.Unlock()
	return p
}

// RemovePlayer removes a player and their body from the game
func (g *Game) RemovePlayer(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if p, ok := g.players[id]; ok && p.Body != nil {
		g.world.RemoveBody(p.Body)
	}
	delete(g.players, id)
	delete(g.clients, id)
	delete(g.controllers, id)
	delete(g.match.ReadyPlayers, id)
}

// SetClient associates a broadcaster with a player
func (g *Game) SetClient(playerID string, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[playerID] = client
}

// SetController attaches a phone controller and notifies the desktop
func (g *Game) SetController(playerID string, client Broadcaster) {
	g.mu.Lock()
	g.controllers[playerID] = client
	desktop := g.clients[playerID]
	g.mu.Unlock()
	if desktop != nil {
		desktop.SendJSON(Envelope{T: MsgCtrlOn})
	}
}

// RemoveController detaches a phone controller and notifies the desktop
func (g *Game) RemoveController(playerID string) {
	g.mu.Lock()
	delete(g.controllers, playerID)
	desktop := g.clients[playerID]
	g.mu.Unlock()
	if desktop != nil {
		desktop.SendJSON(Envelope{T: MsgCtrlOff})
	}
}

// HasPlayer reports whether the player id is in this game
func (g *Game) HasPlayer(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.players[id]
	return ok
}

// PlayerCount returns the number of human players
func (g *Game) PlayerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, p := range g.players {
		if !p.IsBot {
			n++
		}
	}
	return n
}

// HandleInput stores the latest held-key state for a player
func (g *Game) HandleInput(playerID string, input ClientInput) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if p, ok := g.players[playerID]; ok {
		p.SetInput(input)
	}
}

// HandleReady marks a lobby player ready; all ready starts the countdown
func (g *Game) HandleReady(playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.match.Phase != PhaseLobby {
		return
	}
	g.match.ReadyPlayers[playerID] = true
	if g.match.AllReady(g.players) {
		g.match.Phase = PhaseCountdown
		g.match.CountdownT = countdownTime
		g.broadcastMatch()
	}
}

// HandleTeamPick switches a lobby player's team
func (g *Game) HandleTeamPick(playerID string, team int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.match.Phase != PhaseLobby || !g.match.Config.IsTeamMode() {
		return
	}
	if team != TeamRed && team != TeamBlue {
		return
	}
	if p, ok := g.players[playerID]; ok {
		p.Team = team
	}
}

// HandleRematch returns the session to the lobby from the result screen
func (g *Game) HandleRematch(playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.match.Phase != PhaseResult {
		return
	}
	g.toLobby()
}

// update runs one game tick
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	dt := 1.0 / float64(TickRate)
	g.tick++

	g.updatePhase(dt)
	g.updatePlayers(dt)

	events := g.world.Update(tickMillis)
	g.handleEvents(events, dt)

	g.updateGrenades(dt)
	g.updateCrates(dt)
	g.updatePickups(dt)

	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

func (g *Game) updatePhase(dt float64) {
	switch g.match.Phase {
	case PhaseCountdown:
		g.match.CountdownT -= dt
		if g.match.CountdownT <= 0 {
			g.startMatch()
		}
	case PhasePlaying:
		g.elapsed += dt
		if g.match.Config.TimeLimit > 0 {
			g.match.TimeLeft -= dt
		}
		if (g.match.Config.TimeLimit > 0 && g.match.TimeLeft <= 0) ||
			g.match.ScoreReached(g.players) {
			g.endMatch()
		}
	case PhaseResult:
		g.match.ResultTimer -= dt
		if g.match.ResultTimer <= 0 {
			g.toLobby()
		}
	}
}

func (g *Game) updatePlayers(dt float64) {
	bulletCount := g.liveBullets()
	for _, p := range g.players {
		if !p.Alive {
			p.RespawnT -= dt
			if p.RespawnT <= 0 {
				spawn := g.match.NextSpawn(g.arena, p.Team)
				p.Spawn(g.world, spawn.X, spawn.Y)
			}
			continue
		}

		if p.IsBot {
			p.SetInput(p.brain.think(g, p, dt))
		}

		p.FireCD -= dt
		p.GrenadeCD -= dt
		p.applyInput()

		def := GetClassDef(p.Class)
		if p.input.Fire && p.FireCD <= 0 && bulletCount < maxBulletsPerSession {
			FireBullet(g.world, p, def.BulletSpeed, def.BulletDamage)
			p.FireCD = def.FireCD
			bulletCount++
		}
		if p.input.Grenade && p.GrenadeCD <= 0 && p.Grenades > 0 {
			gr := ThrowGrenade(g.world, p)
			g.grenades[gr.ID] = gr
			p.Grenades--
			p.GrenadeCD = grenadeCooldown
		}
	}
}

// handleEvents consumes the sensor events from one physics step
func (g *Game) handleEvents(events []SensorEvent, dt float64) {
	for _, ev := range events {
		switch {
		case ev.IsOutWorld:
			g.handleOutWorld(ev.Body)
		case ev.IsHit:
			g.handleHit(ev)
		default:
			g.handleOverlap(ev.BodyA, ev.BodyB, dt)
		}
	}
}

func (g *Game) handleOutWorld(body *Body) {
	switch e := body.UserData.(type) {
	case *Player:
		// The engine already removed the body.
		g.killPlayer(e, g.players[e.lastHitBy])
	case *Crate:
		delete(g.crates, e.ID)
	case *Grenade:
		delete(g.grenades, e.ID)
	}
}

func (g *Game) handleHit(ev SensorEvent) {
	shot, ok := ev.Bullet.UserData.(*Shot)
	if !ok {
		return
	}
	switch target := ev.Target.UserData.(type) {
	case *Player:
		if target.TakeDamage(shot.Damage, shot.OwnerID) {
			g.world.RemoveBody(target.Body)
			killer := g.players[shot.OwnerID]
			if shot.Grenade && killer != nil && killer != target {
				killer.GrenadeKills++
			}
			g.killPlayer(target, killer)
		}
	case *Crate:
		if target.Alive {
			target.Crack()
			pos := target.Body.Position
			g.world.RemoveBody(target.Body)
			delete(g.crates, target.ID)
			pk := NewPickup(g.world, pos.X, pos.Y)
			g.pickups[pk.ID] = pk
			if p, ok := g.players[shot.OwnerID]; ok {
				p.CrateCracks++
			}
		}
	}
}

func (g *Game) handleOverlap(a, b *Body, dt float64) {
	sensor, other := a, b
	if !sensor.IsSensor {
		sensor, other = b, a
	}
	p, ok := other.UserData.(*Player)
	if !ok || !p.Alive {
		return
	}
	switch e := sensor.UserData.(type) {
	case *Pickup:
		if e.Alive {
			e.Alive = false
			p.Heal(e.Heal)
			g.world.RemoveBody(e.Body)
			delete(g.pickups, e.ID)
		}
	case *HealZone:
		e.HealTick(p, dt)
	}
}

// killPlayer finalises a death: credit, scoring, notifications
func (g *Game) killPlayer(victim *Player, killer *Player) {
	if !victim.Alive {
		return
	}
	victim.Kill()

	kid, kname := "", ""
	if killer != nil && killer != victim {
		killer.Kills++
		killer.Score++
		if victim.IsBot {
			killer.BotKills++
		}
		if g.match.Config.IsTeamMode() && killer.Team != TeamNone {
			g.match.TeamScores[killer.Team]++
		}
		kid, kname = killer.ID, killer.Name
		if g.analytics != nil {
			g.analytics.Track(EvtPlayerKill, killer.AuthPlayerID, g.sessionID, "")
		}
	}
	if g.analytics != nil {
		g.analytics.Track(EvtPlayerDeath, victim.AuthPlayerID, g.sessionID, "")
	}

	g.broadcastMsg(Envelope{T: MsgKill, Data: KillMsg{
		KillerID: kid, KillerName: kname,
		VictimID: victim.ID, VictimName: victim.Name,
	}})
	if client, ok := g.clients[victim.ID]; ok {
		client.SendJSON(Envelope{T: MsgDeath, Data: DeathMsg{KillerID: kid, KillerName: kname}})
	}
}

func (g *Game) updateGrenades(dt float64) {
	for id, gr := range g.grenades {
		gr.Fuse -= dt
		if gr.Settled() || gr.Fuse <= 0 {
			gr.Burst(g.world)
			g.world.RemoveBody(gr.Body)
			delete(g.grenades, id)
		}
	}
}

func (g *Game) updateCrates(dt float64) {
	if g.match.Phase != PhasePlaying {
		return
	}
	g.crateTimer -= dt
	if g.crateTimer <= 0 && len(g.crates) < maxCrates {
		c := NewCrate(g.world, g.arena)
		g.crates[c.ID] = c
		g.crateTimer = crateInterval
	}
}

func (g *Game) updatePickups(dt float64) {
	for id, pk := range g.pickups {
		if !pk.Update(dt) {
			g.world.RemoveBody(pk.Body)
			delete(g.pickups, id)
		}
	}
}

func (g *Game) liveBullets() int {
	n := 0
	for _, b := range g.world.Bodies() {
		if b.Type == BodyBullet {
			n++
		}
	}
	return n
}

// startMatch resets scores and respawns everyone
func (g *Game) startMatch() {
	g.match.Phase = PhasePlaying
	g.match.TimeLeft = g.match.Config.TimeLimit
	g.match.TeamScores = [3]int{}
	g.match.WinnerTeam = TeamNone
	g.match.WinnerID = ""
	g.elapsed = 0

	for _, p := range g.players {
		p.Score, p.Kills, p.Deaths, p.Assists = 0, 0, 0, 0
		p.GrenadeKills, p.CrateCracks, p.BotKills, p.HPRestored = 0, 0, 0, 0
		if p.Body != nil {
			g.world.RemoveBody(p.Body)
		}
		spawn := g.match.NextSpawn(g.arena, p.Team)
		p.Spawn(g.world, spawn.X, spawn.Y)
	}

	if g.analytics != nil {
		g.analytics.Track(EvtMatchStart, 0, g.sessionID,
			fmt.Sprintf(`{"mode":%d}`, g.match.Config.Mode))
	}
	g.broadcastMatch()
	log.Printf("session %s: match started (mode %d)", g.sessionID, g.match.Config.Mode)
}

// endMatch decides the winner, persists stats and shows the result screen
func (g *Game) endMatch() {
	g.match.DecideWinner(g.players)
	g.match.Phase = PhaseResult
	g.match.ResultTimer = resultTime

	g.persistResults()

	if g.analytics != nil {
		g.analytics.Track(EvtMatchEnd, 0, g.sessionID,
			fmt.Sprintf(`{"mode":%d,"duration":%.0f}`, g.match.Config.Mode, g.elapsed))
	}
	g.broadcastMatch()
	log.Printf("session %s: match ended after %.0fs", g.sessionID, g.elapsed)
}

func (g *Game) toLobby() {
	g.match = NewMatchState(g.match.Config)
	g.broadcastMatch()
}

// persistResults records the match and per-player stats for authed players
func (g *Game) persistResults() {
	if g.db == nil {
		return
	}
	matchID, err := g.db.RecordMatch(int(g.match.Config.Mode), g.elapsed, g.match.WinnerTeam)
	if err != nil {
		log.Printf("record match: %v", err)
		return
	}
	for _, p := range g.players {
		if p.AuthPlayerID == 0 {
			continue
		}
		won := g.playerWon(p)
		xp := 10*p.Kills + 2*p.Assists
		if won {
			xp += 50
		}
		if err := g.db.RecordMatchPlayer(matchID, p.AuthPlayerID, p.Team, p.Kills, p.Deaths, p.Assists, p.Score, xp); err != nil {
			log.Printf("record match player: %v", err)
		}
		if _, _, err := g.db.UpdateStatsAfterMatch(p.AuthPlayerID, p.Kills, p.Deaths, p.Assists, won, g.elapsed, xp); err != nil {
			log.Printf("update stats: %v", err)
			continue
		}
		credits := CreditsPerMatch(p.Kills, p.Assists, won)
		if err := g.db.AddCredits(p.AuthPlayerID, credits); err != nil {
			log.Printf("add credits: %v", err)
		}
		summary := MatchSummary{
			Kills:        p.Kills,
			Deaths:       p.Deaths,
			GrenadeKills: p.GrenadeKills,
			CrateCracks:  p.CrateCracks,
			BotKills:     p.BotKills,
			HPRestored:   p.HPRestored,
			Won:          won,
		}
		for _, def := range CheckAchievements(g.db, p.AuthPlayerID, summary) {
			if g.analytics != nil {
				g.analytics.Track(EvtAchievement, p.AuthPlayerID, g.sessionID,
					fmt.Sprintf(`{"id":%q}`, def.ID))
			}
			if client, ok := g.clients[p.ID]; ok {
				client.SendJSON(Envelope{T: MsgUnlock, Data: UnlockMsg{ID: def.ID, Name: def.Name}})
			}
		}
	}
}

func (g *Game) playerWon(p *Player) bool {
	if g.match.Config.IsTeamMode() {
		return p.Team == g.match.WinnerTeam && g.match.WinnerTeam != TeamNone
	}
	return p.ID == g.match.WinnerID
}

// broadcastState sends the msgpack-encoded tick state to every client
func (g *Game) broadcastState() {
	state := GameState{
		Players:  make([]PlayerState, 0, len(g.players)),
		Bullets:  make([]BulletState, 0, 16),
		Crates:   make([]CrateState, 0, len(g.crates)),
		Grenades: make([]GrenadeState, 0, len(g.grenades)),
		Pickups:  make([]PickupState, 0, len(g.pickups)),
		Phase:    int(g.match.Phase),
		TimeLeft: g.match.TimeLeft,
		Tick:     g.tick,
	}
	for _, p := range g.players {
		state.Players = append(state.Players, p.ToState())
	}
	for _, b := range g.world.Bodies() {
		if b.Type == BodyBullet {
			state.Bullets = append(state.Bullets, BulletState{
				ID: b.ID,
				X:  round1(b.Position.X), Y: round1(b.Position.Y),
				PX: round1(b.PrevPosition.X), PY: round1(b.PrevPosition.Y),
			})
		}
	}
	for _, c := range g.crates {
		state.Crates = append(state.Crates, c.ToState())
	}
	for _, gr := range g.grenades {
		state.Grenades = append(state.Grenades, gr.ToState())
	}
	for _, pk := range g.pickups {
		state.Pickups = append(state.Pickups, pk.ToState())
	}

	data, err := msgpack.Marshal(&state)
	if err != nil {
		log.Printf("state marshal: %v", err)
		return
	}
	for _, client := range g.clients {
		client.SendBinary(data)
	}
	for _, ctrl := range g.controllers {
		ctrl.SendBinary(data)
	}
}

func (g *Game) broadcastMatch() {
	g.broadcastMsg(Envelope{T: MsgMatch, Data: MatchMsg{
		Phase:      int(g.match.Phase),
		Mode:       int(g.match.Config.Mode),
		TimeLeft:   g.match.TimeLeft,
		WinnerTeam: g.match.WinnerTeam,
		WinnerID:   g.match.WinnerID,
	}})
}

// broadcastMsg sends a control message to all clients in the session
func (g *Game) broadcastMsg(msg Envelope) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	for _, client := range g.clients {
		if raw, ok := client.(interface{ SendRaw([]byte) }); ok {
			raw.SendRaw(data)
		} else {
			client.SendJSON(msg)
		}
	}
}
