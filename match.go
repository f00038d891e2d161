package main

// MatchPhase represents the lifecycle of a match
type MatchPhase int

const (
	PhaseLobby     MatchPhase = 0
	PhaseCountdown MatchPhase = 1
	PhasePlaying   MatchPhase = 2
	PhaseResult    MatchPhase = 3
)

// GameMode defines the type of match
type GameMode int

const (
	ModeFFA GameMode = 0
	ModeTDM GameMode = 1
)

// TeamID constants
const (
	TeamNone = 0
	TeamRed  = 1
	TeamBlue = 2
)

const (
	countdownTime = 3.0  // seconds
	resultTime    = 10.0 // seconds before returning to lobby
)

// MatchConfig holds the settings for a match
type MatchConfig struct {
	Mode       GameMode
	TimeLimit  float64 // seconds
	ScoreLimit int
	MaxPlayers int
}

// DefaultConfig returns the default config for the given mode
func DefaultConfig(mode GameMode) MatchConfig {
	switch mode {
	case ModeTDM:
		return MatchConfig{
			Mode:       ModeTDM,
			TimeLimit:  240,
			ScoreLimit: 30,
			MaxPlayers: 12,
		}
	default:
		return MatchConfig{
			Mode:       ModeFFA,
			TimeLimit:  300,
			ScoreLimit: 20,
			MaxPlayers: 12,
		}
	}
}

// IsTeamMode returns whether the game mode uses teams
func (c MatchConfig) IsTeamMode() bool {
	return c.Mode == ModeTDM
}

// MatchState holds the current match state
type MatchState struct {
	Phase        MatchPhase
	Config       MatchConfig
	TeamScores   [3]int
	TimeLeft     float64
	CountdownT   float64
	ResultTimer  float64
	ReadyPlayers map[string]bool
	WinnerTeam   int
	WinnerID     string
	spawnSeq     int
}

// NewMatchState creates a fresh lobby for the given config
func NewMatchState(config MatchConfig) MatchState {
	return MatchState{
		Phase:        PhaseLobby,
		Config:       config,
		TimeLeft:     config.TimeLimit,
		ReadyPlayers: make(map[string]bool),
	}
}

// AssignTeam auto-balances a new player onto the smaller team
func (ms *MatchState) AssignTeam(players map[string]*Player) int {
	if !ms.Config.IsTeamMode() {
		return TeamNone
	}
	red, blue := 0, 0
	for _, p := range players {
		switch p.Team {
		case TeamRed:
			red++
		case TeamBlue:
			blue++
		}
	}
	if red <= blue {
		return TeamRed
	}
	return TeamBlue
}

// NextSpawn hands out spawn points round-robin per arena list
func (ms *MatchState) NextSpawn(a *Arena, team int) Point {
	ms.spawnSeq++
	return a.SpawnPoint(team, ms.spawnSeq)
}

// AllReady reports whether every listed player has readied up
func (ms *MatchState) AllReady(players map[string]*Player) bool {
	if len(players) == 0 {
		return false
	}
	for id, p := range players {
		if p.IsBot {
			continue
		}
		if !ms.ReadyPlayers[id] {
			return false
		}
	}
	return true
}

// ScoreReached reports whether any side has hit the score limit
func (ms *MatchState) ScoreReached(players map[string]*Player) bool {
	if ms.Config.ScoreLimit <= 0 {
		return false
	}
	if ms.Config.IsTeamMode() {
		return ms.TeamScores[TeamRed] >= ms.Config.ScoreLimit ||
			ms.TeamScores[TeamBlue] >= ms.Config.ScoreLimit
	}
	for _, p := range players {
		if p.Score >= ms.Config.ScoreLimit {
			return true
		}
	}
	return false
}

// DecideWinner records the winning team or player for the result screen
func (ms *MatchState) DecideWinner(players map[string]*Player) {
	if ms.Config.IsTeamMode() {
		switch {
		case ms.TeamScores[TeamRed] > ms.TeamScores[TeamBlue]:
			ms.WinnerTeam = TeamRed
		case ms.TeamScores[TeamBlue] > ms.TeamScores[TeamRed]:
			ms.WinnerTeam = TeamBlue
		default:
			ms.WinnerTeam = TeamNone
		}
		return
	}
	best := -1
	for id, p := range players {
		if p.Score > best {
			best = p.Score
			ms.WinnerID = id
		}
	}
}
