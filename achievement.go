package main

// MatchSummary collects one player's feats from a single match. The
// per-match counters live on Player and are reset when a match starts.
type MatchSummary struct {
	Kills        int
	Deaths       int
	GrenadeKills int
	CrateCracks  int
	BotKills     int
	HPRestored   int
	Won          bool
}

// AchievementDef pairs an achievement with the condition that earns it.
// Earned sees the player's lifetime stats and the match just played.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Earned      func(s *StatsRow, m MatchSummary) bool
}

var Achievements = []AchievementDef{
	{"first_scrap", "First Scrap", "Score your first kill",
		func(s *StatsRow, m MatchSummary) bool { return s.Kills >= 1 }},
	{"demolitionist", "Demolitionist", "Take out three players with grenades in one match",
		func(s *StatsRow, m MatchSummary) bool { return m.GrenadeKills >= 3 }},
	{"crate_cracker", "Crate Cracker", "Shoot open five supply crates in one match",
		func(s *StatsRow, m MatchSummary) bool { return m.CrateCracks >= 5 }},
	{"field_dressing", "Field Dressing", "Recover 300 HP in a single match",
		func(s *StatsRow, m MatchSummary) bool { return m.HPRestored >= 300 }},
	{"exterminator", "Exterminator", "Put down eight bots in one match",
		func(s *StatsRow, m MatchSummary) bool { return m.BotKills >= 8 }},
	{"untouchable", "Untouchable", "Win a match without dying",
		func(s *StatsRow, m MatchSummary) bool { return m.Won && m.Deaths == 0 }},
	{"scrap_lord", "Scrap Lord", "Reach 250 lifetime kills",
		func(s *StatsRow, m MatchSummary) bool { return s.Kills >= 250 }},
	{"decorated", "Decorated", "Win 15 matches",
		func(s *StatsRow, m MatchSummary) bool { return s.Wins >= 15 }},
	{"seasoned", "Seasoned", "Reach level 15",
		func(s *StatsRow, m MatchSummary) bool { return s.Level >= 15 }},
	{"shift_worker", "Shift Worker", "Clock two hours in the arena",
		func(s *StatsRow, m MatchSummary) bool { return s.Playtime >= 7200 }},
}

// CheckAchievements evaluates every definition against the player's
// lifetime stats and the finished match, persisting and returning the ones
// newly earned. Call after UpdateStatsAfterMatch so lifetime thresholds see
// the match just played.
func CheckAchievements(db *DB, playerID int64, m MatchSummary) []AchievementDef {
	if db == nil {
		return nil
	}
	stats, err := db.GetStats(playerID)
	if err != nil || stats == nil {
		return nil
	}
	owned, err := db.GetAchievements(playerID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(owned))
	for _, id := range owned {
		has[id] = true
	}

	var earned []AchievementDef
	for _, def := range Achievements {
		if has[def.ID] || !def.Earned(stats, m) {
			continue
		}
		if fresh, err := db.UnlockAchievement(playerID, def.ID); err == nil && fresh {
			earned = append(earned, def)
		}
	}
	return earned
}
