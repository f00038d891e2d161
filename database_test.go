package main

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndFetchPlayer(t *testing.T) {
	db := testDB(t)

	id, err := db.CreatePlayer("ana", "ana@example.com", "hash")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := db.GetPlayerByUsername("ana")
	if err != nil || p == nil {
		t.Fatalf("fetch by username: %v %v", p, err)
	}
	if p.ID != id || p.Email != "ana@example.com" || p.PassHash != "hash" {
		t.Errorf("row mismatch: %+v", p)
	}

	byID, err := db.GetPlayerByID(id)
	if err != nil || byID == nil || byID.Username != "ana" {
		t.Errorf("fetch by id failed: %+v %v", byID, err)
	}

	missing, err := db.GetPlayerByUsername("nobody")
	if err != nil || missing != nil {
		t.Errorf("a missing player is nil, nil; got %+v %v", missing, err)
	}

	s, err := db.GetStats(id)
	if err != nil || s == nil {
		t.Fatalf("new players must get a stats row: %v", err)
	}
	if s.Level != 1 || s.XP != 0 {
		t.Errorf("fresh stats should start at level 1 with 0 xp, got %+v", s)
	}
}

func TestUsernameExists(t *testing.T) {
	db := testDB(t)
	db.CreatePlayer("taken", "", "h")

	if ok, _ := db.UsernameExists("taken"); !ok {
		t.Error("existing username should be reported taken")
	}
	if ok, _ := db.UsernameExists("free"); ok {
		t.Error("unused username should be reported free")
	}

	if _, err := db.CreatePlayer("taken", "", "h2"); err == nil {
		t.Error("duplicate usernames must be rejected by the unique index")
	}
}

func TestCreateGuest(t *testing.T) {
	db := testDB(t)
	id, err := db.CreateGuest("Guest_abc123")
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}

	p, err := db.GetPlayerByID(id)
	if err != nil || p == nil {
		t.Fatalf("fetch guest: %v", err)
	}
	if p.PassHash != "" {
		t.Error("guests carry no password hash")
	}
	if s, _ := db.GetStats(id); s == nil {
		t.Error("guests still get a stats row")
	}
}

func TestXPCurve(t *testing.T) {
	if XPForLevel(1) != 0 {
		t.Errorf("level 1 costs nothing, got %d", XPForLevel(1))
	}
	if XPForLevel(2) != 100 {
		t.Errorf("level 2 costs 100, got %d", XPForLevel(2))
	}
	for lvl := 1; lvl < 50; lvl++ {
		if XPForLevel(lvl+1) <= XPForLevel(lvl) {
			t.Fatalf("the curve must be strictly increasing at level %d", lvl)
		}
		if XPToNextLevel(lvl) != XPForLevel(lvl+1)-XPForLevel(lvl) {
			t.Fatalf("next-level delta inconsistent at level %d", lvl)
		}
	}

	for lvl := 1; lvl <= 40; lvl++ {
		if got := CalculateLevel(XPForLevel(lvl)); got != lvl {
			t.Errorf("exact threshold xp should map back to level %d, got %d", lvl, got)
		}
		if lvl > 1 {
			if got := CalculateLevel(XPForLevel(lvl) - 1); got != lvl-1 {
				t.Errorf("one xp short of level %d should stay at %d, got %d", lvl, lvl-1, got)
			}
		}
	}

	if CalculateLevel(1<<40) != 100 {
		t.Error("the level curve caps at 100")
	}
}

func TestUpdateStatsAfterMatch(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("p", "", "h")

	totalXP, level, err := db.UpdateStatsAfterMatch(id, 5, 2, 1, true, 300, 120)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if totalXP != 120 {
		t.Errorf("total xp should accumulate, got %d", totalXP)
	}
	if level != 2 {
		t.Errorf("120 xp crosses the level 2 threshold, got %d", level)
	}

	s, _ := db.GetStats(id)
	if s.Kills != 5 || s.Deaths != 2 || s.Wins != 1 || s.Losses != 0 {
		t.Errorf("match results not folded in: %+v", s)
	}
	if s.Playtime != 300 || s.Level != 2 {
		t.Errorf("playtime/level wrong: %+v", s)
	}

	totalXP, _, err = db.UpdateStatsAfterMatch(id, 0, 3, 0, false, 100, 30)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if totalXP != 150 {
		t.Errorf("xp should keep accumulating, got %d", totalXP)
	}
	s, _ = db.GetStats(id)
	if s.Losses != 1 || s.Deaths != 5 {
		t.Errorf("loss not recorded: %+v", s)
	}
}

func TestLeaderboardOrderingAndGuests(t *testing.T) {
	db := testDB(t)
	a, _ := db.CreatePlayer("alice", "", "h")
	b, _ := db.CreatePlayer("bob", "", "h")
	g, _ := db.CreateGuest("Guest_x")

	db.UpdateStatsAfterMatch(a, 10, 1, 0, true, 60, 500)
	db.UpdateStatsAfterMatch(b, 3, 1, 0, false, 60, 900)
	db.UpdateStatsAfterMatch(g, 99, 0, 0, true, 60, 9999)

	byXP, err := db.GetLeaderboard("xp", 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(byXP) != 2 {
		t.Fatalf("guests must be excluded, got %d rows", len(byXP))
	}
	if byXP[0].Username != "bob" || byXP[0].Rank != 1 {
		t.Errorf("bob leads on xp, got %+v", byXP[0])
	}

	byKills, _ := db.GetLeaderboard("kills", 10)
	if byKills[0].Username != "alice" {
		t.Errorf("alice leads on kills, got %+v", byKills[0])
	}

	bogus, err := db.GetLeaderboard("; DROP TABLE stats", 10)
	if err != nil {
		t.Fatalf("unknown column should fall back, not error: %v", err)
	}
	if len(bogus) != 2 || bogus[0].Username != "bob" {
		t.Error("unknown order column falls back to xp")
	}
}

func TestMatchHistory(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("p", "", "h")

	m1, err := db.RecordMatch(int(ModeFFA), 300, int(TeamNone))
	if err != nil {
		t.Fatalf("record match: %v", err)
	}
	if err := db.RecordMatchPlayer(m1, id, int(TeamNone), 4, 2, 1, 4, 80); err != nil {
		t.Fatalf("record match player: %v", err)
	}
	m2, _ := db.RecordMatch(int(ModeTDM), 240, int(TeamRed))
	db.RecordMatchPlayer(m2, id, int(TeamRed), 1, 5, 0, 1, 20)

	hist, err := db.GetMatchHistory(id, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(hist))
	}
	for _, h := range hist {
		if h.PlayerID != id {
			t.Errorf("history row for the wrong player: %+v", h)
		}
	}

	limited, _ := db.GetMatchHistory(id, 1)
	if len(limited) != 1 {
		t.Errorf("limit should apply, got %d", len(limited))
	}
}

func TestCredits(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("p", "", "h")

	if c, _ := db.GetCredits(id); c != 0 {
		t.Errorf("fresh accounts start broke, got %d", c)
	}
	if c, _ := db.GetCredits(9999); c != 0 {
		t.Errorf("unknown players read as zero, got %d", c)
	}

	db.AddCredits(id, 100)
	ok, err := db.SpendCredits(id, 60)
	if err != nil || !ok {
		t.Fatalf("spend within balance should succeed: %v %v", ok, err)
	}
	if c, _ := db.GetCredits(id); c != 40 {
		t.Errorf("balance after spend should be 40, got %d", c)
	}

	ok, err = db.SpendCredits(id, 41)
	if err != nil {
		t.Fatalf("overdraft is not an error: %v", err)
	}
	if ok {
		t.Error("overdraft must be refused")
	}
	if c, _ := db.GetCredits(id); c != 40 {
		t.Errorf("refused spend must not touch the balance, got %d", c)
	}
}

func TestUnlocks(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("p", "", "h")

	if u, _ := db.GetUnlocks(id); len(u) != 0 {
		t.Errorf("nothing unlocked yet, got %v", u)
	}
	db.AddUnlock(id, "skin_red")
	db.AddUnlock(id, "skin_red")
	db.AddUnlock(id, "trail_fire")

	u, err := db.GetUnlocks(id)
	if err != nil {
		t.Fatalf("get unlocks: %v", err)
	}
	if len(u) != 2 {
		t.Errorf("duplicate purchases collapse, got %v", u)
	}
}

func TestUnlockAchievement(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("p", "", "h")

	fresh, err := db.UnlockAchievement(id, "first_scrap")
	if err != nil || !fresh {
		t.Fatalf("first unlock should report new: %v %v", fresh, err)
	}
	again, err := db.UnlockAchievement(id, "first_scrap")
	if err != nil {
		t.Fatalf("repeat unlock: %v", err)
	}
	if again {
		t.Error("a repeat unlock is not new")
	}

	list, _ := db.GetAchievements(id)
	if len(list) != 1 || list[0] != "first_scrap" {
		t.Errorf("achievement list wrong: %v", list)
	}
}

func TestSettings(t *testing.T) {
	db := testDB(t)

	if v := db.GetSetting("missing"); v != "" {
		t.Errorf("unset keys read as empty, got %q", v)
	}
	db.SetSetting("motd", "welcome")
	if v := db.GetSetting("motd"); v != "welcome" {
		t.Errorf("setting did not stick, got %q", v)
	}
	db.SetSetting("motd", "updated")
	if v := db.GetSetting("motd"); v != "updated" {
		t.Errorf("settings must upsert, got %q", v)
	}
}
