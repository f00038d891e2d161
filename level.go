package main

// Arenas are code-defined. All geometry sits on integer coordinates so the
// broad phase's region arithmetic stays exact.

// BlockDef is one solid rectangle of level geometry, centre + size.
type BlockDef struct {
	X, Y, W, H float64
}

// ZoneDef is a sensor rectangle with a heal rate.
type ZoneDef struct {
	X, Y, W, H float64
	Rate       float64 // HP/s
}

// Arena describes a playable level.
type Arena struct {
	Name   string
	Width  float64
	Height float64

	Blocks []BlockDef
	Zones  []ZoneDef

	// Spawns[TeamNone] serves FFA; red and blue get their own lists.
	Spawns [3][]Point

	// Supply crates drop from this Y across [CrateMinX, CrateMaxX].
	CrateDropY           float64
	CrateMinX, CrateMaxX float64
}

// Foundry is the default arena: a floor, three platform tiers and two side
// walls. +Y is down, so the floor has the largest Y.
var Foundry = Arena{
	Name:   "foundry",
	Width:  2400,
	Height: 1200,
	Blocks: []BlockDef{
		{X: 1200, Y: 1180, W: 2400, H: 40}, // floor
		{X: 20, Y: 600, W: 40, H: 1200},    // left wall
		{X: 2380, Y: 600, W: 40, H: 1200},  // right wall
		{X: 500, Y: 900, W: 400, H: 30},    // low tier
		{X: 1900, Y: 900, W: 400, H: 30},
		{X: 1200, Y: 700, W: 500, H: 30}, // mid tier
		{X: 300, Y: 500, W: 300, H: 30},  // high tier
		{X: 2100, Y: 500, W: 300, H: 30},
		{X: 1200, Y: 350, W: 300, H: 30}, // crown
	},
	Zones: []ZoneDef{
		{X: 1200, Y: 1130, W: 200, H: 60, Rate: 5},
	},
	Spawns: [3][]Point{
		TeamNone: {
			{X: 300, Y: 1100}, {X: 2100, Y: 1100},
			{X: 500, Y: 840}, {X: 1900, Y: 840},
			{X: 1200, Y: 640},
		},
		TeamRed: {
			{X: 200, Y: 1100}, {X: 400, Y: 1100}, {X: 300, Y: 440},
		},
		TeamBlue: {
			{X: 2200, Y: 1100}, {X: 2000, Y: 1100}, {X: 2100, Y: 440},
		},
	},
	CrateDropY: -100,
	CrateMinX:  200,
	CrateMaxX:  2200,
}

const killMargin = 400 // points below the arena before an escape counts

// WorldBounds returns the escape envelope for the arena. Everything strictly
// outside counts as out of the world.
func (a *Arena) WorldBounds() Rect {
	return Rect{
		Min: Point{X: -killMargin, Y: -2 * killMargin},
		Max: Point{X: a.Width + killMargin, Y: a.Height + killMargin},
	}
}

// Build creates the arena's static bodies in the world and returns the heal
// zone sensors keyed by body id.
func (a *Arena) Build(w *World) map[int]*HealZone {
	for _, b := range a.Blocks {
		w.CreateStaticBody(b.X, b.Y, b.W, b.H, false)
	}
	zones := make(map[int]*HealZone, len(a.Zones))
	for _, z := range a.Zones {
		body := w.CreateStaticBody(z.X, z.Y, z.W, z.H, true)
		hz := &HealZone{Body: body, Rate: z.Rate}
		body.UserData = hz
		zones[body.ID] = hz
	}
	return zones
}

// SpawnPoint picks a spawn for the team, cycling through the list. FFA
// players draw from the neutral list.
func (a *Arena) SpawnPoint(team, seq int) Point {
	list := a.Spawns[TeamNone]
	if team == TeamRed || team == TeamBlue {
		if len(a.Spawns[team]) > 0 {
			list = a.Spawns[team]
		}
	}
	return list[seq%len(list)]
}
