package main

import (
	"testing"

	"pgregory.net/rapid"
)

// mirrorWorlds builds two identical scenes and returns the paired handles.
func mirrorWorlds() (w1, w2 *World, p1, p2 *Body) {
	build := func() (*World, *Body) {
		w := NewWorld(Rect{Min: Point{X: -10000, Y: -10000}, Max: Point{X: 10000, Y: 10000}})
		w.CreateStaticBody(0, 200, 20000, 40, false)
		w.CreateStaticBody(300, 60, 200, 20, false)
		p := w.CreatePlayerBody(0, 0, 20, 40, 0, 90)
		return w, p
	}
	w1, p1 = build()
	w2, p2 = build()
	return
}

func TestReplayDeterminism(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w1, w2, p1, p2 := mirrorWorlds()

		ops := rapid.SliceOfN(rapid.IntRange(0, 4), 1, 60).Draw(rt, "ops")
		for i, op := range ops {
			apply := func(w *World, p *Body) []SensorEvent {
				switch op {
				case 0:
					p.Move(1)
				case 1:
					p.Move(-1)
				case 2:
					p.Stop()
				case 3:
					p.Jump()
				case 4:
					w.CreateBulletBody(p.Position.X, p.Position.Y-10, Point{X: 800, Y: -100}, p.ID, 600)
				}
				return w.Update(16.7)
			}

			e1 := apply(w1, p1)
			e2 := apply(w2, p2)

			if p1.Position != p2.Position {
				rt.Fatalf("op %d: positions diverged %+v vs %+v", i, p1.Position, p2.Position)
			}
			if p1.OnGround != p2.OnGround {
				rt.Fatalf("op %d: ground flags diverged", i)
			}
			if len(e1) != len(e2) {
				rt.Fatalf("op %d: event counts diverged %d vs %d", i, len(e1), len(e2))
			}
			for j := range e1 {
				if e1[j].IsHit != e2[j].IsHit || e1[j].IsOutWorld != e2[j].IsOutWorld {
					rt.Fatalf("op %d: event %d kind diverged", i, j)
				}
				if e1[j].Point != e2[j].Point {
					rt.Fatalf("op %d: hit points diverged %+v vs %+v", i, e1[j].Point, e2[j].Point)
				}
			}
			if len(w1.Bodies()) != len(w2.Bodies()) {
				rt.Fatalf("op %d: body counts diverged %d vs %d", i, len(w1.Bodies()), len(w2.Bodies()))
			}
		}
	})
}

func TestPlayerNeverSinksBelowFloor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := NewWorld(Rect{Min: Point{X: -10000, Y: -10000}, Max: Point{X: 10000, Y: 10000}})
		w.CreateStaticBody(0, 200, 20000, 40, false)
		p := w.CreatePlayerBody(0, 0, 20, 40, 0, 90)
		w.Update(500)
		if !p.OnGround {
			rt.Fatal("setup: player failed to land")
		}

		ops := rapid.SliceOfN(rapid.IntRange(0, 3), 1, 80).Draw(rt, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				p.Move(1)
			case 1:
				p.Move(-1)
			case 2:
				p.Stop()
			case 3:
				p.Jump()
			}
			w.Update(16.7)
			if p.Position.Y > 160+1e-9 {
				rt.Fatalf("player sank below the ground line, y=%v", p.Position.Y)
			}
		}
	})
}

func TestPairCountsMatchSharedRegions(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := NewGrid()
		player := gridBody(1, BodyPlayer, 0, 0, 20, 40)
		floor := gridBody(2, BodyStatic, -600, 400, 900, 440)
		wall := gridBody(3, BodyStatic, 400, -200, 700, 600)
		bodies := []*Body{player, floor, wall}
		g.Update(bodies)

		moves := rapid.SliceOfN(rapid.IntRange(-800, 800), 1, 40).Draw(rt, "moves")
		for _, m := range moves {
			x := float64(m)
			player.Bounds = Rect{Min: Point{X: x, Y: 0}, Max: Point{X: x + 20, Y: 40}}
			player.IsUpdated = true
			g.Update(bodies)

			for _, pair := range g.Pairs() {
				shared := 0
				seen := make(map[string]bool, len(pair.A.Regions))
				for _, r := range pair.A.Regions {
					seen[r] = true
				}
				for _, r := range pair.B.Regions {
					if seen[r] {
						shared++
					}
				}
				if pair.Count != shared {
					rt.Fatalf("pair %s count %d but %d shared regions", pair.Key, pair.Count, shared)
				}
			}
		}
	})
}
