package main

import (
	"math"
	"testing"
)

func TestBounceSettlesOnFloor(t *testing.T) {
	w := NewWorld(testBounds())
	w.CreateStaticBody(0, 200, 1000, 40, false)
	g := w.CreateBounceBody(0, 0, 12, 12, Point{X: 0, Y: -300})

	var lastRebound float64 = math.Inf(-1)
	fixes := 0
	for i := 0; i < 120; i++ {
		before := g.FixCountY
		w.Update(33)
		if g.FixCountY > before {
			fixes++
			mag := math.Abs(g.ReboundSpeed)
			if lastRebound != math.Inf(-1) && mag >= lastRebound {
				t.Errorf("rebound magnitude should decay, %v -> %v", lastRebound, mag)
			}
			lastRebound = mag
		}
	}

	if g.FixCountY != fixCountLimit {
		t.Errorf("vertical fix count should reach %d, got %d", fixCountLimit, g.FixCountY)
	}
	if g.Force.Y != 0 {
		t.Errorf("vertical force should be pinned to zero at rest, got %v", g.Force.Y)
	}
	if math.Abs(g.Position.Y-174) > 1e-6 {
		t.Errorf("body should rest on the floor top, y=%v", g.Position.Y)
	}
	if fixes != fixCountLimit {
		t.Errorf("expected %d counted floor fixes, got %d", fixCountLimit, fixes)
	}
}

func TestBounceWallResponseDecaysAndPins(t *testing.T) {
	b := &Body{Type: BodyBounce, Force: Point{X: 0.4}}

	b.bounceCollision(Point{X: -1, Y: 0})
	if b.Force.X != -0.2 {
		t.Errorf("first wall contact should halve and reflect, got %v", b.Force.X)
	}
	if b.FixCountX != 1 {
		t.Errorf("fix count should be 1, got %d", b.FixCountX)
	}

	b.bounceCollision(Point{X: 1, Y: 0})
	if b.FixCountX != 2 {
		t.Errorf("fix count should be 2, got %d", b.FixCountX)
	}

	b.bounceCollision(Point{X: -1, Y: 0})
	if b.FixCountX != 3 {
		t.Errorf("fix count should be 3, got %d", b.FixCountX)
	}

	b.bounceCollision(Point{X: 1, Y: 0})
	if b.Force.X != 0 {
		t.Errorf("the contact at the limit zeroes the force, got %v", b.Force.X)
	}
	if b.FixCountX != 4 {
		t.Errorf("the X counter tops out one past the limit, got %d", b.FixCountX)
	}

	b.bounceCollision(Point{X: -1, Y: 0})
	if b.FixCountX != 4 {
		t.Errorf("a pinned axis ignores further contacts, got %d", b.FixCountX)
	}
}

func TestBounceCeilingFlipsForce(t *testing.T) {
	b := &Body{Type: BodyBounce, Force: Point{Y: -0.3}, ReboundSpeed: -0.3}

	b.bounceCollision(Point{X: 0, Y: 1})

	if b.Force.Y != 0.3 {
		t.Errorf("a push from below reflects the vertical force, got %v", b.Force.Y)
	}
	if b.FixCountY != 0 {
		t.Errorf("ceiling contacts do not advance the fix count, got %d", b.FixCountY)
	}
}

func TestBounceReboundSequence(t *testing.T) {
	b := &Body{Type: BodyBounce, Force: Point{Y: 0.4}, ReboundSpeed: -0.4}

	b.bounceCollision(Point{X: 0, Y: -1})
	if b.ReboundSpeed != -0.2 || b.Force.Y != -0.2 || b.FixCountY != 1 {
		t.Errorf("after fix 1: rebound=%v force=%v count=%d", b.ReboundSpeed, b.Force.Y, b.FixCountY)
	}

	b.bounceCollision(Point{X: 0, Y: -1})
	if math.Abs(b.ReboundSpeed+0.07) > 1e-12 || b.FixCountY != 2 {
		t.Errorf("after fix 2: rebound=%v count=%d", b.ReboundSpeed, b.FixCountY)
	}

	b.bounceCollision(Point{X: 0, Y: -1})
	if math.Abs(b.ReboundSpeed+0.014) > 1e-12 || b.FixCountY != 3 {
		t.Errorf("after fix 3: rebound=%v count=%d", b.ReboundSpeed, b.FixCountY)
	}

	b.bounceCollision(Point{X: 0, Y: -1})
	if b.Force.Y != 0 || b.MoveDirY != 0 {
		t.Errorf("at the limit the force pins, force=%v dir=%d", b.Force.Y, b.MoveDirY)
	}
	if b.FixCountY != 3 {
		t.Errorf("the Y counter holds at the limit, got %d", b.FixCountY)
	}
}

func TestBounceHorizontalFlightUnderGravity(t *testing.T) {
	w := NewWorld(testBounds())
	g := w.CreateBounceBody(0, 0, 12, 12, Point{X: 200, Y: 0})

	w.Update(99)

	if math.Abs(g.Position.X-0.2*99) > 1e-9 {
		t.Errorf("horizontal travel should be force times time, x=%v", g.Position.X)
	}
	if g.Position.Y <= 0 {
		t.Errorf("gravity should pull the body down, y=%v", g.Position.Y)
	}
}
