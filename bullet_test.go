package main

import (
	"math"
	"testing"
)

func TestBulletHitsNearestEdge(t *testing.T) {
	w := NewWorld(testBounds())
	block := w.CreateStaticBody(500, 0, 100, 100, false)
	b := w.CreateBulletBody(0, 0, Point{X: 1000, Y: 0}, 0, 0)

	events := w.Update(1000)

	var hit *SensorEvent
	for i := range events {
		if events[i].IsHit {
			hit = &events[i]
		}
	}
	if hit == nil {
		t.Fatal("expected a hit event")
	}
	if hit.Target != block {
		t.Error("hit the wrong body")
	}
	if hit.Point.X != 450 || hit.Point.Y != 0 {
		t.Errorf("expected impact on the left edge at (450, 0), got (%v, %v)", hit.Point.X, hit.Point.Y)
	}
	for _, body := range w.Bodies() {
		if body == b {
			t.Error("bullet should be consumed by a static hit")
		}
	}
}

func TestVerticalBulletHitsTopEdge(t *testing.T) {
	w := NewWorld(testBounds())
	w.CreateStaticBody(0, 200, 1000, 40, false)
	b := w.CreateBulletBody(100, 0, Point{X: 0, Y: 1000}, 0, 0)

	events := w.Update(1000)

	var hit *SensorEvent
	for i := range events {
		if events[i].IsHit {
			hit = &events[i]
		}
	}
	if hit == nil {
		t.Fatal("expected a hit event")
	}
	if hit.Point.X != 100 || hit.Point.Y != 180 {
		t.Errorf("expected impact on the floor top at (100, 180), got (%v, %v)", hit.Point.X, hit.Point.Y)
	}
	_ = b
}

func TestBulletSkipsOwner(t *testing.T) {
	w := NewWorld(testBounds())
	near := w.CreateStaticBody(300, 0, 40, 100, false)
	far := w.CreateStaticBody(600, 0, 40, 100, false)
	b := w.CreateBulletBody(0, 0, Point{X: 1000, Y: 0}, near.ID, 0)

	events := w.Update(1000)

	var hit *SensorEvent
	for i := range events {
		if events[i].IsHit {
			hit = &events[i]
		}
	}
	if hit == nil {
		t.Fatal("expected a hit event on the far block")
	}
	if hit.Target != far {
		t.Error("bullet should pass through the body it is exempted from")
	}
	if hit.Point.X != 580 {
		t.Errorf("expected impact at x=580, got %v", hit.Point.X)
	}
	_ = b
}

func TestBulletBudgetExpiry(t *testing.T) {
	w := NewWorld(testBounds())
	b := w.CreateBulletBody(0, 0, Point{X: 1000, Y: 0}, 0, 100)

	events := w.Update(500)

	for _, ev := range events {
		if ev.IsHit {
			t.Error("no targets exist, so no hit should fire")
		}
	}
	for _, body := range w.Bodies() {
		if body == b {
			t.Error("bullet should expire once its travel budget is spent")
		}
	}
}

func TestBulletMissesAboveBlock(t *testing.T) {
	w := NewWorld(testBounds())
	w.CreateStaticBody(500, 100, 100, 100, false)
	b := w.CreateBulletBody(0, 0, Point{X: 1000, Y: 0}, 0, 2000)

	events := w.Update(1000)

	for _, ev := range events {
		if ev.IsHit {
			t.Error("bullet travelling above the block should not hit it")
		}
	}
	_ = b
}

func TestDiagonalBulletPicksNearestCrossing(t *testing.T) {
	w := NewWorld(testBounds())
	block := w.CreateStaticBody(400, 300, 200, 200, false)
	b := w.CreateBulletBody(0, 0, Point{X: 1000, Y: 1000}, 0, 0)
	_ = b

	events := w.Update(2000)

	var hit *SensorEvent
	for i := range events {
		if events[i].IsHit {
			hit = &events[i]
		}
	}
	if hit == nil {
		t.Fatal("expected a hit event")
	}
	if hit.Target != block {
		t.Error("hit the wrong body")
	}
	// The ray y=x enters through the left edge midway between the block's
	// corners; the bottom-edge crossing is farther and must lose.
	if math.Abs(hit.Point.X-300) > 1e-9 || math.Abs(hit.Point.Y-300) > 1e-9 {
		t.Errorf("expected impact at (300, 300), got (%v, %v)", hit.Point.X, hit.Point.Y)
	}
}
