package main

import "math"

const (
	maxStepDelta   = 33.0  // ms per sub-step
	defaultGravity = 0.001 // points/ms^2
	defaultSpeed   = 0.4   // points/ms
)

// SensorEvent is one engine-to-host notification. Exactly one of the three
// shapes is populated: out-of-world (Body), sensor overlap (BodyA/BodyB), or
// bullet hit (Bullet/Target/Point).
type SensorEvent struct {
	IsOutWorld bool
	Body       *Body

	BodyA *Body
	BodyB *Body

	IsHit  bool
	Bullet *Body
	Target *Body
	Point  Point
}

// World owns the body list, the removal queue, and the broad-phase grid.
// One world belongs to one goroutine for its lifetime.
type World struct {
	Bounds  Rect
	Gravity float64

	bodies   []*Body
	toRemove []*Body
	grid     *Grid
	nextID   int
}

// NewWorld creates an empty world. Pass InfiniteRect for unbounded play.
func NewWorld(bounds Rect) *World {
	return &World{
		Bounds:  bounds,
		Gravity: defaultGravity,
		grid:    NewGrid(),
	}
}

// Bodies returns the live body list in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

func (w *World) addBody(b *Body) *Body {
	w.nextID++
	b.ID = w.nextID
	w.bodies = append(w.bodies, b)
	return b
}

// CreateStaticBody adds level geometry centred on (x, y). Sensors report
// overlaps instead of blocking.
func (w *World) CreateStaticBody(x, y, width, height float64, isSensor bool) *Body {
	b := &Body{
		Type:     BodyStatic,
		Position: Point{X: x, Y: y},
		Size:     Size{Width: width, Height: height},
		IsSensor: isSensor,
	}
	b.Bounds = CenteredRect(b.Position, b.Size)
	return w.addBody(b)
}

// CreatePlayerBody adds a player at (x, y). Zero moveSpeed and jumpDistance
// select the defaults (0.4 points/ms and 1.1 heights).
func (w *World) CreatePlayerBody(x, y, width, height, moveSpeed, jumpDistance float64) *Body {
	if moveSpeed == 0 {
		moveSpeed = defaultSpeed
	}
	if jumpDistance == 0 {
		jumpDistance = height * 1.1
	}
	b := &Body{
		Type:         BodyPlayer,
		Position:     Point{X: x, Y: y},
		Size:         Size{Width: width, Height: height},
		NormalBounds: Rect{Min: Point{X: -width / 2, Y: -height / 2}, Max: Point{X: width / 2, Y: height / 2}},
		MoveSpeed:    moveSpeed,
		JumpDistance: jumpDistance,
		Gravity:      w.Gravity,
		JumpCoef:     math.Sqrt(jumpDistance / w.Gravity),
		JumpTimer:    timerOff,
		FallTimer:    timerOff,
	}
	b.refreshBounds()
	return w.addBody(b)
}

// CreateBounceBody adds an elastic body launched with force in points/second.
func (w *World) CreateBounceBody(x, y, width, height float64, force Point) *Body {
	b := &Body{
		Type:         BodyBounce,
		Position:     Point{X: x, Y: y},
		Size:         Size{Width: width, Height: height},
		NormalBounds: Rect{Min: Point{X: -width / 2, Y: -height / 2}, Max: Point{X: width / 2, Y: height / 2}},
		Force:        Point{X: force.X / 1000, Y: force.Y / 1000},
		Gravity:      w.Gravity,
	}
	b.ReboundSpeed = -math.Abs(b.Force.Y)
	b.MoveDirY = signOf(b.Force.Y)
	b.refreshBounds()
	return w.addBody(b)
}

// CreateBulletBody adds a ray body. ownerID exempts one body from being hit;
// a non-zero lifeDistance caps total travel in points.
func (w *World) CreateBulletBody(x, y float64, force Point, ownerID int, lifeDistance float64) *Body {
	b := &Body{
		Type:         BodyBullet,
		Position:     Point{X: x, Y: y},
		PrevPosition: Point{X: x, Y: y},
		Force:        Point{X: force.X / 1000, Y: force.Y / 1000},
		OwnerID:      ownerID,
		LifeBudget:   lifeDistance,
		IsUpdated:    true,
	}
	b.Coefs = computeCoefs(b.Position, b.Force)
	b.Bounds = SegmentRect(b.Position, b.Position)
	return w.addBody(b)
}

// RemoveBody schedules removal for the next purge. Repeat calls and calls
// for bodies not in the world are no-ops.
func (w *World) RemoveBody(b *Body) {
	for _, q := range w.toRemove {
		if q == b {
			return
		}
	}
	w.toRemove = append(w.toRemove, b)
}

// Update advances the world by delta milliseconds, splitting the interval
// into sub-steps of at most 33 ms, and returns the sensor events from every
// sub-step in order.
func (w *World) Update(delta float64) []SensorEvent {
	var events []SensorEvent
	for delta > 0 {
		d := math.Min(delta, maxStepDelta)
		events = append(events, w.step(d)...)
		delta -= d
	}
	return events
}

func (w *World) step(delta float64) []SensorEvent {
	var events []SensorEvent

	// Integrate and flag escapes.
	for _, b := range w.bodies {
		if b.Type == BodyStatic {
			continue
		}
		b.update(delta, w)
		if !w.Bounds.ContainsStrict(b.Position) {
			events = append(events, SensorEvent{IsOutWorld: true, Body: b})
			w.RemoveBody(b)
		}
	}

	w.purge()

	w.grid.Update(w.bodies)

	sensorEvents, bullets, contacts := detect(w.grid.Pairs())
	events = append(events, sensorEvents...)
	for _, bt := range bullets {
		if ev, ok := resolveBullet(bt, w); ok {
			events = append(events, ev)
		}
	}

	for _, c := range contacts {
		resolveContact(c)
	}

	w.afterUpdate()
	w.purge()
	return events
}

// purge drains the removal queue out of the body list and the grid.
func (w *World) purge() {
	for _, r := range w.toRemove {
		for i, b := range w.bodies {
			if b == r {
				w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
				break
			}
		}
		w.grid.RemoveBody(r)
	}
	w.toRemove = w.toRemove[:0]
}

// afterUpdate arms the fall timer on any airborne player that has neither a
// jump nor a fall in progress.
func (w *World) afterUpdate() {
	for _, b := range w.bodies {
		if b.Type != BodyPlayer {
			continue
		}
		if !b.OnGround && b.JumpTimer == timerOff && b.FallTimer == timerOff {
			b.FallTimer = 0
			b.LastGroundY = b.Position.Y
		}
	}
}
