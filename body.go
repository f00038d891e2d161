package main

// BodyType tags the four body variants.
type BodyType int

const (
	BodyStatic BodyType = iota
	BodyPlayer
	BodyBounce
	BodyBullet
)

func (t BodyType) String() string {
	switch t {
	case BodyStatic:
		return "static"
	case BodyPlayer:
		return "player"
	case BodyBounce:
		return "bounce"
	case BodyBullet:
		return "bullet"
	}
	return "unknown"
}

const timerOff = -1

// bulletCoefs caches the bullet's line equation a·x + b·y + c = 0 as the
// four ratios used by the edge probes, so each intersection is two multiplies.
type bulletCoefs struct {
	AB, BA, CA, CB float64
}

// Body is a tagged variant: the common header is live for every type, the
// variant fields only for the type named in the comment.
type Body struct {
	ID       int
	Type     BodyType
	Position Point
	Bounds   Rect
	UserData any

	// Broad-phase registration state. Regions is empty until the body first
	// passes through the grid; RegionsString is the comma-joined cache used
	// as a cheap inequality probe.
	Regions       []string
	RegionsString string
	IsUpdated     bool

	// Contact bodies (static, player, bounce).
	Size         Size
	NormalBounds Rect // origin-centred half-extents

	// Static.
	IsSensor bool

	// Player.
	MoveSpeed    float64 // points/ms
	JumpDistance float64
	Gravity      float64
	JumpCoef     float64 // sqrt(JumpDistance/Gravity), half-period of the arc
	LastGroundY  float64
	ForceX       float64
	MoveDirY     int // -1 up, 0, 1 down
	OnGround     bool
	JumpInitDir  int
	JumpTimer    float64 // ms since jump start, timerOff when inactive
	FallTimer    float64 // ms since fall start, timerOff when inactive

	// Bounce (Force and Gravity shared with bullet/player respectively).
	Force        Point // points/ms
	ReboundSpeed float64
	FixCountX    int
	FixCountY    int

	// Bullet.
	PrevPosition Point
	OwnerID      int
	LifeBudget   float64 // total travel allowance in points, 0 = unlimited
	Traveled     float64
	Coefs        bulletCoefs
}

// canCollide is the broad-phase pair filter: same-type pairs never collide,
// bounce bodies only meet statics, and a bullet never meets its owner.
func canCollide(a, b *Body) bool {
	if a.Type == b.Type {
		return false
	}
	if a.Type == BodyBounce && b.Type != BodyStatic {
		return false
	}
	if b.Type == BodyBounce && a.Type != BodyStatic {
		return false
	}
	if a.Type == BodyBullet && a.OwnerID != 0 && a.OwnerID == b.ID {
		return false
	}
	if b.Type == BodyBullet && b.OwnerID != 0 && b.OwnerID == a.ID {
		return false
	}
	return true
}

// SetPosition snaps the body to p. Bounds refresh on the next step.
func (b *Body) SetPosition(p Point) {
	b.Position = p
	b.IsUpdated = true
}

func (b *Body) refreshBounds() {
	b.Bounds = Rect{
		Min: Point{X: b.Position.X + b.NormalBounds.Min.X, Y: b.Position.Y + b.NormalBounds.Min.Y},
		Max: Point{X: b.Position.X + b.NormalBounds.Max.X, Y: b.Position.Y + b.NormalBounds.Max.Y},
	}
}

// update advances the body by delta milliseconds. Bodies that expire during
// integration enqueue themselves on the world's removal queue.
func (b *Body) update(delta float64, w *World) {
	switch b.Type {
	case BodyBullet:
		b.updateBullet(delta, w)
	case BodyBounce:
		b.updateBounce(delta)
	case BodyPlayer:
		b.updatePlayer(delta)
	}
}

// updateCollision applies the per-type response to a positional correction.
func (b *Body) updateCollision(correction Point) {
	switch b.Type {
	case BodyPlayer:
		b.playerCollision(correction)
	case BodyBounce:
		b.bounceCollision(correction)
	}
}
