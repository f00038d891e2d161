package main

import "math"

// Point is a 2D world coordinate. +Y points down.
type Point struct {
	X, Y float64
}

// Size holds rectangle dimensions.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// InfiniteRect returns a rect that contains every finite point.
func InfiniteRect() Rect {
	return Rect{
		Min: Point{X: math.Inf(-1), Y: math.Inf(-1)},
		Max: Point{X: math.Inf(1), Y: math.Inf(1)},
	}
}

// CenteredRect returns the AABB of a width×height box centred on p.
func CenteredRect(p Point, s Size) Rect {
	return Rect{
		Min: Point{X: p.X - s.Width/2, Y: p.Y - s.Height/2},
		Max: Point{X: p.X + s.Width/2, Y: p.Y + s.Height/2},
	}
}

// SegmentRect returns the AABB hull of the segment a→b.
func SegmentRect(a, b Point) Rect {
	return Rect{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// ContainsStrict reports whether p lies inside r. Points exactly on the
// border count as inside; only strictly-outside points fail.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func signOf(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
