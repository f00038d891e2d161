package main

import (
	"math"
	"strconv"
	"strings"
)

// regionShift gives 512-point square regions.
const regionShift = 9

// Pair is one broad-phase candidate. Count tracks how many regions both
// bodies currently share; the pair dies when the count reaches zero.
type Pair struct {
	Key   string
	A, B  *Body
	Count int
}

// Grid is a sparse region hash. Pairs are kept both keyed and in insertion
// order so narrow-phase iteration is stable across runs.
type Grid struct {
	hash    map[string][]*Body
	pairs   map[string]*Pair
	ordered []*Pair
}

func NewGrid() *Grid {
	return &Grid{
		hash:  make(map[string][]*Body),
		pairs: make(map[string]*Pair),
	}
}

func regionCoord(v float64) int {
	return int(math.Floor(v)) >> regionShift
}

func regionKey(sx, sy int) string {
	return strconv.Itoa(sx) + ":" + strconv.Itoa(sy)
}

func pairKey(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return strconv.Itoa(a) + ":" + strconv.Itoa(b)
}

// regionsFor lists the region keys covered by bounds, scanning rows top to
// bottom and columns left to right so the joined form is canonical.
func (g *Grid) regionsFor(bounds Rect) []string {
	sxMin := regionCoord(bounds.Min.X)
	sxMax := regionCoord(bounds.Max.X)
	syMin := regionCoord(bounds.Min.Y)
	syMax := regionCoord(bounds.Max.Y)

	regions := make([]string, 0, (sxMax-sxMin+1)*(syMax-syMin+1))
	for sy := syMin; sy <= syMax; sy++ {
		for sx := sxMin; sx <= sxMax; sx++ {
			regions = append(regions, regionKey(sx, sy))
		}
	}
	return regions
}

// Update registers first-time bodies and re-indexes moved ones. Statics are
// indexed once and never migrate.
func (g *Grid) Update(bodies []*Body) {
	for _, b := range bodies {
		if len(b.Regions) == 0 {
			g.register(b)
			continue
		}
		if b.Type == BodyStatic || !b.IsUpdated {
			continue
		}
		if b.Type != BodyBullet {
			b.IsUpdated = false
		}
		regions := g.regionsFor(b.Bounds)
		joined := strings.Join(regions, ",")
		if joined == b.RegionsString {
			continue
		}
		g.reindex(b, regions, joined)
	}
}

func (g *Grid) register(b *Body) {
	regions := g.regionsFor(b.Bounds)
	for _, r := range regions {
		list := g.hash[r]
		for _, other := range list {
			if canCollide(b, other) {
				g.addPair(b, other)
			}
		}
		g.hash[r] = append(list, b)
	}
	b.Regions = regions
	b.RegionsString = strings.Join(regions, ",")
}

// reindex moves the body from its old region set to the new one, adjusting
// pair counts only in the regions that actually changed.
func (g *Grid) reindex(b *Body, newRegions []string, joined string) {
	newSet := make(map[string]bool, len(newRegions))
	for _, r := range newRegions {
		newSet[r] = true
	}
	oldSet := make(map[string]bool, len(b.Regions))
	for _, r := range b.Regions {
		oldSet[r] = true
	}

	for _, r := range b.Regions {
		if newSet[r] {
			continue
		}
		list := g.spliceOut(r, b)
		for _, other := range list {
			g.dropPair(b, other)
		}
	}
	for _, r := range newRegions {
		if oldSet[r] {
			continue
		}
		list := g.hash[r]
		for _, other := range list {
			if canCollide(b, other) {
				g.addPair(b, other)
			}
		}
		g.hash[r] = append(list, b)
	}

	b.Regions = newRegions
	b.RegionsString = joined
}

// RemoveBody pulls the body out of every region it occupies and releases its
// share of every pair count. The body ends up looking unregistered.
func (g *Grid) RemoveBody(b *Body) {
	for _, r := range b.Regions {
		list := g.spliceOut(r, b)
		for _, other := range list {
			g.dropPair(b, other)
		}
	}
	b.Regions = nil
	b.RegionsString = ""
}

// spliceOut removes b from region r's list and returns the remaining list.
func (g *Grid) spliceOut(r string, b *Body) []*Body {
	list := g.hash[r]
	for i, other := range list {
		if other == b {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(g.hash, r)
	} else {
		g.hash[r] = list
	}
	return list
}

func (g *Grid) addPair(a, b *Body) {
	key := pairKey(a.ID, b.ID)
	if p, ok := g.pairs[key]; ok {
		p.Count++
		return
	}
	p := &Pair{Key: key, A: a, B: b, Count: 1}
	g.pairs[key] = p
	g.ordered = append(g.ordered, p)
}

func (g *Grid) dropPair(a, b *Body) {
	key := pairKey(a.ID, b.ID)
	p, ok := g.pairs[key]
	if !ok {
		return
	}
	p.Count--
	if p.Count > 0 {
		return
	}
	delete(g.pairs, key)
	for i, q := range g.ordered {
		if q == p {
			g.ordered = append(g.ordered[:i], g.ordered[i+1:]...)
			break
		}
	}
}

// Pairs returns the live candidate pairs in creation order.
func (g *Grid) Pairs() []*Pair {
	return g.ordered
}
