package main

// HealZone is a sensor area that heals players standing inside it. The
// engine reports the overlap every tick, so the zone accumulates fractional
// healing between whole HP points.
type HealZone struct {
	Body *Body
	Rate float64 // HP/s

	accum map[string]float64
}

// HealTick credits dt seconds of healing to the player and applies whole
// HP points as they accumulate.
func (hz *HealZone) HealTick(p *Player, dt float64) {
	if hz.accum == nil {
		hz.accum = make(map[string]float64)
	}
	hz.accum[p.ID] += hz.Rate * dt
	whole := int(hz.accum[p.ID])
	if whole > 0 {
		p.Heal(whole)
		hz.accum[p.ID] -= float64(whole)
	}
}
