package main

// PlayerClass identifies a character class
type PlayerClass int

const (
	ClassScout   PlayerClass = 0
	ClassSoldier PlayerClass = 1
	ClassHeavy   PlayerClass = 2
	ClassSupport PlayerClass = 3
)

// ClassDef holds the tuning for a character class. Speeds are points per
// second; the engine converts on ingest.
type ClassDef struct {
	MaxHP        int
	MoveSpeed    float64 // points/s
	JumpDistance float64 // points, 0 = engine default
	Width        float64
	Height       float64
	FireCD       float64 // seconds between shots
	BulletSpeed  float64 // points/s
	BulletDamage int
	Grenades     int
}

var Classes = [4]ClassDef{
	// Scout: fast, fragile, rapid fire
	{
		MaxHP: 60, MoveSpeed: 520, JumpDistance: 110,
		Width: 18, Height: 36,
		FireCD: 0.12, BulletSpeed: 1400, BulletDamage: 10,
		Grenades: 1,
	},
	// Soldier: balanced
	{
		MaxHP: 100, MoveSpeed: 400, JumpDistance: 90,
		Width: 20, Height: 40,
		FireCD: 0.2, BulletSpeed: 1200, BulletDamage: 18,
		Grenades: 2,
	},
	// Heavy: slow, tanky, hard hitting
	{
		MaxHP: 180, MoveSpeed: 280, JumpDistance: 70,
		Width: 26, Height: 44,
		FireCD: 0.45, BulletSpeed: 1000, BulletDamage: 32,
		Grenades: 3,
	},
	// Support: medium, extra pickups value
	{
		MaxHP: 120, MoveSpeed: 380, JumpDistance: 90,
		Width: 20, Height: 40,
		FireCD: 0.25, BulletSpeed: 1100, BulletDamage: 14,
		Grenades: 2,
	},
}

// GetClassDef returns the definition for a class, defaulting to Soldier
// for out-of-range values.
func GetClassDef(class PlayerClass) ClassDef {
	if class < 0 || int(class) >= len(Classes) {
		return Classes[ClassSoldier]
	}
	return Classes[class]
}
