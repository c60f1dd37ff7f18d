package engine

// EnemyKind is a closed enum of enemy archetypes. Damage, speed, score and
// sprite lookups switch exhaustively over it.
type EnemyKind int

const (
	Grunt EnemyKind = iota
	Scout
	Brute
)

// String returns the lowercase archetype name.
func (k EnemyKind) String() string {
	switch k {
	case Grunt:
		return "grunt"
	case Scout:
		return "scout"
	case Brute:
		return "brute"
	default:
		return "grunt"
	}
}

// healthMult scales the difficulty base health per kind.
func (k EnemyKind) healthMult() float64 {
	switch k {
	case Scout:
		return 0.7
	case Brute:
		return 1.5
	default:
		return 1.0
	}
}

// speedMult scales the difficulty base speed per kind.
func (k EnemyKind) speedMult() float64 {
	switch k {
	case Scout:
		return 1.28
	case Brute:
		return 0.78
	default:
		return 1.0
	}
}

// radius is the collision/hit radius in world units per kind.
func (k EnemyKind) radius() float64 {
	switch k {
	case Scout:
		return 12
	case Brute:
		return 22
	default:
		return 16
	}
}

// bulletDamage is the damage one player bullet deals to this kind.
func (k EnemyKind) bulletDamage() float64 {
	switch k {
	case Brute:
		return 28
	default:
		return 35
	}
}

// score is the score awarded for killing this kind.
func (k EnemyKind) score() int {
	switch k {
	case Scout:
		return 12
	case Brute:
		return 15
	default:
		return 10
	}
}

// Player is the simulation's player body. Mutated in place every tick.
type Player struct {
	X, Y   float64
	Angle  float64
	Health int
}

// Enemy is one live hostile. The engine owns the slice of live enemies;
// removal is by swap with the last element.
type Enemy struct {
	X, Y      float64
	Radius    float64
	Health    float64
	Kind      EnemyKind
	Cooldown  float64 // contact damage cooldown
	Phase     float64 // motion phase for sprite animation
	HitFlash  float64 // remaining hit-flash time
	speedMult float64
}

// Bullet is a live projectile. Destroyed on impact or life expiry.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Life   float64
}

// ImpactKind tags the cosmetic impact effect type.
type ImpactKind int

const (
	WallHit ImpactKind = iota
	EnemyHit
)

// Impact is a transient cosmetic effect; its radius grows as it fades.
type Impact struct {
	X, Y   float64
	Radius float64
	Life   float64
	Kind   ImpactKind
}
