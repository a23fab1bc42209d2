package units

import (
	"errors"

	"github.com/katalvlaran/spatial/grid"
)

// ErrNoUnits indicates an operation that needs at least one unit got none.
var ErrNoUnits = errors.New("units: no units")

// FramesPerSecond converts WeaponCooldown frames to seconds.
const FramesPerSecond = 22.4

// DefaultFacingError is the IsFacing tolerance in radians.
const DefaultFacingError = 0.3

// Unit is the snapshot of one unit the helpers read.
type Unit struct {
	Tag      uint64
	Position grid.Point
	Radius   float64

	GroundRange     float64
	AirRange        float64
	CanAttackGround bool
	CanAttackAir    bool
	IsFlying        bool

	Facing         float64 // radians
	Health, Shield float64
	WeaponCooldown float64 // frames until the next attack
	Speed          float64 // cells per second
	BuildProgress  float64 // 0..1, 1 once construction finishes
}
