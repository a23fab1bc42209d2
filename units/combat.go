package units

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/spatial/geometry"
	"github.com/katalvlaran/spatial/grid"
)

// RangeVsTarget returns u's weapon range against target: air range for a
// flying target, ground range otherwise, or 0 when u cannot attack it.
func RangeVsTarget(u, target Unit) float64 {
	if target.IsFlying {
		if u.CanAttackAir {
			return u.AirRange
		}
		return 0
	}
	if u.CanAttackGround {
		return u.GroundRange
	}

	return 0
}

// InAttackRange returns the targets u can attack from where it stands, with
// the edge-to-edge range extended by bonus. Targets u cannot attack at all
// are skipped. The count never decreases as bonus grows.
func InAttackRange(u Unit, targets []Unit, bonus float64) []Unit {
	var out []Unit
	for _, t := range targets {
		r := RangeVsTarget(u, t)
		if r <= 0 {
			continue
		}
		reach := u.Radius + t.Radius + r + bonus
		if geometry.DistanceSquared(u.Position, t.Position) <= reach*reach {
			out = append(out, t)
		}
	}

	return out
}

// IsFacing reports whether u.Facing points at other within angleError
// radians. Use DefaultFacingError for the usual tolerance.
func IsFacing(u, other Unit, angleError float64) bool {
	heading := geometry.AngleTo(u.Position, other.Position)

	return geometry.AngleDiff(u.Facing, heading) < angleError
}

// AttackReady reports whether u should commit to attacking target now.
//
// Behavior:
//   - weapon off cooldown: ready.
//   - out of range: ready when walking into range at Speed takes at least
//     the remaining cooldown.
//   - in range with the weapon cooling down: not ready.
func AttackReady(u, target Unit) bool {
	if u.WeaponCooldown <= 0 {
		return true
	}
	gap := geometry.Distance(u.Position, target.Position) - u.Radius - target.Radius - RangeVsTarget(u, target)
	if gap <= 0 || u.Speed <= 0 {
		return false
	}

	return gap/u.Speed >= u.WeaponCooldown/FramesPerSecond
}

// PickEnemyTarget returns the enemy with the lowest Health+Shield; the
// lowest tag wins ties.
func PickEnemyTarget(enemies []Unit) (Unit, error) {
	if len(enemies) == 0 {
		return Unit{}, ErrNoUnits
	}
	best := enemies[0]
	for _, e := range enemies[1:] {
		eh, bh := e.Health+e.Shield, best.Health+best.Shield
		if eh < bh || (eh == bh && e.Tag < best.Tag) {
			best = e
		}
	}

	return best, nil
}

// FindAOEPosition returns the target position whose radius covers the most
// targets, and whether that cover reaches minUnits. Members of bonusTags count
// twice. The first best position wins ties.
func FindAOEPosition(radius float64, targets []Unit, minUnits int, bonusTags mapset.Set[uint64]) (grid.Point, bool, error) {
	if len(targets) == 0 {
		return grid.Point{}, false, ErrNoUnits
	}
	limit := radius * radius
	best, bestScore := 0, math.MinInt
	for i, c := range targets {
		score := 0
		for _, t := range targets {
			if geometry.DistanceSquared(c.Position, t.Position) > limit {
				continue
			}
			score++
			if bonusTags.Has(t.Tag) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	return targets[best].Position, bestScore >= minUnits, nil
}
