package units

import "math"

// InstantTurnRate is the turn rate, in degrees per second, of units that
// face a new heading in a single frame.
const InstantTurnRate = 999.8437

// fasterSpeed scales normal-speed game data to the faster game speed.
const fasterSpeed = 1.4

// Unit type ids with a slower turn than InstantTurnRate, in degrees per
// second at normal speed.
var turnRates = map[int]float64{
	4:   720, // Colossus
	10:  360, // Mothership
	33:  360, // Siege tank
	52:  360, // Thor
	57:  720, // Battlecruiser
	79:  720, // Carrier
	109: 720, // Ultralisk
	114: 720, // Brood lord
	496: 720, // Tempest
}

// TurnSpeed returns how fast a unit of type unitType turns, in radians per
// second at faster game speed. Types without an entry turn at
// InstantTurnRate.
func TurnSpeed(unitType int) float64 {
	deg, ok := turnRates[unitType]
	if !ok {
		deg = InstantTurnRate
	}

	return deg * fasterSpeed * math.Pi / 180
}
