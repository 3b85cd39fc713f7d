package gamemath

import "math"

// Sign returns -1, 0 or 1. Zero maps to zero, unlike a facing direction.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// ClampFloat clamps v to [lo, hi]. When lo > hi the lower limit wins.
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// MovementForce returns the horizontal force that accelerates currentSpeed
// toward targetSpeed. accel is used while a target speed is requested, decel
// while coasting to a stop. power shapes the response to the speed gap; the
// sign of the gap is preserved.
func MovementForce(targetSpeed, currentSpeed, accel, decel, power float64) float64 {
	gap := targetSpeed - currentSpeed
	rate := decel
	if math.Abs(targetSpeed) > 0.01 {
		rate = accel
	}
	return math.Pow(math.Abs(gap)*rate, power) * Sign(gap)
}
