package gamemath

import "math"

// minSmoothTime keeps SmoothDamp from dividing by zero.
const minSmoothTime = 0.0001

// SmoothDamp moves current toward target with a critically damped spring that
// never overshoots. velocity carries state between calls and must be owned by
// the caller. smoothTime is roughly the time to reach the target. maxSpeed
// limits the rate of change; pass math.Inf(1) for no limit.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTarget := target

	maxChange := maxSpeed * smoothTime
	change = ClampFloat(change, -maxChange, maxChange)
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * decay
	output := target + (change+temp)*decay

	// Snap instead of overshooting.
	if (originalTarget-current > 0) == (output > originalTarget) {
		output = originalTarget
		*velocity = (output - originalTarget) / dt
	}
	return output
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + Sign(target-current)*maxDelta
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
