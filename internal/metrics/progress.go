package metrics

// ComputeProgress reports weight-loss progress as a percentage in [0, 100].
// An undefined goal (missing or zero starting/target weight) yields 0, as does
// a zero-width goal where starting equals target. A nil current weight means
// no loss has been logged yet, so progress starts at the starting weight.
// Weight-gain goals (target above starting) produce negative ratios that the
// clamp pins to 0; the formula stays loss-only on purpose.
func ComputeProgress(current, starting, target *float64) float64 {
	if starting == nil || target == nil || *starting == 0 || *target == 0 {
		return 0
	}
	totalLoss := *starting - *target
	if totalLoss == 0 {
		return 0
	}
	cur := *starting
	if current != nil && *current != 0 {
		cur = *current
	}
	currentLoss := *starting - cur
	percentage := currentLoss / totalLoss * 100
	if percentage < 0 {
		return 0
	}
	if percentage > 100 {
		return 100
	}
	return percentage
}

// ComputeBMI derives body-mass index from weight in kilograms and height in
// centimeters. Missing input yields 0.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if weightKg == 0 || heightCm == 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}
