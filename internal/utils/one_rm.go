package utils

// CalculateEpley1RM estimates a one rep max from a weight lifted for reps.
func CalculateEpley1RM(weight float64, reps int) float64 {
	if reps == 0 {
		return 0
	}

	return weight * (1 + float64(reps)/30)
}
