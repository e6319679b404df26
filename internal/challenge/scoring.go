package challenge

// Score returns the points for resolving a challenge of the given difficulty
// with the drawn quantity. A nil quantity counts as 1. Tracked challenges
// score with their drawn round count as the quantity.
func Score(d Difficulty, quantity *int) int {
	n := 1
	if quantity != nil {
		n = *quantity
	}
	return n * d.Multiplier()
}
