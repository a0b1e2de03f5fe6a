package combat

import "github.com/udisondev/skirmish/internal/data"

// Score returns the points for beating the enemy at loc: the location's base
// score, doubled when the enemy was strong.
func Score(loc data.Location, strong bool) int {
	if strong {
		return loc.BaseScore * 2
	}
	return loc.BaseScore
}

// FinalScore is Score for a victory and 0 for a defeat.
func FinalScore(loc data.Location, strong bool, out Outcome) int {
	if !out.Victory {
		return 0
	}
	return Score(loc, strong)
}
