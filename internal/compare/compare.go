// Package compare derives per-stat winners and the radar chart projection
// for a pair of players.
package compare

import "github.com/aaronzipp/player-compare/internal/models"

// Slot colors. The left slot is always green and the right slot gold,
// whichever player occupies it.
const (
	LeftColor  = "#22c55e"
	LeftFill   = "rgba(34,197,94,0.3)"
	RightColor = "#eab308"
	RightFill  = "rgba(234,179,8,0.3)"
)

// ChartType is the chart kind used for comparisons
const ChartType = "radar"

// Compare returns the winner of every stat key. A side wins only with a strictly greater value.
func Compare(left, right models.Player) models.Comparison {
	var c models.Comparison
	for i, k := range models.StatKeys {
		l, r := left.Stats.Value(k), right.Stats.Value(k)
		w := models.WinnerTie
		switch {
		case l > r:
			w = models.WinnerLeft
		case l < r:
			w = models.WinnerRight
		}
		c.Results[i] = models.StatResult{Key: k, Label: k.Label(), Left: l, Right: r, Winner: w}
	}
	return c
}

// Project builds the chart dataset for left and right in StatKeys order
func Project(left, right models.Player) models.ChartSpec {
	return models.ChartSpec{
		Type:   ChartType,
		Labels: Labels(),
		Datasets: []models.ChartDataset{
			{Name: left.Name, Values: left.Stats.Values(), Color: LeftColor, Fill: LeftFill},
			{Name: right.Name, Values: right.Stats.Values(), Color: RightColor, Fill: RightFill},
		},
	}
}

// Labels returns the chart axis labels
func Labels() [5]string {
	var out [5]string
	for i, k := range models.StatKeys {
		out[i] = k.Label()
	}
	return out
}
