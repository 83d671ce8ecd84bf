package models

import "fmt"

// Winner is the outcome of comparing one stat
type Winner int

const (
	WinnerTie Winner = iota
	WinnerLeft
	WinnerRight
)

func (w Winner) String() string {
	switch w {
	case WinnerLeft:
		return "left"
	case WinnerRight:
		return "right"
	default:
		return "tie"
	}
}

// MarshalText encodes the winner as "left", "right" or "tie"
func (w Winner) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText decodes "left", "right" or "tie"
func (w *Winner) UnmarshalText(b []byte) error {
	switch string(b) {
	case "left":
		*w = WinnerLeft
	case "right":
		*w = WinnerRight
	case "tie":
		*w = WinnerTie
	default:
		return fmt.Errorf("unknown winner %q", b)
	}
	return nil
}

// StatResult is the comparison of a single stat key
type StatResult struct {
	Key    StatKey `json:"key"`
	Label  string  `json:"label"`
	Left   int     `json:"left"`
	Right  int     `json:"right"`
	Winner Winner  `json:"winner"`
}

// Comparison holds per-stat results in StatKeys order
type Comparison struct {
	Results [5]StatResult `json:"results"`
}

// Winner returns the result for key, tie for an unknown key
func (c Comparison) Winner(key StatKey) Winner {
	for _, r := range c.Results {
		if r.Key == key {
			return r.Winner
		}
	}
	return WinnerTie
}

// Tally counts won stats per side
type Tally struct {
	Left  int `json:"left"`
	Right int `json:"right"`
	Ties  int `json:"ties"`
}

// Tally counts how many stats each side won
func (c Comparison) Tally() Tally {
	var t Tally
	for _, r := range c.Results {
		switch r.Winner {
		case WinnerLeft:
			t.Left++
		case WinnerRight:
			t.Right++
		default:
			t.Ties++
		}
	}
	return t
}

// ChartDataset is one player's series on the radar chart
type ChartDataset struct {
	Name   string `json:"name"`
	Values [5]int `json:"values"`
	Color  string `json:"color"`
	Fill   string `json:"fill"`
}

// ChartSpec is the chart-ready projection of a comparison
type ChartSpec struct {
	Type     string         `json:"type"`
	Labels   [5]string      `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}
