package chart

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aaronzipp/player-compare/internal/models"
	"github.com/aaronzipp/player-compare/internal/region"
)

func testSpec() models.ChartSpec {
	return models.ChartSpec{
		Type:   "radar",
		Labels: [5]string{"Goals", "Pace", "Dribbling", "Passing", "Physical"},
		Datasets: []models.ChartDataset{
			{Name: "A", Values: [5]int{1, 2, 3, 4, 5}, Color: "#22c55e", Fill: "rgba(34,197,94,0.3)"},
			{Name: "B", Values: [5]int{5, 4, 3, 2, 1}, Color: "#eab308", Fill: "rgba(234,179,8,0.3)"},
		},
	}
}

func TestCanvasNew(t *testing.T) {
	page := region.NewPage("radarChart")
	c := NewCanvas(page, "radarChart")

	h, err := c.New(testSpec())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Live() != 1 {
		t.Errorf("Live = %d, want 1", c.Live())
	}

	var cfg struct {
		Type string `json:"type"`
		Data struct {
			Labels   []string `json:"labels"`
			Datasets []struct {
				Label       string `json:"label"`
				Data        []int  `json:"data"`
				BorderColor string `json:"borderColor"`
			} `json:"datasets"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(page.Attr("radarChart", AttrConfig)), &cfg); err != nil {
		t.Fatalf("canvas config is not JSON: %v", err)
	}
	if cfg.Type != "radar" || len(cfg.Data.Labels) != 5 || len(cfg.Data.Datasets) != 2 {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.Data.Datasets[1].Label != "B" || cfg.Data.Datasets[1].Data[0] != 5 || cfg.Data.Datasets[1].BorderColor != "#eab308" {
		t.Errorf("dataset B = %+v", cfg.Data.Datasets[1])
	}
	if page.Attr("radarChart", AttrID) != "1" {
		t.Errorf("chart id = %q", page.Attr("radarChart", AttrID))
	}

	h.Dispose()
	h.Dispose()
	if c.Live() != 0 {
		t.Errorf("Live after double dispose = %d", c.Live())
	}
	if page.Attr("radarChart", AttrConfig) != "" {
		t.Error("dispose should clear the canvas config")
	}
}

func TestCanvasRecreateNeverLeaks(t *testing.T) {
	page := region.NewPage("radarChart")
	c := NewCanvas(page, "radarChart")

	var h Handle
	for i := 0; i < 50; i++ {
		if h != nil {
			h.Dispose()
		}
		var err error
		h, err = c.New(testSpec())
		if err != nil {
			t.Fatalf("New #%d: %v", i, err)
		}
		if c.Live() > 1 {
			t.Fatalf("iteration %d: %d live charts", i, c.Live())
		}
	}
	if page.Attr("radarChart", AttrID) != "50" {
		t.Errorf("chart id = %q, want 50", page.Attr("radarChart", AttrID))
	}
}

func TestStaleDisposeKeepsCurrent(t *testing.T) {
	page := region.NewPage("radarChart")
	c := NewCanvas(page, "radarChart")

	old, _ := c.New(testSpec())
	_, _ = c.New(testSpec())
	old.Dispose()
	if page.Attr("radarChart", AttrConfig) == "" {
		t.Error("disposing a stale handle cleared the current chart")
	}
	if c.Live() != 1 {
		t.Errorf("Live = %d", c.Live())
	}
}

func TestCanvasUnavailable(t *testing.T) {
	t.Run("MissingRegion", func(t *testing.T) {
		c := NewCanvas(region.NewPage("other"), "radarChart")
		if _, err := c.New(testSpec()); !errors.Is(err, ErrUnavailable) {
			t.Errorf("err = %v, want ErrUnavailable", err)
		}
		if c.Live() != 0 {
			t.Errorf("Live = %d", c.Live())
		}
	})
	t.Run("NoSurface", func(t *testing.T) {
		c := NewCanvas(nil, "radarChart")
		if _, err := c.New(testSpec()); !errors.Is(err, ErrUnavailable) {
			t.Errorf("err = %v, want ErrUnavailable", err)
		}
	})
	t.Run("NilCanvas", func(t *testing.T) {
		var c *Canvas
		if _, err := c.New(testSpec()); !errors.Is(err, ErrUnavailable) {
			t.Errorf("err = %v, want ErrUnavailable", err)
		}
	})
}
