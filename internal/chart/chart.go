// Package chart renders comparison charts onto a canvas region.
package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/aaronzipp/player-compare/internal/models"
	"github.com/aaronzipp/player-compare/internal/region"
)

// Canvas attributes read by the browser script
const (
	AttrConfig = "data-chart"
	AttrID     = "data-chart-id"
)

// ErrUnavailable is returned when no chart can be drawn on the surface
var ErrUnavailable = errors.New("chart renderer unavailable")

// Handle is a live chart instance
type Handle interface {
	Dispose()
}

// Factory creates chart instances
type Factory interface {
	New(spec models.ChartSpec) (Handle, error)
}

// Canvas draws charts by writing a Chart.js config onto a canvas region.
// It does not enforce a single live chart; the owner disposes the old handle first.
type Canvas struct {
	surface  region.Surface
	regionID string
	seq      int
	live     int
	current  *instance
}

// NewCanvas returns a factory bound to the canvas region id
func NewCanvas(surface region.Surface, regionID string) *Canvas {
	return &Canvas{surface: surface, regionID: regionID}
}

// New publishes spec on the canvas and returns its handle
func (c *Canvas) New(spec models.ChartSpec) (Handle, error) {
	if c == nil || c.surface == nil {
		return nil, ErrUnavailable
	}
	payload, err := json.Marshal(toConfig(spec))
	if err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	if err := c.surface.SetAttr(c.regionID, AttrConfig, string(payload)); err != nil {
		if errors.Is(err, region.ErrMissingRegion) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}
	c.seq++
	_ = c.surface.SetAttr(c.regionID, AttrID, strconv.Itoa(c.seq))

	inst := &instance{canvas: c, id: c.seq}
	c.current = inst
	c.live++
	return inst, nil
}

// Live returns the number of undisposed charts
func (c *Canvas) Live() int {
	return c.live
}

type instance struct {
	canvas   *Canvas
	id       int
	disposed bool
}

// Dispose releases the chart. Repeated calls are no-ops.
func (i *instance) Dispose() {
	if i.disposed {
		return
	}
	i.disposed = true
	c := i.canvas
	c.live--
	if c.current == i {
		c.current = nil
		_ = c.surface.SetAttr(c.regionID, AttrConfig, "")
		_ = c.surface.SetAttr(c.regionID, AttrID, "")
	}
}

// config mirrors the Chart.js configuration object
type config struct {
	Type string     `json:"type"`
	Data configData `json:"data"`
}

type configData struct {
	Labels   []string        `json:"labels"`
	Datasets []configDataset `json:"datasets"`
}

type configDataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BorderColor     string `json:"borderColor"`
	BackgroundColor string `json:"backgroundColor"`
}

func toConfig(spec models.ChartSpec) config {
	cfg := config{
		Type: spec.Type,
		Data: configData{Labels: spec.Labels[:]},
	}
	for _, ds := range spec.Datasets {
		cfg.Data.Datasets = append(cfg.Data.Datasets, configDataset{
			Label:           ds.Name,
			Data:            ds.Values[:],
			BorderColor:     ds.Color,
			BackgroundColor: ds.Fill,
		})
	}
	return cfg
}
