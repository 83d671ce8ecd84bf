// Package ui holds the comparison widget state and renders it onto named regions.
package ui

import (
	"errors"
	"log"
	"os"

	"github.com/aaronzipp/player-compare/internal/chart"
	"github.com/aaronzipp/player-compare/internal/compare"
	"github.com/aaronzipp/player-compare/internal/dialog"
	"github.com/aaronzipp/player-compare/internal/models"
	"github.com/aaronzipp/player-compare/internal/region"
	"github.com/aaronzipp/player-compare/internal/render"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Finder resolves player ids
type Finder interface {
	FindByID(id string) (models.Player, bool)
}

// LinkFunc builds the share link for a selection
type LinkFunc func(sel models.Selection) string

// UiState is everything that changes while a page is open
type UiState struct {
	Selection models.Selection
	chart     chart.Handle
}

// Renderer applies selection changes and pushes the results to the surface.
// It is not safe for concurrent use; callers serialise events per page.
type Renderer struct {
	players Finder
	surface region.Surface
	charts  chart.Factory
	dialog  dialog.Dialog
	link    LinkFunc
	state   UiState
}

// Option configures a Renderer
type Option func(*Renderer)

// WithShareLink publishes a share link for every selection
func WithShareLink(fn LinkFunc) Option {
	return func(r *Renderer) { r.link = fn }
}

// NewRenderer returns a renderer in the Empty state. charts and dlg may be nil.
func NewRenderer(players Finder, surface region.Surface, charts chart.Factory, dlg dialog.Dialog, opts ...Option) *Renderer {
	if surface == nil {
		surface = region.NewPage()
	}
	r := &Renderer{
		players: players,
		surface: surface,
		charts:  charts,
		dialog:  dlg,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.hide(RegionModal)
	r.render()
	return r
}

// Selection returns the current slot contents
func (r *Renderer) Selection() models.Selection {
	return r.state.Selection
}

// HasChart reports whether a chart instance is live
func (r *Renderer) HasChart() bool {
	return r.state.chart != nil
}

// State derives the render state from the selection
func (r *Renderer) State() models.RenderState {
	_, lok := r.resolve(models.SlotLeft)
	_, rok := r.resolve(models.SlotRight)
	switch {
	case lok && rok:
		return models.RenderComplete
	case lok || rok:
		return models.RenderPartial
	default:
		return models.RenderEmpty
	}
}

// SetSelection stores id in slot and re-renders. Unknown ids leave the slot unfilled.
func (r *Renderer) SetSelection(slot models.Slot, id string) {
	if slot != models.SlotLeft && slot != models.SlotRight {
		return
	}
	r.state.Selection.Set(slot, id)
	r.render()
}

// Reset clears both slots and disposes the chart
func (r *Renderer) Reset() {
	r.state.Selection.Clear()
	r.render()
}

// OpenDetailByID shows the detail modal for id. Unknown ids are ignored.
func (r *Renderer) OpenDetailByID(id string) bool {
	p, ok := r.players.FindByID(id)
	if !ok {
		if debug {
			log.Printf("ui: detail for unknown player %q ignored", id)
		}
		return false
	}
	r.OpenDetail(p)
	return true
}

// OpenDetail fills the modal with p and shows it
func (r *Renderer) OpenDetail(p models.Player) {
	r.attr(RegionModalImg, "src", p.Image)
	r.attr(RegionModalImg, "alt", p.Name)
	r.text(RegionModalFlag, p.Flag)
	r.text(RegionModalName, p.Name)
	r.text(RegionModalPosition, p.Position)
	r.text(RegionModalClub, p.Club)
	r.text(RegionModalCountry, p.Country)
	r.text(RegionModalBio, p.Bio)
	r.text(RegionModalFunFact, p.FunFact)

	r.text(RegionAchBallonDor, render.Achievement(p.Achievements.BallonDor))
	r.text(RegionAchUCL, render.Achievement(p.Achievements.UCL))
	r.text(RegionAchWorldCup, render.Achievement(p.Achievements.WorldCup))

	r.html(RegionModalStats, render.StatBars(p.Stats))
	r.html(RegionModalTutorials, render.Tutorials(p.Tutorials))

	if r.dialog == nil {
		r.degrade(dialog.ErrUnavailable)
		return
	}
	if err := r.dialog.Show(); err != nil {
		r.degrade(err)
	}
}

func (r *Renderer) resolve(slot models.Slot) (models.Player, bool) {
	id := r.state.Selection.Get(slot)
	if id == "" || r.players == nil {
		return models.Player{}, false
	}
	return r.players.FindByID(id)
}

func (r *Renderer) render() {
	left, lok := r.resolve(models.SlotLeft)
	right, rok := r.resolve(models.SlotRight)

	r.renderSlot(models.SlotLeft, left, lok)
	r.renderSlot(models.SlotRight, right, rok)

	if r.link != nil {
		r.attr(RegionShare, "href", r.link(r.state.Selection))
	}

	r.disposeChart()
	if !lok || !rok {
		r.showPlaceholder()
		return
	}

	h, err := r.newChart(left, right)
	if err != nil {
		r.degrade(err)
		r.showPlaceholder()
		return
	}
	r.state.chart = h
	r.html(RegionSummary, render.StatsSummary(compare.Compare(left, right), left, right))
	r.hide(RegionPlaceholder)
	r.show(RegionChartWrap)
}

func (r *Renderer) renderSlot(slot models.Slot, p models.Player, ok bool) {
	ids := RegionsFor(slot)
	r.attr(ids.Select, "value", r.state.Selection.Get(slot))
	if !ok {
		r.hide(ids.Preview)
		return
	}
	r.show(ids.Preview)
	r.attr(ids.Img, "src", p.Image)
	r.attr(ids.Img, "alt", p.Name)
	r.text(ids.Name, p.Name)
	r.text(ids.Info, render.PreviewInfo(p))
}

func (r *Renderer) showPlaceholder() {
	r.html(RegionSummary, "")
	r.show(RegionPlaceholder)
	r.hide(RegionChartWrap)
}

func (r *Renderer) newChart(left, right models.Player) (chart.Handle, error) {
	if r.charts == nil {
		return nil, chart.ErrUnavailable
	}
	return r.charts.New(compare.Project(left, right))
}

func (r *Renderer) disposeChart() {
	if r.state.chart != nil {
		r.state.chart.Dispose()
		r.state.chart = nil
	}
}

func (r *Renderer) text(id, v string)       { r.write(r.surface.SetText(id, v)) }
func (r *Renderer) html(id, v string)       { r.write(r.surface.SetHTML(id, v)) }
func (r *Renderer) attr(id, name, v string) { r.write(r.surface.SetAttr(id, name, v)) }
func (r *Renderer) show(id string)          { r.write(r.surface.SetVisible(id, true)) }
func (r *Renderer) hide(id string)          { r.write(r.surface.SetVisible(id, false)) }

// write drops missing-region errors; page variants may omit regions
func (r *Renderer) write(err error) {
	if err == nil {
		return
	}
	if debug || !errors.Is(err, region.ErrMissingRegion) {
		log.Printf("ui: skipped update: %v", err)
	}
}

func (r *Renderer) degrade(err error) {
	if debug {
		log.Printf("ui: degraded: %v", err)
	}
}
