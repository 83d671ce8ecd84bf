package dialog

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aaronzipp/player-compare/internal/region"
)

// AttrShow is bumped on every Show so the browser reopens the modal
const AttrShow = "data-show"

// ErrUnavailable is returned when the dialog region cannot be driven
var ErrUnavailable = errors.New("dialog unavailable")

// Dialog is a modal that can be shown. Hiding happens in the browser.
type Dialog interface {
	Show() error
}

// RegionDialog shows a modal by toggling its region
type RegionDialog struct {
	surface  region.Surface
	regionID string
	shown    int
}

// NewRegionDialog binds a dialog to the modal region id
func NewRegionDialog(surface region.Surface, regionID string) *RegionDialog {
	return &RegionDialog{surface: surface, regionID: regionID}
}

// Show makes the modal visible
func (d *RegionDialog) Show() error {
	if d == nil || d.surface == nil {
		return ErrUnavailable
	}
	if err := d.surface.SetVisible(d.regionID, true); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	d.shown++
	return d.surface.SetAttr(d.regionID, AttrShow, strconv.Itoa(d.shown))
}

// Shown returns how many times the dialog was opened
func (d *RegionDialog) Shown() int {
	return d.shown
}
