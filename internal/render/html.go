package render

import (
	htmlpkg "html"
	"strconv"
	"strings"

	"github.com/aaronzipp/player-compare/internal/models"
)

// TieGlyph marks a stat neither player wins
const TieGlyph = "🤝"

// StatsSummary generates HTML for the per-stat winner rows
func StatsSummary(cmp models.Comparison, left, right models.Player) string {
	var b strings.Builder
	for _, r := range cmp.Results {
		glyph := TieGlyph
		switch r.Winner {
		case models.WinnerLeft:
			glyph = left.Flag
		case models.WinnerRight:
			glyph = right.Flag
		}
		b.WriteString(`<div class="stat-item" data-stat="`)
		b.WriteString(string(r.Key))
		b.WriteString(`" data-winner="`)
		b.WriteString(r.Winner.String())
		b.WriteString(`"><div class="stat-item-label">`)
		b.WriteString(strings.ToUpper(string(r.Key)))
		b.WriteString(`</div><div class="stat-item-winner">`)
		b.WriteString(htmlpkg.EscapeString(glyph))
		b.WriteString(`</div></div>`)
	}
	return b.String()
}

// StatBars generates HTML for the modal stat bars. Fill width is the rating as a percentage.
func StatBars(stats models.Stats) string {
	var b strings.Builder
	for _, k := range models.StatKeys {
		v := strconv.Itoa(stats.Value(k))
		b.WriteString(`<div class="stat-bar-container"><div class="stat-bar-header"><span>`)
		b.WriteString(strings.ToUpper(string(k)))
		b.WriteString(`</span><span>`)
		b.WriteString(v)
		b.WriteString(`</span></div><div class="stat-bar"><div class="stat-bar-fill" style="width:`)
		b.WriteString(v)
		b.WriteString(`%"></div></div></div>`)
	}
	return b.String()
}

// Tutorials generates HTML for the modal tutorial list
func Tutorials(tutorials []models.Tutorial) string {
	if len(tutorials) == 0 {
		return `<p class="text-muted">No tutorials available</p>`
	}
	var b strings.Builder
	b.WriteString(`<h5 class="tutorials-title">Tutorials</h5>`)
	for _, t := range tutorials {
		b.WriteString(`<div class="tutorial-item"><p class="fw-bold">`)
		b.WriteString(htmlpkg.EscapeString(t.Title))
		b.WriteString(` <span class="text-muted small">(`)
		b.WriteString(htmlpkg.EscapeString(string(t.Difficulty)))
		b.WriteString(`)</span></p><iframe width="100%" height="200" src="`)
		b.WriteString(htmlpkg.EscapeString(t.Video))
		b.WriteString(`" frameborder="0" allowfullscreen></iframe></div>`)
	}
	return b.String()
}

// Achievement formats an honour count as "<n>x"
func Achievement(n int) string {
	return strconv.Itoa(n) + "x"
}

// PreviewInfo is the "position • club" line of a preview card
func PreviewInfo(p models.Player) string {
	return p.Position + " • " + p.Club
}

// OptionLabel is the dropdown label for a player
func OptionLabel(p models.Player) string {
	return p.Flag + " " + p.Name
}
